package repositories

import (
	"context"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// RateChangeReader defines read operations for the rate change log.
type RateChangeReader interface {
	// ListRateChanges retrieves the most recent rate changes, newest first.
	ListRateChanges(ctx context.Context, limit int) ([]domain.RateChange, error)
}
