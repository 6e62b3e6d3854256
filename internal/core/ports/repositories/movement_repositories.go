package repositories

import (
	"context"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// MovementReader defines read operations for stock movements.
type MovementReader interface {
	// ListMovements retrieves the most recent stock movements, newest first.
	ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error)

	// CountMovementsSince counts movements created at or after since.
	CountMovementsSince(ctx context.Context, since time.Time) (int64, error)
}
