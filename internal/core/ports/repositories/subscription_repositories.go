package repositories

import (
	"context"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// SubscriptionReader defines read operations for quote subscriptions.
type SubscriptionReader interface {
	// ListSubscriptions retrieves all subscriptions, newest first.
	ListSubscriptions(ctx context.Context) ([]domain.QuoteSubscription, error)

	// CountActiveSubscriptions counts subscriptions with the active flag set.
	CountActiveSubscriptions(ctx context.Context) (int64, error)
}

// SubscriptionWriter defines write operations for quote subscriptions.
type SubscriptionWriter interface {
	// SetSubscriptionActive toggles a subscription's active flag and returns
	// the canonical post-write row.
	SetSubscriptionActive(ctx context.Context, id int64, active bool, updatedAt time.Time) (*domain.QuoteSubscription, error)
}

// SubscriptionRepositoryFacade combines all subscription repository interfaces.
type SubscriptionRepositoryFacade interface {
	SubscriptionReader
	SubscriptionWriter
}
