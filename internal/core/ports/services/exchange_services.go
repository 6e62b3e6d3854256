package services

import (
	"context"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
)

// StockSvcFacade manages currency stock rows.
type StockSvcFacade interface {
	ListStock(ctx context.Context) ([]domain.CurrencyStock, error)
	// UpdateStock applies a staff edit and returns the canonical post-write
	// row so clients reconcile instead of trusting the optimistic edit.
	UpdateStock(ctx context.Context, id int64, req dto.UpdateStockRequest) (*domain.CurrencyStock, error)
}

// OperationSvcFacade exposes exchange operations and the single staff-driven
// status transition.
type OperationSvcFacade interface {
	ListOperations(ctx context.Context, status domain.OperationStatus, limit int) ([]domain.ExchangeOperation, error)
	CompleteOperation(ctx context.Context, operationNumber string) (*domain.ExchangeOperation, error)
}

// MovementSvcFacade exposes the stock movement history.
type MovementSvcFacade interface {
	ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error)
}

// ConfigSvcFacade manages per-currency commission parameters.
type ConfigSvcFacade interface {
	ListConfig(ctx context.Context) ([]domain.OperationConfig, error)
	UpdateConfig(ctx context.Context, id int64, req dto.UpdateConfigRequest) (*domain.OperationConfig, error)
}

// SubscriptionSvcFacade manages quote subscriptions.
type SubscriptionSvcFacade interface {
	ListSubscriptions(ctx context.Context) ([]domain.QuoteSubscription, error)
	SetSubscriptionActive(ctx context.Context, id int64, active bool) (*domain.QuoteSubscription, error)
}

// RateChangeSvcFacade exposes the rate change log.
type RateChangeSvcFacade interface {
	ListRateChanges(ctx context.Context, limit int) ([]domain.RateChange, error)
}

// StatsSvcFacade computes the aggregate counters of the analytics tab.
type StatsSvcFacade interface {
	GeneralStats(ctx context.Context) (*domain.GeneralStats, error)
}
