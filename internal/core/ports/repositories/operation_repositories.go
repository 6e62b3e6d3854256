package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// OperationReader defines read operations for exchange operations.
type OperationReader interface {
	// ListCompletedSince retrieves completed operations created at or after
	// since. With domain.ScopeUser only operations assigned to userID are
	// returned; with domain.ScopeAll userID is ignored.
	ListCompletedSince(ctx context.Context, since time.Time, scope domain.KpiScope, userID string) ([]domain.ExchangeOperation, error)

	// ListRecent retrieves the most recent operations, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.ExchangeOperation, error)

	// ListByStatus retrieves operations with the given status, newest first.
	// A zero limit means no limit.
	ListByStatus(ctx context.Context, status domain.OperationStatus, limit int) ([]domain.ExchangeOperation, error)

	// FindByNumber retrieves a single operation by its operation number.
	FindByNumber(ctx context.Context, operationNumber string) (*domain.ExchangeOperation, error)

	// CountSince counts operations created at or after since, any status.
	CountSince(ctx context.Context, since time.Time) (int64, error)

	// SumInputVolumeSince sums the input amounts of operations created at or
	// after since, treating null amounts as zero.
	SumInputVolumeSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

// OperationWriter defines write operations for exchange operations.
type OperationWriter interface {
	// MarkCompleted transitions a PENDING operation to COMPLETED and returns
	// the updated row. It returns apperrors.ErrConflict when the operation is
	// no longer pending and apperrors.ErrNotFound when it does not exist.
	MarkCompleted(ctx context.Context, operationNumber string, completedAt time.Time) (*domain.ExchangeOperation, error)
}

// OperationRepositoryFacade combines all operation repository interfaces.
type OperationRepositoryFacade interface {
	OperationReader
	OperationWriter
}
