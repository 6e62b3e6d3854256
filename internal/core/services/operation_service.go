package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
)

// operationService implements the OperationSvcFacade interface.
type operationService struct {
	BaseService
	operationRepo portsrepo.OperationRepositoryFacade
}

// NewOperationService creates a new operation service.
func NewOperationService(operationRepo portsrepo.OperationRepositoryFacade) portssvc.OperationSvcFacade {
	return &operationService{operationRepo: operationRepo}
}

var _ portssvc.OperationSvcFacade = (*operationService)(nil)

// ListOperations lists operations newest first, optionally filtered by status.
// An empty status means all statuses.
func (s *operationService) ListOperations(ctx context.Context, status domain.OperationStatus, limit int) ([]domain.ExchangeOperation, error) {
	var (
		ops []domain.ExchangeOperation
		err error
	)
	if status == "" {
		ops, err = s.operationRepo.ListRecent(ctx, limit)
	} else {
		ops, err = s.operationRepo.ListByStatus(ctx, status, limit)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list operations", slog.String("status", string(status)))
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	if ops == nil {
		return []domain.ExchangeOperation{}, nil
	}
	return ops, nil
}

// CompleteOperation performs the only staff-driven status transition:
// PENDING -> COMPLETED. The repository rejects the write when the operation
// left PENDING in the meantime (bot-side cancellation or escalation).
func (s *operationService) CompleteOperation(ctx context.Context, operationNumber string) (*domain.ExchangeOperation, error) {
	op, err := s.operationRepo.MarkCompleted(ctx, operationNumber, time.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to complete operation", slog.String("operation_number", operationNumber))
		return nil, fmt.Errorf("failed to complete operation %s: %w", operationNumber, err)
	}

	s.LogInfo(ctx, "Operation completed", slog.String("operation_number", operationNumber))
	return op, nil
}
