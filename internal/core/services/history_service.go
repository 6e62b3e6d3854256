package services

import (
	"context"
	"fmt"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
)

// Default page sizes of the history tabs.
const (
	defaultMovementLimit   = 20
	defaultRateChangeLimit = 10
)

// movementService implements the MovementSvcFacade interface.
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementReader
}

// NewMovementService creates a new movement service.
func NewMovementService(movementRepo portsrepo.MovementReader) portssvc.MovementSvcFacade {
	return &movementService{movementRepo: movementRepo}
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

func (s *movementService) ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error) {
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	movements, err := s.movementRepo.ListMovements(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list stock movements")
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	if movements == nil {
		return []domain.StockMovement{}, nil
	}
	return movements, nil
}

// rateChangeService implements the RateChangeSvcFacade interface.
type rateChangeService struct {
	BaseService
	rateChangeRepo portsrepo.RateChangeReader
}

// NewRateChangeService creates a new rate change service.
func NewRateChangeService(rateChangeRepo portsrepo.RateChangeReader) portssvc.RateChangeSvcFacade {
	return &rateChangeService{rateChangeRepo: rateChangeRepo}
}

var _ portssvc.RateChangeSvcFacade = (*rateChangeService)(nil)

func (s *rateChangeService) ListRateChanges(ctx context.Context, limit int) ([]domain.RateChange, error) {
	if limit <= 0 {
		limit = defaultRateChangeLimit
	}
	changes, err := s.rateChangeRepo.ListRateChanges(ctx, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rate changes")
		return nil, fmt.Errorf("failed to list rate changes: %w", err)
	}
	if changes == nil {
		return []domain.RateChange{}, nil
	}
	return changes, nil
}
