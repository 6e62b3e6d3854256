package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/utils/reporting"
)

// statsService implements the StatsSvcFacade interface.
type statsService struct {
	BaseService
	userRepo         portsrepo.UserReader
	subscriptionRepo portsrepo.SubscriptionReader
	operationRepo    portsrepo.OperationReader
	movementRepo     portsrepo.MovementReader
	location         *time.Location
	now              func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(
	userRepo portsrepo.UserReader,
	subscriptionRepo portsrepo.SubscriptionReader,
	operationRepo portsrepo.OperationReader,
	movementRepo portsrepo.MovementReader,
	location *time.Location,
) portssvc.StatsSvcFacade {
	return &statsService{
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
		operationRepo:    operationRepo,
		movementRepo:     movementRepo,
		location:         location,
		now:              time.Now,
	}
}

var _ portssvc.StatsSvcFacade = (*statsService)(nil)

// GeneralStats fans out the four counters plus the month's input volume.
// Unlike the dashboard batch this one is all-or-nothing: a partial stats card
// is worse than an unavailable one.
func (s *statsService) GeneralStats(ctx context.Context) (*domain.GeneralStats, error) {
	monthStart := reporting.MonthStart(s.now(), s.location)
	stats := &domain.GeneralStats{}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	wg.Add(5)
	go func() {
		defer wg.Done()
		n, err := s.userRepo.CountUsers(ctx)
		if err != nil {
			record(err)
			return
		}
		stats.TotalUsers = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.subscriptionRepo.CountActiveSubscriptions(ctx)
		if err != nil {
			record(err)
			return
		}
		stats.ActiveSubscriptions = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.operationRepo.CountSince(ctx, monthStart)
		if err != nil {
			record(err)
			return
		}
		stats.OperationsThisMonth = n
	}()
	go func() {
		defer wg.Done()
		n, err := s.movementRepo.CountMovementsSince(ctx, monthStart)
		if err != nil {
			record(err)
			return
		}
		stats.MovementsThisMonth = n
	}()
	go func() {
		defer wg.Done()
		volume, err := s.operationRepo.SumInputVolumeSince(ctx, monthStart)
		if err != nil {
			record(err)
			return
		}
		stats.TotalInputVolume = volume
	}()
	wg.Wait()

	if firstErr != nil {
		s.LogError(ctx, firstErr, "Failed to compute general stats")
		return nil, fmt.Errorf("failed to compute general stats: %w", firstErr)
	}

	return stats, nil
}
