package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/utils/reporting"
)

// Slice names used as keys of DashboardData.Failures.
const (
	sliceKpis       = "kpis"
	sliceDaily      = "dailySummary"
	sliceRecentOps  = "recentOperations"
	sliceProfitByCp = "profitByCurrency"
	slicePendingOps = "pendingOperations"
)

// dashboardService implements the DashboardSvcFacade interface.
type dashboardService struct {
	BaseService
	operationRepo portsrepo.OperationReader
	reportingRepo portsrepo.ReportingRepository
	location      *time.Location
	recentLimit   int
	now           func() time.Time
}

// DashboardServiceOption is a functional option for configuring the dashboard service.
type DashboardServiceOption func(*dashboardService)

// WithClock overrides the time source, used by tests.
func WithClock(now func() time.Time) DashboardServiceOption {
	return func(s *dashboardService) {
		s.now = now
	}
}

// WithRecentLimit sets the page size of the recent operations slice.
func WithRecentLimit(limit int) DashboardServiceOption {
	return func(s *dashboardService) {
		if limit > 0 {
			s.recentLimit = limit
		}
	}
}

// NewDashboardService creates a new dashboard service. location is the
// reporting timezone used for all calendar-day bucketing.
func NewDashboardService(operationRepo portsrepo.OperationReader, reportingRepo portsrepo.ReportingRepository, location *time.Location, options ...DashboardServiceOption) portssvc.DashboardSvcFacade {
	svc := &dashboardService{
		operationRepo: operationRepo,
		reportingRepo: reportingRepo,
		location:      location,
		recentLimit:   7,
		now:           time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// LoadDashboard issues the five independent fetches concurrently and waits for
// every one of them to settle. Failures are per-slice: a failed fetch leaves
// its slice empty (Kpis nil) and records a message, while healthy slices still
// come back populated. Nothing here is all-or-nothing.
func (s *dashboardService) LoadDashboard(ctx context.Context, scope domain.KpiScope, userID string) (*domain.DashboardData, error) {
	now := s.now()
	data := &domain.DashboardData{
		DailySummary:      []domain.DailySummaryPoint{},
		RecentOperations:  []domain.RecentOperationView{},
		ProfitByCurrency:  []domain.CurrencyProfitGroup{},
		PendingOperations: []domain.PendingOperationView{},
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures = map[string]string{}
	)

	fail := func(slice string, err error) {
		s.LogError(ctx, err, "Dashboard slice failed", slog.String("slice", slice))
		mu.Lock()
		failures[slice] = err.Error()
		mu.Unlock()
	}

	wg.Add(5)

	go func() {
		defer wg.Done()
		ops, err := s.operationRepo.ListCompletedSince(ctx, reporting.MonthStart(now, s.location), scope, userID)
		if err != nil {
			fail(sliceKpis, err)
			return
		}
		snapshot := reporting.DeriveKpis(ops, now, s.location)
		mu.Lock()
		data.Kpis = &snapshot
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		points, err := s.reportingRepo.GetDailySummary(ctx)
		if err != nil {
			fail(sliceDaily, err)
			return
		}
		labeled := reporting.LabelDailySummary(points)
		mu.Lock()
		data.DailySummary = labeled
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		ops, err := s.operationRepo.ListRecent(ctx, s.recentLimit)
		if err != nil {
			fail(sliceRecentOps, err)
			return
		}
		views := reporting.ShapeRecentOperations(ops, s.location)
		mu.Lock()
		data.RecentOperations = views
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		rows, err := s.reportingRepo.GetProfitByPair(ctx)
		if err != nil {
			fail(sliceProfitByCp, err)
			return
		}
		groups := reporting.GroupProfitByCurrency(rows)
		mu.Lock()
		data.ProfitByCurrency = groups
		mu.Unlock()
	}()

	go func() {
		defer wg.Done()
		ops, err := s.operationRepo.ListByStatus(ctx, domain.StatusPending, 0)
		if err != nil {
			fail(slicePendingOps, err)
			return
		}
		views := reporting.ShapePendingOperations(ops, now)
		mu.Lock()
		data.PendingOperations = views
		mu.Unlock()
	}()

	wg.Wait()

	// A cancelled caller must not receive a half-applied batch.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(failures) > 0 {
		data.Failures = failures
	}

	s.LogInfo(ctx, "Dashboard loaded",
		slog.String("scope", string(scope)),
		slog.Int("failed_slices", len(failures)))
	return data, nil
}
