package services

import (
	"context"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// DashboardSvcFacade loads the dashboard's view-model slices.
type DashboardSvcFacade interface {
	// LoadDashboard fans out the independent dashboard fetches (KPIs, daily
	// summary, recent operations, profit-by-currency, pending operations) and
	// waits for all of them to settle. Failed slices come back empty with a
	// message in DashboardData.Failures; sibling slices are unaffected.
	// With domain.ScopeUser the KPI slice is restricted to userID.
	LoadDashboard(ctx context.Context, scope domain.KpiScope, userID string) (*domain.DashboardData, error)
}
