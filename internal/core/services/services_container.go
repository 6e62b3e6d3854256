package services

import (
	"time"

	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, location *time.Location, recentLimit int) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Dashboard:    NewDashboardService(repos.Operation, repos.Reporting, location, WithRecentLimit(recentLimit)),
		Stock:        NewStockService(repos.Stock),
		Operation:    NewOperationService(repos.Operation),
		Movement:     NewMovementService(repos.Movement),
		Config:       NewConfigService(repos.Config),
		Subscription: NewSubscriptionService(repos.Subscription),
		RateChange:   NewRateChangeService(repos.RateChange),
		Stats:        NewStatsService(repos.User, repos.Subscription, repos.Operation, repos.Movement, location),
		User:         NewUserService(repos.User),
	}
}
