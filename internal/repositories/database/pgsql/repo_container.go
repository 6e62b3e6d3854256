package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against one pool.
func NewRepositoryProvider(db *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Operation:    newOperationRepository(db),
		Stock:        newStockRepository(db),
		Movement:     newMovementRepository(db),
		Config:       newConfigRepository(db),
		Subscription: newSubscriptionRepository(db),
		RateChange:   newRateChangeRepository(db),
		User:         newUserRepository(db),
		Reporting:    newReportingRepository(db),
	}
}
