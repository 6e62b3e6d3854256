package repositories

import (
	"context"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// ConfigReader defines read operations for per-currency commission parameters.
type ConfigReader interface {
	// ListConfig retrieves all configuration rows ordered by currency.
	ListConfig(ctx context.Context) ([]domain.OperationConfig, error)
}

// ConfigWriter defines write operations for per-currency commission parameters.
type ConfigWriter interface {
	// UpdateConfig replaces the mutable fields of a configuration row and
	// returns the canonical post-write row.
	UpdateConfig(ctx context.Context, cfg domain.OperationConfig) (*domain.OperationConfig, error)
}

// ConfigRepositoryFacade combines all config repository interfaces.
type ConfigRepositoryFacade interface {
	ConfigReader
	ConfigWriter
}
