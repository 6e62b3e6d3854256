package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

// configRepository implements the ConfigRepositoryFacade interface.
type configRepository struct {
	BaseRepository
}

func newConfigRepository(db *pgxpool.Pool) portsrepo.ConfigRepositoryFacade {
	return &configRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ConfigRepositoryFacade = (*configRepository)(nil)

const configColumns = `id, currency, commission_percent, spread_percent, min_amount, max_amount, active`

func scanConfig(row rowScanner) (domain.OperationConfig, error) {
	var c domain.OperationConfig
	err := row.Scan(&c.ID, &c.Currency, &c.CommissionPercent, &c.SpreadPercent, &c.MinAmount, &c.MaxAmount, &c.Active)
	return c, err
}

func (r *configRepository) ListConfig(ctx context.Context) ([]domain.OperationConfig, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+configColumns+` FROM operation_config ORDER BY currency ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying operation config: %w", err)
	}
	defer rows.Close()

	var result []domain.OperationConfig
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning config row: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating config rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.OperationConfig{}, nil
	}
	return result, nil
}

func (r *configRepository) UpdateConfig(ctx context.Context, cfg domain.OperationConfig) (*domain.OperationConfig, error) {
	query := `
		UPDATE operation_config
		SET commission_percent = $2, spread_percent = $3, min_amount = $4, max_amount = $5, active = $6
		WHERE id = $1
		RETURNING ` + configColumns
	c, err := scanConfig(r.Pool.QueryRow(ctx, query, cfg.ID, cfg.CommissionPercent, cfg.SpreadPercent, cfg.MinAmount, cfg.MaxAmount, cfg.Active))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("config row %d: %w", cfg.ID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error updating config row: %w", err)
	}
	return &c, nil
}
