package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

// rateChangeRepository implements the RateChangeReader interface.
type rateChangeRepository struct {
	BaseRepository
}

func newRateChangeRepository(db *pgxpool.Pool) portsrepo.RateChangeReader {
	return &rateChangeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.RateChangeReader = (*rateChangeRepository)(nil)

func (r *rateChangeRepository) ListRateChanges(ctx context.Context, limit int) ([]domain.RateChange, error) {
	query := `
		SELECT id, source_currency, target_currency, previous_rate, new_rate, change_percent, created_at
		FROM rate_change_log
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying rate changes: %w", err)
	}
	defer rows.Close()

	var result []domain.RateChange
	for rows.Next() {
		var rc domain.RateChange
		if err := rows.Scan(&rc.ID, &rc.SourceCurrency, &rc.TargetCurrency, &rc.PreviousRate, &rc.NewRate, &rc.ChangePercent, &rc.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning rate change row: %w", err)
		}
		result = append(result, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate change rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.RateChange{}, nil
	}
	return result, nil
}
