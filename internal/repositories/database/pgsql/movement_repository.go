package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

// movementRepository implements the MovementReader interface.
type movementRepository struct {
	BaseRepository
}

func newMovementRepository(db *pgxpool.Pool) portsrepo.MovementReader {
	return &movementRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.MovementReader = (*movementRepository)(nil)

func (r *movementRepository) ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error) {
	query := `
		SELECT id, currency, kind, amount, COALESCE(reason, ''), COALESCE(actor, ''), created_at
		FROM stock_movements
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying stock movements: %w", err)
	}
	defer rows.Close()

	var result []domain.StockMovement
	for rows.Next() {
		var m domain.StockMovement
		var kind string
		if err := rows.Scan(&m.ID, &m.Currency, &kind, &m.Amount, &m.Reason, &m.Actor, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning movement row: %w", err)
		}
		m.Kind = domain.MovementKind(kind)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.StockMovement{}, nil
	}
	return result, nil
}

func (r *movementRepository) CountMovementsSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM stock_movements WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting movements: %w", err)
	}
	return count, nil
}
