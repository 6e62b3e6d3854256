package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

// stockRepository implements the StockRepositoryFacade interface.
type stockRepository struct {
	BaseRepository
}

func newStockRepository(db *pgxpool.Pool) portsrepo.StockRepositoryFacade {
	return &stockRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.StockRepositoryFacade = (*stockRepository)(nil)

const stockColumns = `id, currency, buy_price, sell_price, available_stock, updated_at`

func scanStock(row rowScanner) (domain.CurrencyStock, error) {
	var s domain.CurrencyStock
	err := row.Scan(&s.ID, &s.Currency, &s.BuyPrice, &s.SellPrice, &s.AvailableStock, &s.UpdatedAt)
	return s, err
}

func (r *stockRepository) ListStock(ctx context.Context) ([]domain.CurrencyStock, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+stockColumns+` FROM currency_stock ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("error querying currency stock: %w", err)
	}
	defer rows.Close()

	var result []domain.CurrencyStock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning stock row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.CurrencyStock{}, nil
	}
	return result, nil
}

func (r *stockRepository) FindStockByID(ctx context.Context, id int64) (*domain.CurrencyStock, error) {
	s, err := scanStock(r.Pool.QueryRow(ctx, `SELECT `+stockColumns+` FROM currency_stock WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("stock row %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding stock row: %w", err)
	}
	return &s, nil
}

func (r *stockRepository) UpdateStock(ctx context.Context, stock domain.CurrencyStock, updatedAt time.Time) (*domain.CurrencyStock, error) {
	query := `
		UPDATE currency_stock
		SET buy_price = $2, sell_price = $3, available_stock = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + stockColumns
	s, err := scanStock(r.Pool.QueryRow(ctx, query, stock.ID, stock.BuyPrice, stock.SellPrice, stock.AvailableStock, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("stock row %d: %w", stock.ID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error updating stock row: %w", err)
	}
	return &s, nil
}
