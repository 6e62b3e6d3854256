package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

// operationRepository implements the OperationRepositoryFacade interface.
type operationRepository struct {
	BaseRepository
}

func newOperationRepository(db *pgxpool.Pool) portsrepo.OperationRepositoryFacade {
	return &operationRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.OperationRepositoryFacade = (*operationRepository)(nil)

const operationColumns = `
	operation_number,
	created_at,
	COALESCE(counterparty_name, ''),
	input_amount,
	COALESCE(input_currency, ''),
	output_amount,
	COALESCE(output_currency, ''),
	gross_profit_usd,
	margin_percent,
	status,
	COALESCE(priority_label, ''),
	assigned_user_id,
	rate,
	entry_price,
	exit_price`

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanOperation(row rowScanner) (domain.ExchangeOperation, error) {
	var op domain.ExchangeOperation
	var status string
	err := row.Scan(
		&op.OperationNumber,
		&op.CreatedAt,
		&op.CounterpartyName,
		&op.InputAmount,
		&op.InputCurrency,
		&op.OutputAmount,
		&op.OutputCurrency,
		&op.GrossProfitUSD,
		&op.MarginPercent,
		&status,
		&op.PriorityLabel,
		&op.AssignedUserID,
		&op.Rate,
		&op.EntryPrice,
		&op.ExitPrice,
	)
	if err != nil {
		return domain.ExchangeOperation{}, err
	}
	op.Status = domain.OperationStatus(status)
	return op, nil
}

func (r *operationRepository) queryOperations(ctx context.Context, query string, args ...any) ([]domain.ExchangeOperation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying operations: %w", err)
	}
	defer rows.Close()

	var result []domain.ExchangeOperation
	for rows.Next() {
		op, err := scanOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning operation row: %w", err)
		}
		result = append(result, op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating operation rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.ExchangeOperation{}, nil
	}
	return result, nil
}

func (r *operationRepository) ListCompletedSince(ctx context.Context, since time.Time, scope domain.KpiScope, userID string) ([]domain.ExchangeOperation, error) {
	query := `SELECT ` + operationColumns + `
		FROM exchange_operations
		WHERE status = 'COMPLETED' AND created_at >= $1`
	args := []any{since}
	if scope == domain.ScopeUser {
		query += ` AND assigned_user_id = $2`
		args = append(args, userID)
	}
	query += ` ORDER BY created_at ASC`
	return r.queryOperations(ctx, query, args...)
}

func (r *operationRepository) ListRecent(ctx context.Context, limit int) ([]domain.ExchangeOperation, error) {
	query := `SELECT ` + operationColumns + `
		FROM exchange_operations
		ORDER BY created_at DESC`
	if limit > 0 {
		return r.queryOperations(ctx, query+` LIMIT $1`, limit)
	}
	return r.queryOperations(ctx, query)
}

func (r *operationRepository) ListByStatus(ctx context.Context, status domain.OperationStatus, limit int) ([]domain.ExchangeOperation, error) {
	query := `SELECT ` + operationColumns + `
		FROM exchange_operations
		WHERE status = $1
		ORDER BY created_at DESC`
	if limit > 0 {
		return r.queryOperations(ctx, query+` LIMIT $2`, string(status), limit)
	}
	return r.queryOperations(ctx, query, string(status))
}

func (r *operationRepository) FindByNumber(ctx context.Context, operationNumber string) (*domain.ExchangeOperation, error) {
	query := `SELECT ` + operationColumns + `
		FROM exchange_operations
		WHERE operation_number = $1`
	op, err := scanOperation(r.Pool.QueryRow(ctx, query, operationNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("operation %s: %w", operationNumber, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding operation: %w", err)
	}
	return &op, nil
}

func (r *operationRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM exchange_operations WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting operations: %w", err)
	}
	return count, nil
}

func (r *operationRepository) SumInputVolumeSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var volume decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(COALESCE(input_amount, 0)), 0)
		FROM exchange_operations
		WHERE created_at >= $1`, since).Scan(&volume)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error summing input volume: %w", err)
	}
	return volume, nil
}

// MarkCompleted transitions PENDING -> COMPLETED in a single guarded update so
// a concurrent bot-side transition cannot be overwritten.
func (r *operationRepository) MarkCompleted(ctx context.Context, operationNumber string, completedAt time.Time) (*domain.ExchangeOperation, error) {
	query := `
		UPDATE exchange_operations
		SET status = 'COMPLETED', updated_at = $2
		WHERE operation_number = $1 AND status = 'PENDING'
		RETURNING ` + operationColumns
	op, err := scanOperation(r.Pool.QueryRow(ctx, query, operationNumber, completedAt))
	if err == nil {
		return &op, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("error completing operation: %w", err)
	}

	// Distinguish "gone" from "no longer pending".
	existing, findErr := r.FindByNumber(ctx, operationNumber)
	if findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("operation %s is %s: %w", operationNumber, existing.Status, apperrors.ErrConflict)
}
