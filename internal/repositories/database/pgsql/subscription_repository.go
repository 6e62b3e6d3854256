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

// subscriptionRepository implements the SubscriptionRepositoryFacade interface.
type subscriptionRepository struct {
	BaseRepository
}

func newSubscriptionRepository(db *pgxpool.Pool) portsrepo.SubscriptionRepositoryFacade {
	return &subscriptionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*subscriptionRepository)(nil)

const subscriptionColumns = `id, chat_id, COALESCE(display_name, ''), active, created_at, updated_at`

func scanSubscription(row rowScanner) (domain.QuoteSubscription, error) {
	var s domain.QuoteSubscription
	err := row.Scan(&s.ID, &s.ChatID, &s.DisplayName, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

func (r *subscriptionRepository) ListSubscriptions(ctx context.Context) ([]domain.QuoteSubscription, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+subscriptionColumns+` FROM quote_subscriptions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying subscriptions: %w", err)
	}
	defer rows.Close()

	var result []domain.QuoteSubscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning subscription row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.QuoteSubscription{}, nil
	}
	return result, nil
}

func (r *subscriptionRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM quote_subscriptions WHERE active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active subscriptions: %w", err)
	}
	return count, nil
}

func (r *subscriptionRepository) SetSubscriptionActive(ctx context.Context, id int64, active bool, updatedAt time.Time) (*domain.QuoteSubscription, error) {
	query := `
		UPDATE quote_subscriptions
		SET active = $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + subscriptionColumns
	s, err := scanSubscription(r.Pool.QueryRow(ctx, query, id, active, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("subscription %d: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error toggling subscription: %w", err)
	}
	return &s, nil
}
