package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
)

const uniqueViolationCode = "23505"

// userRepository implements the UserRepositoryFacade interface.
type userRepository struct {
	BaseRepository
}

func newUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &userRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.UserRepositoryFacade = (*userRepository)(nil)

const userColumns = `user_id, email, COALESCE(full_name, ''), password_hash, role, created_at, last_login_at, deleted_at`

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.LastLoginAt, &u.DeletedAt)
	return u, err
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND deleted_at IS NULL`
	u, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding user by id: %w", err)
	}
	return &u, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 AND deleted_at IS NULL`
	u, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("error finding user by email: %w", err)
	}
	return &u, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY created_at DESC`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.User{}, nil
	}
	return result, nil
}

func (r *userRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}

func (r *userRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, email, full_name, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID, user.Email, user.FullName, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("email %s: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("error saving user: %w", err)
	}
	return nil
}

func (r *userRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	query := `UPDATE users SET deleted_at = $2 WHERE user_id = $1 AND deleted_at IS NULL`
	tag, err := r.Pool.Exec(ctx, query, userID, deletedAt)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *userRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	query := `UPDATE users SET last_login_at = $2 WHERE user_id = $1 AND deleted_at IS NULL`
	if _, err := r.Pool.Exec(ctx, query, userID, at); err != nil {
		return fmt.Errorf("error updating last login: %w", err)
	}
	return nil
}
