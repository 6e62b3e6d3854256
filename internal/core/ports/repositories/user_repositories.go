package repositories

import (
	"context"
	"time"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
)

// UserReader defines read operations for staff accounts.
type UserReader interface {
	// FindUserByID retrieves a non-deleted user by id.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a non-deleted user by email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all non-deleted users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers counts non-deleted users.
	CountUsers(ctx context.Context) (int64, error)
}

// UserWriter defines write operations for staff accounts.
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// email is already taken.
	SaveUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes a user.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
