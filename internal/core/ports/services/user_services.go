package services

import (
	"context"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
)

// UserSvcFacade manages staff accounts and credential checks.
type UserSvcFacade interface {
	// Authenticate verifies email/password credentials and records the login.
	// It returns apperrors.ErrNotFound for unknown emails and
	// apperrors.ErrValidation for a wrong password.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}
