package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portsrepo "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/repositories"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
	"github.com/mfigueredo/cambio_admin_backend/internal/utils"
)

// userService implements the UserSvcFacade interface.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Authenticate verifies credentials and records the login time on success.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: wrong password", apperrors.ErrValidation)
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.UserID, time.Now()); err != nil {
		// A login still succeeds if we could not record it.
		s.LogError(ctx, err, "Failed to record last login", slog.String("target_user_id", user.UserID))
	}

	return user, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: passwordHash,
		Role:         domain.UserRole(req.Role),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created",
		slog.String("target_user_id", user.UserID),
		slog.String("role", req.Role),
		slog.String("creator_user_id", creatorUserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("target_user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", userID))
	return nil
}
