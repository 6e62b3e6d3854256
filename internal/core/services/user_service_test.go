package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
	"github.com/mfigueredo/cambio_admin_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, deletedAt)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) hashedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       "user-1",
		Email:        "staff@example.com",
		PasswordHash: hash,
		Role:         domain.RoleStaff,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := suite.hashedUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockRepo.On("TouchLastLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := suite.hashedUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "battery-staple")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(got)
	suite.mockRepo.AssertNotCalled(suite.T(), "TouchLastLogin")
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmail() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestAuthenticate_TouchLastLoginFailureIsNotFatal() {
	ctx := context.Background()
	user := suite.hashedUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockRepo.On("TouchLastLogin", ctx, user.UserID, mock.AnythingOfType("time.Time")).Return(assert.AnError).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "correct-horse")

	suite.Require().NoError(err)
	suite.NotNil(got)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Email:    "new@example.com",
		Password: "long-enough",
		FullName: "New Person",
		Role:     "staff",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		if u.Email != req.Email || u.FullName != req.FullName || u.Role != domain.RoleStaff {
			return false
		}
		// The stored credential must be a verifiable hash, never the plaintext
		return u.PasswordHash != req.Password && utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, "creator-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(req.Email, user.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Email:    "taken@example.com",
		Password: "long-enough",
		FullName: "Dup",
		Role:     "manager",
	}
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, req, "creator-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	suite.mockRepo.On("MarkUserDeleted", ctx, "user-2", mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, "user-2")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("MarkUserDeleted", ctx, "ghost", mock.AnythingOfType("time.Time")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, "ghost")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestListUsers_EmptyNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListUsers", ctx).Return([]domain.User(nil), nil).Once()

	users, err := suite.service.ListUsers(ctx)

	suite.Require().NoError(err)
	suite.NotNil(users)
	suite.Empty(users)
}

// --- Run Suite ---
func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
