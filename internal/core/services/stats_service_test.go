package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/services"
)

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) ListSubscriptions(ctx context.Context) ([]domain.QuoteSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.QuoteSubscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSubscriptionRepository) SetSubscriptionActive(ctx context.Context, id int64, active bool, updatedAt time.Time) (*domain.QuoteSubscription, error) {
	args := m.Called(ctx, id, active, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuoteSubscription), args.Error(1)
}

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) ListMovements(ctx context.Context, limit int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) CountMovementsSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type StatsServiceTestSuite struct {
	suite.Suite
	mockUsers     *MockUserRepository
	mockSubs      *MockSubscriptionRepository
	mockOps       *MockOperationRepository
	mockMovements *MockMovementRepository
	service       portssvc.StatsSvcFacade
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.mockUsers = new(MockUserRepository)
	suite.mockSubs = new(MockSubscriptionRepository)
	suite.mockOps = new(MockOperationRepository)
	suite.mockMovements = new(MockMovementRepository)
	suite.service = services.NewStatsService(
		suite.mockUsers,
		suite.mockSubs,
		suite.mockOps,
		suite.mockMovements,
		time.UTC,
	)
}

func (suite *StatsServiceTestSuite) TestGeneralStats_Success() {
	ctx := context.Background()
	volume := decimal.RequireFromString("125000.50")

	suite.mockUsers.On("CountUsers", ctx).Return(int64(4), nil).Once()
	suite.mockSubs.On("CountActiveSubscriptions", ctx).Return(int64(12), nil).Once()
	suite.mockOps.On("CountSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(87), nil).Once()
	suite.mockMovements.On("CountMovementsSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(9), nil).Once()
	suite.mockOps.On("SumInputVolumeSince", ctx, mock.AnythingOfType("time.Time")).Return(volume, nil).Once()

	stats, err := suite.service.GeneralStats(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(stats)
	suite.Equal(int64(4), stats.TotalUsers)
	suite.Equal(int64(12), stats.ActiveSubscriptions)
	suite.Equal(int64(87), stats.OperationsThisMonth)
	suite.Equal(int64(9), stats.MovementsThisMonth)
	suite.True(stats.TotalInputVolume.Equal(volume))

	suite.mockUsers.AssertExpectations(suite.T())
	suite.mockSubs.AssertExpectations(suite.T())
	suite.mockOps.AssertExpectations(suite.T())
	suite.mockMovements.AssertExpectations(suite.T())
}

func (suite *StatsServiceTestSuite) TestGeneralStats_AnyFailureFailsTheBatch() {
	// The stats card is all-or-nothing, unlike the dashboard slices
	ctx := context.Background()

	suite.mockUsers.On("CountUsers", ctx).Return(int64(4), nil)
	suite.mockSubs.On("CountActiveSubscriptions", ctx).Return(int64(0), assert.AnError)
	suite.mockOps.On("CountSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(87), nil)
	suite.mockMovements.On("CountMovementsSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(9), nil)
	suite.mockOps.On("SumInputVolumeSince", ctx, mock.AnythingOfType("time.Time")).Return(decimal.Zero, nil)

	stats, err := suite.service.GeneralStats(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Nil(stats)
}

// --- Run Suite ---
func TestStatsService(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}
