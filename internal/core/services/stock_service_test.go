package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/dto"
)

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) ListStock(ctx context.Context) ([]domain.CurrencyStock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyStock), args.Error(1)
}

func (m *MockStockRepository) FindStockByID(ctx context.Context, id int64) (*domain.CurrencyStock, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyStock), args.Error(1)
}

func (m *MockStockRepository) UpdateStock(ctx context.Context, stock domain.CurrencyStock, updatedAt time.Time) (*domain.CurrencyStock, error) {
	args := m.Called(ctx, stock, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyStock), args.Error(1)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockRepo *MockStockRepository
	service  portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockStockRepository)
	suite.service = services.NewStockService(suite.mockRepo)
}

func (suite *StockServiceTestSuite) TestListStock_Success() {
	ctx := context.Background()
	expected := []domain.CurrencyStock{
		{ID: 1, Currency: "USD", BuyPrice: decimal.NewFromInt(980), SellPrice: decimal.NewFromInt(1010)},
	}
	suite.mockRepo.On("ListStock", ctx).Return(expected, nil).Once()

	stock, err := suite.service.ListStock(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, stock)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestListStock_Error() {
	ctx := context.Background()
	suite.mockRepo.On("ListStock", ctx).Return(nil, assert.AnError).Once()

	stock, err := suite.service.ListStock(ctx)

	suite.Require().Error(err)
	suite.Nil(stock)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *StockServiceTestSuite) TestUpdateStock_Success() {
	ctx := context.Background()
	current := &domain.CurrencyStock{ID: 1, Currency: "USD", BuyPrice: decimal.NewFromInt(980)}
	req := dto.UpdateStockRequest{
		BuyPrice:       decimal.NewFromInt(990),
		SellPrice:      decimal.NewFromInt(1020),
		AvailableStock: decimal.NewFromInt(5000),
	}

	suite.mockRepo.On("FindStockByID", ctx, int64(1)).Return(current, nil).Once()
	suite.mockRepo.On("UpdateStock", ctx, mock.MatchedBy(func(s domain.CurrencyStock) bool {
		return s.ID == 1 && s.Currency == "USD" &&
			s.BuyPrice.Equal(req.BuyPrice) &&
			s.SellPrice.Equal(req.SellPrice) &&
			s.AvailableStock.Equal(req.AvailableStock)
	}), mock.AnythingOfType("time.Time")).
		Return(&domain.CurrencyStock{ID: 1, Currency: "USD", BuyPrice: req.BuyPrice, SellPrice: req.SellPrice, AvailableStock: req.AvailableStock}, nil).Once()

	updated, err := suite.service.UpdateStock(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.True(updated.BuyPrice.Equal(req.BuyPrice))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestUpdateStock_ZeroValuesAllowed() {
	// A sold-out currency legitimately has zero stock
	ctx := context.Background()
	current := &domain.CurrencyStock{ID: 2, Currency: "EUR"}
	req := dto.UpdateStockRequest{
		BuyPrice:       decimal.NewFromInt(1050),
		SellPrice:      decimal.NewFromInt(1080),
		AvailableStock: decimal.Zero,
	}

	suite.mockRepo.On("FindStockByID", ctx, int64(2)).Return(current, nil).Once()
	suite.mockRepo.On("UpdateStock", ctx, mock.AnythingOfType("domain.CurrencyStock"), mock.AnythingOfType("time.Time")).
		Return(&domain.CurrencyStock{ID: 2, Currency: "EUR"}, nil).Once()

	_, err := suite.service.UpdateStock(ctx, 2, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestUpdateStock_NegativeRejected() {
	ctx := context.Background()
	req := dto.UpdateStockRequest{
		BuyPrice:       decimal.NewFromInt(-1),
		SellPrice:      decimal.NewFromInt(1000),
		AvailableStock: decimal.Zero,
	}

	updated, err := suite.service.UpdateStock(ctx, 1, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindStockByID")
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateStock")
}

func (suite *StockServiceTestSuite) TestUpdateStock_NotFound() {
	ctx := context.Background()
	req := dto.UpdateStockRequest{
		BuyPrice:  decimal.NewFromInt(1),
		SellPrice: decimal.NewFromInt(2),
	}
	suite.mockRepo.On("FindStockByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateStock(ctx, 99, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(updated)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateStock")
}

// --- Run Suite ---
func TestStockService(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
