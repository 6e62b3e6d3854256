package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mfigueredo/cambio_admin_backend/internal/apperrors"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/domain"
	portssvc "github.com/mfigueredo/cambio_admin_backend/internal/core/ports/services"
	"github.com/mfigueredo/cambio_admin_backend/internal/core/services"
)

// --- Test Suite ---
type OperationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOperationRepository
	service  portssvc.OperationSvcFacade
}

func (suite *OperationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOperationRepository)
	suite.service = services.NewOperationService(suite.mockRepo)
}

func (suite *OperationServiceTestSuite) TestListOperations_NoStatusUsesRecent() {
	ctx := context.Background()
	expected := []domain.ExchangeOperation{{OperationNumber: "OP-1", Status: domain.StatusCompleted}}
	suite.mockRepo.On("ListRecent", ctx, 50).Return(expected, nil).Once()

	ops, err := suite.service.ListOperations(ctx, "", 50)

	suite.Require().NoError(err)
	suite.Equal(expected, ops)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListByStatus")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestListOperations_WithStatusFilter() {
	ctx := context.Background()
	expected := []domain.ExchangeOperation{{OperationNumber: "OP-2", Status: domain.StatusPending}}
	suite.mockRepo.On("ListByStatus", ctx, domain.StatusPending, 20).Return(expected, nil).Once()

	ops, err := suite.service.ListOperations(ctx, domain.StatusPending, 20)

	suite.Require().NoError(err)
	suite.Equal(expected, ops)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestListOperations_EmptyResultNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListRecent", ctx, 10).Return([]domain.ExchangeOperation(nil), nil).Once()

	ops, err := suite.service.ListOperations(ctx, "", 10)

	suite.Require().NoError(err)
	suite.NotNil(ops)
	suite.Empty(ops)
}

func (suite *OperationServiceTestSuite) TestCompleteOperation_Success() {
	ctx := context.Background()
	completed := &domain.ExchangeOperation{OperationNumber: "OP-3", Status: domain.StatusCompleted}
	suite.mockRepo.On("MarkCompleted", ctx, "OP-3", mock.AnythingOfType("time.Time")).
		Return(completed, nil).Once()

	op, err := suite.service.CompleteOperation(ctx, "OP-3")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, op.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OperationServiceTestSuite) TestCompleteOperation_NotPending() {
	ctx := context.Background()
	suite.mockRepo.On("MarkCompleted", ctx, "OP-4", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrConflict).Once()

	op, err := suite.service.CompleteOperation(ctx, "OP-4")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.Nil(op)
}

func (suite *OperationServiceTestSuite) TestCompleteOperation_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("MarkCompleted", ctx, "OP-MISSING", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	op, err := suite.service.CompleteOperation(ctx, "OP-MISSING")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(op)
}

func (suite *OperationServiceTestSuite) TestListOperations_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListByStatus", ctx, domain.StatusCancelled, 0).Return(nil, assert.AnError).Once()

	ops, err := suite.service.ListOperations(ctx, domain.StatusCancelled, 0)

	suite.Require().Error(err)
	suite.Nil(ops)
	suite.ErrorIs(err, assert.AnError)
}

// --- Run Suite ---
func TestOperationService(t *testing.T) {
	suite.Run(t, new(OperationServiceTestSuite))
}
