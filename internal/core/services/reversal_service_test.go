package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/abcbank/corebank/internal/apperrors"
	"github.com/abcbank/corebank/internal/core/domain"
	portssvc "github.com/abcbank/corebank/internal/core/ports/services"
	"github.com/abcbank/corebank/internal/core/services"
)

type ReversalServiceTestSuite struct {
	suite.Suite
	mockLedger *MockLedgerRepository
	service    portssvc.ReversalSvcFacade
}

func (suite *ReversalServiceTestSuite) SetupTest() {
	suite.mockLedger = new(MockLedgerRepository)
	suite.service = services.NewReversalService(suite.mockLedger)
}

func (suite *ReversalServiceTestSuite) TestReverse_Success() {
	ctx := context.Background()
	record := &domain.TransactionRecord{
		TransactionID: "txn-1",
		AccountNumber: "1001",
		Kind:          domain.Deposit,
		Amount:        decimal.NewFromInt(500),
		Status:        domain.Success,
	}

	suite.mockLedger.On("FindTransactionByID", ctx, "txn-1").Return(record, nil).Once()
	suite.mockLedger.On("SetTransactionStatus", ctx, "txn-1", domain.Reversed).Return(nil).Once()

	reversed, err := suite.service.Reverse(ctx, "txn-1")

	suite.Require().NoError(err)
	suite.Equal(domain.Reversed, reversed.Status)
	// Only the status flag changes; no balance is restored.
	suite.True(reversed.Amount.Equal(decimal.NewFromInt(500)))
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *ReversalServiceTestSuite) TestReverse_NotFound() {
	ctx := context.Background()

	suite.mockLedger.On("FindTransactionByID", ctx, "missing").Return(nil, apperrors.ErrTransactionNotFound).Once()

	reversed, err := suite.service.Reverse(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(reversed)
	suite.ErrorIs(err, apperrors.ErrTransactionNotFound)
	suite.mockLedger.AssertNotCalled(suite.T(), "SetTransactionStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReversalServiceTestSuite) TestReverse_AlreadyReversed() {
	ctx := context.Background()
	record := &domain.TransactionRecord{
		TransactionID: "txn-1",
		Status:        domain.Reversed,
	}

	suite.mockLedger.On("FindTransactionByID", ctx, "txn-1").Return(record, nil).Once()

	reversed, err := suite.service.Reverse(ctx, "txn-1")

	suite.Require().Error(err)
	suite.Nil(reversed)
	suite.ErrorIs(err, apperrors.ErrAlreadyReversed)
	suite.mockLedger.AssertNotCalled(suite.T(), "SetTransactionStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReversalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReversalServiceTestSuite))
}
