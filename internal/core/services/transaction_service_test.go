package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
	"github.com/abuyamnglobal-com/tajheez/internal/core/services"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo   *MockTransactionRepository
	mockPartyRepo *MockPartyRepository
	mockRefRepo   *MockReferenceRepository
	mockUserRepo  *MockUserRepository
	service       portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockPartyRepo = new(MockPartyRepository)
	suite.mockRefRepo = new(MockReferenceRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockPartyRepo, suite.mockRefRepo, suite.mockUserRepo)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func validCreateRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		TrxDate:           "2025-03-10",
		FromPartyID:       1,
		ToPartyID:         2,
		CategoryCode:      "CAPITAL",
		Amount:            decimal.NewFromInt(500),
		PaymentMethodCode: "BANK",
		Description:       "March capital injection",
		CreatedBy:         7,
	}
}

func (suite *TransactionServiceTestSuite) expectReferencesResolve() {
	ctx := mock.Anything
	suite.mockPartyRepo.On("FindPartyByID", ctx, int64(1)).
		Return(&domain.Party{PartyID: 1, Name: "Alice", Type: domain.PartyInvestor, Active: true}, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, int64(2)).
		Return(&domain.Party{PartyID: 2, Name: "Acme Co", Type: domain.PartyCompany, Active: true}, nil).Once()
	suite.mockRefRepo.On("FindCategoryByCode", ctx, "CAPITAL").
		Return(&domain.Category{CategoryID: 1, Code: "CAPITAL", Label: "Capital Contribution", IsActive: true}, nil).Once()
	suite.mockRefRepo.On("FindPaymentMethodByCode", ctx, "BANK").
		Return(&domain.PaymentMethod{PaymentMethodID: 2, Code: "BANK", Label: "Bank Transfer", IsActive: true}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).
		Return(&domain.User{UserID: 7, FullName: "Carol", Role: domain.RoleMember, IsActive: true}, nil).Once()
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	suite.expectReferencesResolve()

	suite.mockTxnRepo.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(txn domain.NewTransaction) bool {
		return txn.FromPartyID == 1 &&
			txn.ToPartyID == 2 &&
			txn.Amount.Equal(decimal.NewFromInt(500)) &&
			txn.TrxDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(int64(42), nil).Once()

	id, err := suite.service.CreateTransaction(ctx, validCreateRequest())

	suite.Require().NoError(err)
	suite.Equal(int64(42), id)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockPartyRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingFields() {
	ctx := context.Background()

	id, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{})

	suite.Require().Error(err)
	suite.Zero(id)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Fields, "trx_date")
	suite.Contains(vErr.Fields, "from_party_id")
	suite.Contains(vErr.Fields, "to_party_id")
	suite.Contains(vErr.Fields, "category_code")
	suite.Contains(vErr.Fields, "amount")
	suite.Contains(vErr.Fields, "payment_method_code")
	suite.Contains(vErr.Fields, "created_by")

	// Nothing is persisted on validation failure.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SamePartyBothSides() {
	ctx := context.Background()
	req := validCreateRequest()
	req.ToPartyID = req.FromPartyID

	id, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Zero(id)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Fields, "to_party_id")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := validCreateRequest()
	req.Amount = decimal.NewFromInt(-10)

	id, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Zero(id)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Fields, "amount")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MalformedDate() {
	ctx := context.Background()
	req := validCreateRequest()
	req.TrxDate = "10/03/2025"

	id, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Zero(id)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Fields, "trx_date")
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownReferences() {
	ctx := mock.Anything
	suite.mockPartyRepo.On("FindPartyByID", ctx, int64(1)).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, int64(2)).
		Return(&domain.Party{PartyID: 2, Name: "Acme Co", Type: domain.PartyCompany, Active: true}, nil).Once()
	suite.mockRefRepo.On("FindCategoryByCode", ctx, "CAPITAL").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRefRepo.On("FindPaymentMethodByCode", ctx, "BANK").
		Return(&domain.PaymentMethod{PaymentMethodID: 2, Code: "BANK", Label: "Bank Transfer", IsActive: true}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).
		Return(&domain.User{UserID: 7, FullName: "Carol", Role: domain.RoleMember, IsActive: true}, nil).Once()

	id, err := suite.service.CreateTransaction(context.Background(), validCreateRequest())

	suite.Require().Error(err)
	suite.Zero(id)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Fields, "from_party_id")
	suite.Contains(vErr.Fields, "category_code")
	suite.NotContains(vErr.Fields, "to_party_id")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InactiveParty() {
	ctx := mock.Anything
	suite.mockPartyRepo.On("FindPartyByID", ctx, int64(1)).
		Return(&domain.Party{PartyID: 1, Name: "Alice", Type: domain.PartyInvestor, Active: false}, nil).Once()
	suite.mockPartyRepo.On("FindPartyByID", ctx, int64(2)).
		Return(&domain.Party{PartyID: 2, Name: "Acme Co", Type: domain.PartyCompany, Active: true}, nil).Once()
	suite.mockRefRepo.On("FindCategoryByCode", ctx, "CAPITAL").
		Return(&domain.Category{CategoryID: 1, Code: "CAPITAL", Label: "Capital Contribution", IsActive: true}, nil).Once()
	suite.mockRefRepo.On("FindPaymentMethodByCode", ctx, "BANK").
		Return(&domain.PaymentMethod{PaymentMethodID: 2, Code: "BANK", Label: "Bank Transfer", IsActive: true}, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, int64(7)).
		Return(&domain.User{UserID: 7, FullName: "Carol", Role: domain.RoleMember, IsActive: true}, nil).Once()

	id, err := suite.service.CreateTransaction(context.Background(), validCreateRequest())

	suite.Require().Error(err)
	suite.Zero(id)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Fields, "from_party_id")
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_Success() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, int64(5)).
		Return(&domain.Transaction{TransactionID: 5, Status: domain.StatusPending}, nil).Once()
	suite.mockTxnRepo.On("ApproveTransaction", mock.Anything, int64(5), int64(9)).
		Return(nil).Once()

	err := suite.service.ApproveTransaction(ctx, 5, 9)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_NotFound() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ApproveTransaction(ctx, 99, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ApproveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_AlreadyApproved() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, int64(5)).
		Return(&domain.Transaction{TransactionID: 5, Status: domain.StatusApproved}, nil).Once()

	err := suite.service.ApproveTransaction(ctx, 5, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ApproveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_AlreadyRejected() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, int64(5)).
		Return(&domain.Transaction{TransactionID: 5, Status: domain.StatusRejected}, nil).Once()

	err := suite.service.ApproveTransaction(ctx, 5, 9)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *TransactionServiceTestSuite) TestRejectTransaction_Success() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, int64(5)).
		Return(&domain.Transaction{TransactionID: 5, Status: domain.StatusPending}, nil).Once()
	suite.mockTxnRepo.On("RejectTransaction", mock.Anything, int64(5), int64(9), "duplicate entry").
		Return(nil).Once()

	err := suite.service.RejectTransaction(ctx, 5, 9, "duplicate entry")

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestRejectTransaction_EmptyNote() {
	ctx := context.Background()

	err := suite.service.RejectTransaction(ctx, 5, 9, "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	var vErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &vErr)
	suite.Contains(vErr.Fields, "note")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestRejectTransaction_AlreadyTerminal() {
	ctx := context.Background()
	suite.mockTxnRepo.On("FindTransactionByID", mock.Anything, int64(5)).
		Return(&domain.Transaction{TransactionID: 5, Status: domain.StatusRejected}, nil).Once()

	err := suite.service.RejectTransaction(ctx, 5, 9, "still no")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "RejectTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestListPendingApprovals() {
	ctx := context.Background()
	pending := []domain.Transaction{
		{TransactionID: 8, Status: domain.StatusPending},
		{TransactionID: 3, Status: domain.StatusPending},
	}
	suite.mockTxnRepo.On("ListByStatus", mock.Anything, domain.StatusPending).
		Return(pending, nil).Once()

	txns, err := suite.service.ListPendingApprovals(ctx)

	suite.Require().NoError(err)
	suite.Equal(pending, txns)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions() {
	ctx := context.Background()
	all := []domain.Transaction{
		{TransactionID: 8, Status: domain.StatusApproved},
		{TransactionID: 3, Status: domain.StatusPending},
	}
	suite.mockTxnRepo.On("ListEnriched", mock.Anything).Return(all, nil).Once()

	txns, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.Equal(all, txns)
}
