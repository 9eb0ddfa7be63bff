package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionService) ApproveTransaction(ctx context.Context, transactionID int64, actingUserID int64) error {
	args := m.Called(ctx, transactionID, actingUserID)
	return args.Error(0)
}

func (m *MockTransactionService) RejectTransaction(ctx context.Context, transactionID int64, actingUserID int64, note string) error {
	args := m.Called(ctx, transactionID, actingUserID, note)
	return args.Error(0)
}

func (m *MockTransactionService) ListPendingApprovals(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

type TransactionHandlerTestSuite struct {
	suite.Suite
	mockService *MockTransactionService
	router      *gin.Engine
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockTransactionService)

	h := newTransactionHandler(suite.mockService)
	suite.router = gin.New()
	api := suite.router.Group("/api")
	transactions := api.Group("/transactions")
	transactions.GET("", h.listTransactions)
	transactions.GET("/pending", h.listPendingApprovals)
	transactions.POST("", h.createTransaction)
	transactions.POST("/:id/approve", h.approveTransaction)
	transactions.POST("/:id/reject", h.rejectTransaction)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

func (suite *TransactionHandlerTestSuite) perform(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TransactionHandlerTestSuite) TestListTransactions() {
	txns := []domain.Transaction{
		{
			TransactionID: 2,
			TrxDate:       time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			FromPartyID:   1,
			ToPartyID:     2,
			Amount:        decimal.NewFromInt(500),
			Status:        domain.StatusPending,
			Direction:     domain.DirectionIn,
		},
	}
	suite.mockService.On("ListTransactions", mock.Anything).Return(txns, nil).Once()

	w := suite.perform(http.MethodGet, "/api/transactions", "")

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal(int64(2), resp[0].ID)
	suite.Equal("2025-03-05", resp[0].TrxDate)
	suite.Equal("PENDING", resp[0].Status)
	suite.Equal("Pending", resp[0].StatusLabel)
	suite.Equal("orange", resp[0].StatusColor)
	suite.Equal("In", resp[0].Type)
}

func (suite *TransactionHandlerTestSuite) TestListPending() {
	suite.mockService.On("ListPendingApprovals", mock.Anything).
		Return([]domain.Transaction{}, nil).Once()

	w := suite.perform(http.MethodGet, "/api/transactions/pending", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq("[]", w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Created() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.FromPartyID == 1 && req.ToPartyID == 2 && req.CategoryCode == "CAPITAL"
	})).Return(int64(42), nil).Once()

	body := `{
		"trx_date": "2025-03-10",
		"from_party_id": 1,
		"to_party_id": 2,
		"category_code": "CAPITAL",
		"amount": "500",
		"payment_method_code": "BANK",
		"created_by": 7
	}`
	w := suite.perform(http.MethodPost, "/api/transactions", body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.JSONEq(`{"id": 42}`, w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MalformedBody() {
	w := suite.perform(http.MethodPost, "/api/transactions", `{"trx_date": `)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationFieldsSurface() {
	vErr := apperrors.NewValidationError()
	vErr.Add("amount", "must be greater than zero")
	suite.mockService.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(int64(0), vErr).Once()

	body := `{
		"trx_date": "2025-03-10",
		"from_party_id": 1,
		"to_party_id": 2,
		"category_code": "CAPITAL",
		"amount": "500",
		"payment_method_code": "BANK",
		"created_by": 7
	}`
	w := suite.perform(http.MethodPost, "/api/transactions", body)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("must be greater than zero", resp.Fields["amount"])
}

func (suite *TransactionHandlerTestSuite) TestApproveTransaction_OK() {
	suite.mockService.On("ApproveTransaction", mock.Anything, int64(5), int64(9)).
		Return(nil).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/5/approve", `{"user_id": 9}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestApproveTransaction_NotFound() {
	suite.mockService.On("ApproveTransaction", mock.Anything, int64(99), int64(9)).
		Return(apperrors.NewNotFoundError("transaction 99 not found")).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/99/approve", `{"user_id": 9}`)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestApproveTransaction_Conflict() {
	suite.mockService.On("ApproveTransaction", mock.Anything, int64(5), int64(9)).
		Return(fmt.Errorf("%w: transaction 5 is APPROVED", apperrors.ErrInvalidTransition)).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/5/approve", `{"user_id": 9}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestApproveTransaction_BadID() {
	w := suite.perform(http.MethodPost, "/api/transactions/abc/approve", `{"user_id": 9}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ApproveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionHandlerTestSuite) TestRejectTransaction_OK() {
	suite.mockService.On("RejectTransaction", mock.Anything, int64(5), int64(9), "duplicate entry").
		Return(nil).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/5/reject", `{"user_id": 9, "note": "duplicate entry"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *TransactionHandlerTestSuite) TestRejectTransaction_MissingNote() {
	vErr := apperrors.NewValidationError()
	vErr.Add("note", "is required to reject a transaction")
	suite.mockService.On("RejectTransaction", mock.Anything, int64(5), int64(9), "").
		Return(vErr).Once()

	w := suite.perform(http.MethodPost, "/api/transactions/5/reject", `{"user_id": 9}`)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Contains(resp.Fields, "note")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_StoreFailure() {
	suite.mockService.On("ListTransactions", mock.Anything).
		Return(nil, apperrors.NewStoreUnavailableError("failed to query transactions", nil)).Once()

	w := suite.perform(http.MethodGet, "/api/transactions", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "query")
}
