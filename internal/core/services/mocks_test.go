package services_test

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, txn domain.NewTransaction) (int64, error) {
	args := m.Called(ctx, txn)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) ApproveTransaction(ctx context.Context, transactionID int64, actingUserID int64) error {
	args := m.Called(ctx, transactionID, actingUserID)
	return args.Error(0)
}

func (m *MockTransactionRepository) RejectTransaction(ctx context.Context, transactionID int64, actingUserID int64, note string) error {
	args := m.Called(ctx, transactionID, actingUserID, note)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListEnriched(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	args := m.Called(ctx, status)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

// --- Mock PartyRepository ---
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	var party *domain.Party
	if args.Get(0) != nil {
		party = args.Get(0).(*domain.Party)
	}
	return party, args.Error(1)
}

func (m *MockPartyRepository) ListActiveParties(ctx context.Context) ([]domain.Party, error) {
	args := m.Called(ctx)
	var parties []domain.Party
	if args.Get(0) != nil {
		parties = args.Get(0).([]domain.Party)
	}
	return parties, args.Error(1)
}

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) FindCategoryByCode(ctx context.Context, code string) (*domain.Category, error) {
	args := m.Called(ctx, code)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockReferenceRepository) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockReferenceRepository) FindPaymentMethodByCode(ctx context.Context, code string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, code)
	var method *domain.PaymentMethod
	if args.Get(0) != nil {
		method = args.Get(0).(*domain.PaymentMethod)
	}
	return method, args.Error(1)
}

func (m *MockReferenceRepository) ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	var methods []domain.PaymentMethod
	if args.Get(0) != nil {
		methods = args.Get(0).([]domain.PaymentMethod)
	}
	return methods, args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}
