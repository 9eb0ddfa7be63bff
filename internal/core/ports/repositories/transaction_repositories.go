package repositories

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
)

// TransactionReader defines read operations over the transaction ledger.
// Every read is a fresh query against the store; nothing is cached.
type TransactionReader interface {
	// FindTransactionByID retrieves a single enriched transaction.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListEnriched retrieves all transactions from the enriched view,
	// ordered by id descending (newest first).
	ListEnriched(ctx context.Context) ([]domain.Transaction, error)

	// ListByStatus retrieves all transactions in the given status,
	// ordered by id descending.
	ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error)
}

// TransactionWriter defines the mutating operations of the approval workflow.
// The store serializes concurrent terminal transitions on the same row; the
// loser observes apperrors.ErrInvalidTransition.
type TransactionWriter interface {
	// CreateTransaction persists a new PENDING transaction and returns its
	// assigned id.
	CreateTransaction(ctx context.Context, txn domain.NewTransaction) (int64, error)

	// ApproveTransaction transitions a PENDING transaction to APPROVED.
	ApproveTransaction(ctx context.Context, transactionID int64, actingUserID int64) error

	// RejectTransaction transitions a PENDING transaction to REJECTED with a note.
	RejectTransaction(ctx context.Context, transactionID int64, actingUserID int64, note string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
