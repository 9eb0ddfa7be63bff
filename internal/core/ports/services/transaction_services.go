package services

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
)

// TransactionSvcFacade defines the transaction lifecycle operations.
//
// State machine: PENDING --approve--> APPROVED, PENDING --reject--> REJECTED.
// Terminal states have no outgoing edges; re-transitions are errors, not no-ops.
type TransactionSvcFacade interface {
	// CreateTransaction validates the request and persists a new PENDING
	// transaction, returning its assigned id. Validation failures carry
	// per-field detail and nothing is persisted.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (int64, error)

	// ApproveTransaction transitions a PENDING transaction to APPROVED,
	// recording the acting user.
	ApproveTransaction(ctx context.Context, transactionID int64, actingUserID int64) error

	// RejectTransaction transitions a PENDING transaction to REJECTED.
	// The note is mandatory; rejection always carries a reason.
	RejectTransaction(ctx context.Context, transactionID int64, actingUserID int64, note string) error

	// ListPendingApprovals returns all PENDING transactions, newest first.
	ListPendingApprovals(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactions returns all transactions enriched with party names,
	// labels and direction, newest first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
