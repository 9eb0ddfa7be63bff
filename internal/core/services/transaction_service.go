package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
	"github.com/abuyamnglobal-com/tajheez/internal/middleware"
)

// transactionService implements the transaction approval workflow.
type transactionService struct {
	txnRepo   portsrepo.TransactionRepositoryFacade
	partyRepo portsrepo.PartyReader
	refRepo   portsrepo.ReferenceRepositoryFacade
	userRepo  portsrepo.UserReader
}

// NewTransactionService creates a new transaction lifecycle service.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	partyRepo portsrepo.PartyReader,
	refRepo portsrepo.ReferenceRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:   txnRepo,
		partyRepo: partyRepo,
		refRepo:   refRepo,
		userRepo:  userRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request and persists it as PENDING.
// All validation happens before the write; a failing request never
// partially persists.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	vErr := apperrors.NewValidationError()

	var trxDate time.Time
	if req.TrxDate == "" {
		vErr.Add("trx_date", "is required")
	} else {
		parsed, err := time.Parse(dto.DateLayout, req.TrxDate)
		if err != nil {
			vErr.Add("trx_date", "must be a valid date (YYYY-MM-DD)")
		} else {
			trxDate = parsed
		}
	}

	if req.FromPartyID <= 0 {
		vErr.Add("from_party_id", "is required")
	}
	if req.ToPartyID <= 0 {
		vErr.Add("to_party_id", "is required")
	}
	if req.FromPartyID > 0 && req.FromPartyID == req.ToPartyID {
		vErr.Add("to_party_id", "must differ from from_party_id")
	}
	if req.CategoryCode == "" {
		vErr.Add("category_code", "is required")
	}
	if !req.Amount.GreaterThan(decimal.Zero) {
		vErr.Add("amount", "must be greater than zero")
	}
	if req.PaymentMethodCode == "" {
		vErr.Add("payment_method_code", "is required")
	}
	if req.CreatedBy <= 0 {
		vErr.Add("created_by", "is required")
	}

	if vErr.HasErrors() {
		return 0, vErr
	}

	// Referential checks: every reference must point at active data.
	s.checkPartyRef(ctx, vErr, "from_party_id", req.FromPartyID)
	s.checkPartyRef(ctx, vErr, "to_party_id", req.ToPartyID)

	category, err := s.refRepo.FindCategoryByCode(ctx, req.CategoryCode)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		vErr.Add("category_code", "unknown category")
	case err != nil:
		return 0, fmt.Errorf("failed to look up category %s: %w", req.CategoryCode, err)
	case !category.IsActive:
		vErr.Add("category_code", "category is inactive")
	}

	method, err := s.refRepo.FindPaymentMethodByCode(ctx, req.PaymentMethodCode)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		vErr.Add("payment_method_code", "unknown payment method")
	case err != nil:
		return 0, fmt.Errorf("failed to look up payment method %s: %w", req.PaymentMethodCode, err)
	case !method.IsActive:
		vErr.Add("payment_method_code", "payment method is inactive")
	}

	creator, err := s.userRepo.FindUserByID(ctx, req.CreatedBy)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		vErr.Add("created_by", "unknown user")
	case err != nil:
		return 0, fmt.Errorf("failed to look up user %d: %w", req.CreatedBy, err)
	case !creator.IsActive:
		vErr.Add("created_by", "user is inactive")
	}

	if vErr.HasErrors() {
		return 0, vErr
	}

	id, err := s.txnRepo.CreateTransaction(ctx, domain.NewTransaction{
		TrxDate:           trxDate,
		FromPartyID:       req.FromPartyID,
		ToPartyID:         req.ToPartyID,
		CategoryCode:      req.CategoryCode,
		Amount:            req.Amount,
		PaymentMethodCode: req.PaymentMethodCode,
		Description:       req.Description,
		CreatedBy:         req.CreatedBy,
		FromAccountID:     req.FromAccountID,
		ToAccountID:       req.ToAccountID,
		RelatedTxID:       req.RelatedTxID,
	})
	if err != nil {
		logger.Error("Failed to persist transaction", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to persist transaction: %w", err)
	}

	logger.Info("Transaction created", slog.Int64("transaction_id", id), slog.Int64("created_by", req.CreatedBy))
	return id, nil
}

// checkPartyRef validates that a party reference exists and is active,
// collecting a field error otherwise.
func (s *transactionService) checkPartyRef(ctx context.Context, vErr *apperrors.ValidationError, field string, partyID int64) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		vErr.Add(field, "unknown party")
	case err != nil:
		middleware.GetLoggerFromCtx(ctx).Error("Failed to look up party", slog.Int64("party_id", partyID), slog.String("error", err.Error()))
		vErr.Add(field, "could not be verified")
	case !party.Active:
		vErr.Add(field, "party is inactive")
	}
}

// ApproveTransaction transitions a PENDING transaction to APPROVED.
// A second approve on the same id is an error, not a no-op.
func (s *transactionService) ApproveTransaction(ctx context.Context, transactionID int64, actingUserID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction for approval", slog.Int64("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return err
	}

	if !txn.Status.CanTransitionTo(domain.StatusApproved) {
		return fmt.Errorf("%w: transaction %d is %s", apperrors.ErrInvalidTransition, transactionID, txn.Status)
	}

	// The store re-checks the PENDING precondition; a concurrent loser
	// surfaces ErrInvalidTransition from the repository.
	if err := s.txnRepo.ApproveTransaction(ctx, transactionID, actingUserID); err != nil {
		return err
	}

	logger.Info("Transaction approved", slog.Int64("transaction_id", transactionID), slog.Int64("approved_by", actingUserID))
	return nil
}

// RejectTransaction transitions a PENDING transaction to REJECTED.
// Rejection always requires a reason.
func (s *transactionService) RejectTransaction(ctx context.Context, transactionID int64, actingUserID int64, note string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(note) == "" {
		vErr := apperrors.NewValidationError()
		vErr.Add("note", "is required to reject a transaction")
		return vErr
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction for rejection", slog.Int64("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return err
	}

	if !txn.Status.CanTransitionTo(domain.StatusRejected) {
		return fmt.Errorf("%w: transaction %d is %s", apperrors.ErrInvalidTransition, transactionID, txn.Status)
	}

	if err := s.txnRepo.RejectTransaction(ctx, transactionID, actingUserID, note); err != nil {
		return err
	}

	logger.Info("Transaction rejected", slog.Int64("transaction_id", transactionID), slog.Int64("rejected_by", actingUserID))
	return nil
}

// ListPendingApprovals returns the approval queue, newest first.
func (s *transactionService) ListPendingApprovals(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListByStatus(ctx, domain.StatusPending)
}

// ListTransactions returns all enriched transactions, newest first.
func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return s.txnRepo.ListEnriched(ctx)
}
