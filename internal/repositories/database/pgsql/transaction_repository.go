package pgsql

import (
	"context"
	"errors"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	"github.com/abuyamnglobal-com/tajheez/internal/models"
	"github.com/abuyamnglobal-com/tajheez/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SQLSTATE codes raised by the transaction procedures.
const (
	codeTxNotFound   = "TX404"
	codeTxNotPending = "TX409"
	codeTxInvalid    = "TX400"
)

// PgxTransactionRepository persists transactions through the store's
// procedures and reads them back through the enriched view.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new repository for transaction data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const enrichedColumns = `
	id, trx_date,
	from_party_id, from_party_name, from_party_type,
	to_party_id, to_party_name, to_party_type,
	category_code, category_label,
	amount,
	payment_method_code, payment_method_label,
	description,
	created_by, created_by_name,
	from_account_id, to_account_id, related_tx_id,
	status,
	approved_by, approved_at,
	rejected_by, rejected_at, rejection_note,
	created_at`

// CreateTransaction persists a new PENDING transaction via
// pr_create_transaction and returns the assigned id.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.NewTransaction) (int64, error) {
	var description *string
	if txn.Description != "" {
		description = &txn.Description
	}

	var id int64
	// The procedure's final INOUT parameter carries the assigned id back.
	err := r.Pool.QueryRow(ctx,
		`CALL pr_create_transaction($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULL)`,
		txn.TrxDate,
		txn.FromPartyID,
		txn.ToPartyID,
		txn.CategoryCode,
		txn.Amount,
		txn.PaymentMethodCode,
		description,
		txn.CreatedBy,
		txn.FromAccountID,
		txn.ToAccountID,
		txn.RelatedTxID,
	).Scan(&id)
	if err != nil {
		return 0, mapProcedureError(err, "failed to create transaction")
	}

	return id, nil
}

// ApproveTransaction transitions a PENDING transaction to APPROVED via
// pr_approve_transaction. The procedure updates WHERE status = 'PENDING',
// so concurrent terminal transitions serialize in the store and the loser
// gets ErrInvalidTransition here.
func (r *PgxTransactionRepository) ApproveTransaction(ctx context.Context, transactionID int64, actingUserID int64) error {
	_, err := r.Pool.Exec(ctx, `CALL pr_approve_transaction($1, $2)`, transactionID, actingUserID)
	if err != nil {
		return mapProcedureError(err, "failed to approve transaction")
	}
	return nil
}

// RejectTransaction transitions a PENDING transaction to REJECTED via
// pr_reject_transaction.
func (r *PgxTransactionRepository) RejectTransaction(ctx context.Context, transactionID int64, actingUserID int64, note string) error {
	_, err := r.Pool.Exec(ctx, `CALL pr_reject_transaction($1, $2, $3)`, transactionID, actingUserID, note)
	if err != nil {
		return mapProcedureError(err, "failed to reject transaction")
	}
	return nil
}

// FindTransactionByID retrieves a single enriched transaction.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + enrichedColumns + ` FROM vw_transactions_enriched WHERE id = $1;`

	row := r.Pool.QueryRow(ctx, query, transactionID)
	m, err := scanEnrichedRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewStoreUnavailableError("failed to find transaction", err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListEnriched retrieves all transactions, newest first.
func (r *PgxTransactionRepository) ListEnriched(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + enrichedColumns + ` FROM vw_transactions_enriched ORDER BY id DESC;`
	return r.queryEnriched(ctx, query)
}

// ListByStatus retrieves all transactions in the given status, newest first.
func (r *PgxTransactionRepository) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]domain.Transaction, error) {
	query := `SELECT ` + enrichedColumns + ` FROM vw_transactions_enriched WHERE status = $1 ORDER BY id DESC;`
	return r.queryEnriched(ctx, query, string(status))
}

func (r *PgxTransactionRepository) queryEnriched(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query transactions", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		m, err := scanEnrichedRow(rows)
		if err != nil {
			return nil, apperrors.NewStoreUnavailableError("failed to scan transaction row", err)
		}
		transactions = append(transactions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}

// scanEnrichedRow scans one row of vw_transactions_enriched.
func scanEnrichedRow(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TrxDate,
		&m.FromPartyID,
		&m.FromPartyName,
		&m.FromPartyType,
		&m.ToPartyID,
		&m.ToPartyName,
		&m.ToPartyType,
		&m.CategoryCode,
		&m.CategoryLabel,
		&m.Amount,
		&m.PaymentMethodCode,
		&m.PaymentMethodLabel,
		&m.Description,
		&m.CreatedBy,
		&m.CreatedByName,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.RelatedTxID,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.RejectionNote,
		&m.CreatedAt,
	)
	return m, err
}

// mapProcedureError translates the procedures' SQLSTATEs into app errors.
// Anything else is a store failure surfaced verbatim, never retried.
func mapProcedureError(err error, message string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeTxNotFound:
			return apperrors.NewNotFoundError(pgErr.Message)
		case codeTxNotPending:
			return apperrors.NewAppError(409, pgErr.Message, apperrors.ErrInvalidTransition)
		case codeTxInvalid:
			vErr := apperrors.NewValidationError()
			vErr.Add("transaction", pgErr.Message)
			return vErr
		}
	}
	return apperrors.NewStoreUnavailableError(message, err)
}
