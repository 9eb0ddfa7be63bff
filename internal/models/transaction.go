package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of vw_transactions_enriched (a superset of the
// transactions table). The raw party types are carried so direction can be
// resolved once in mapping rather than re-derived per caller.
type Transaction struct {
	TransactionID     int64           `db:"id"`
	TrxDate           time.Time       `db:"trx_date"`
	FromPartyID       int64           `db:"from_party_id"`
	ToPartyID         int64           `db:"to_party_id"`
	CategoryCode      string          `db:"category_code"`
	Amount            decimal.Decimal `db:"amount"`
	PaymentMethodCode string          `db:"payment_method_code"`
	Description       *string         `db:"description"`
	CreatedBy         int64           `db:"created_by"`
	FromAccountID     *int64          `db:"from_account_id"`
	ToAccountID       *int64          `db:"to_account_id"`
	RelatedTxID       *int64          `db:"related_tx_id"`
	Status            string          `db:"status"`
	ApprovedBy        *int64          `db:"approved_by"`
	ApprovedAt        *time.Time      `db:"approved_at"`
	RejectedBy        *int64          `db:"rejected_by"`
	RejectedAt        *time.Time      `db:"rejected_at"`
	RejectionNote     *string         `db:"rejection_note"`
	CreatedAt         time.Time       `db:"created_at"`

	// Enrichment columns from the view.
	FromPartyName      string `db:"from_party_name"`
	FromPartyType      string `db:"from_party_type"`
	ToPartyName        string `db:"to_party_name"`
	ToPartyType        string `db:"to_party_type"`
	CategoryLabel      string `db:"category_label"`
	PaymentMethodLabel string `db:"payment_method_label"`
	CreatedByName      string `db:"created_by_name"`
}
