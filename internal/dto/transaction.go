package dto

import (
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for plain dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest is the body of POST /transactions. Field names
// follow the store's column names, which the frontend already speaks.
type CreateTransactionRequest struct {
	TrxDate           string          `json:"trx_date" binding:"required"`
	FromPartyID       int64           `json:"from_party_id" binding:"required"`
	ToPartyID         int64           `json:"to_party_id" binding:"required"`
	CategoryCode      string          `json:"category_code" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethodCode string          `json:"payment_method_code" binding:"required"`
	Description       string          `json:"description"`
	CreatedBy         int64           `json:"created_by" binding:"required"`
	FromAccountID     *int64          `json:"from_account_id"`
	ToAccountID       *int64          `json:"to_account_id"`
	RelatedTxID       *int64          `json:"related_tx_id"`
}

// ApproveTransactionRequest is the body of POST /transactions/:id/approve.
type ApproveTransactionRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// RejectTransactionRequest is the body of POST /transactions/:id/reject.
// The note is validated by the service so the failure carries field detail.
type RejectTransactionRequest struct {
	UserID int64  `json:"user_id" binding:"required"`
	Note   string `json:"note"`
}

// TransactionResponse is an enriched transaction row as served to clients.
type TransactionResponse struct {
	ID                 int64           `json:"id"`
	TrxDate            string          `json:"trx_date"`
	FromPartyID        int64           `json:"from_party_id"`
	FromPartyName      string          `json:"from_party_name,omitempty"`
	ToPartyID          int64           `json:"to_party_id"`
	ToPartyName        string          `json:"to_party_name,omitempty"`
	CategoryCode       string          `json:"category_code"`
	CategoryLabel      string          `json:"category_label,omitempty"`
	Amount             decimal.Decimal `json:"amount"`
	PaymentMethodCode  string          `json:"payment_method_code"`
	PaymentMethodLabel string          `json:"payment_method_label,omitempty"`
	Description        string          `json:"description,omitempty"`
	CreatedBy          int64           `json:"created_by"`
	CreatedByName      string          `json:"created_by_name,omitempty"`
	FromAccountID      *int64          `json:"from_account_id,omitempty"`
	ToAccountID        *int64          `json:"to_account_id,omitempty"`
	RelatedTxID        *int64          `json:"related_tx_id,omitempty"`
	Status             string          `json:"status"`
	StatusLabel        string          `json:"status_label"`
	StatusColor        string          `json:"status_color"`
	Type               string          `json:"type"` // In or Out
	ApprovedBy         *int64          `json:"approved_by,omitempty"`
	RejectedBy         *int64          `json:"rejected_by,omitempty"`
	RejectionNote      string          `json:"rejection_note,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its wire shape.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	display := t.Status.Display()
	return TransactionResponse{
		ID:                 t.TransactionID,
		TrxDate:            t.TrxDate.Format(DateLayout),
		FromPartyID:        t.FromPartyID,
		FromPartyName:      t.FromPartyName,
		ToPartyID:          t.ToPartyID,
		ToPartyName:        t.ToPartyName,
		CategoryCode:       t.CategoryCode,
		CategoryLabel:      t.CategoryLabel,
		Amount:             t.Amount,
		PaymentMethodCode:  t.PaymentMethodCode,
		PaymentMethodLabel: t.PaymentMethodLabel,
		Description:        t.Description,
		CreatedBy:          t.CreatedBy,
		CreatedByName:      t.CreatedByName,
		FromAccountID:      t.FromAccountID,
		ToAccountID:        t.ToAccountID,
		RelatedTxID:        t.RelatedTxID,
		Status:             string(t.Status),
		StatusLabel:        display.Label,
		StatusColor:        display.Color,
		Type:               string(t.Direction),
		ApprovedBy:         t.ApprovedBy,
		RejectedBy:         t.RejectedBy,
		RejectionNote:      t.RejectionNote,
	}
}

// ToTransactionResponses converts a slice of domain Transactions.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i := range ts {
		responses[i] = ToTransactionResponse(&ts[i])
	}
	return responses
}
