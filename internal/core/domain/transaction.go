package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus indicates where a transaction sits in the approval workflow.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusRejected TransactionStatus = "REJECTED"
)

// IsTerminal reports whether the status admits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether the transition to next is allowed.
// The only edges are PENDING -> APPROVED and PENDING -> REJECTED.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	return s == StatusPending && next.IsTerminal()
}

// StatusDisplay holds the presentation attributes for a status. Kept as a
// single lookup so label and colour never drift apart across callers.
type StatusDisplay struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusDisplays = map[TransactionStatus]StatusDisplay{
	StatusPending:  {Label: "Pending", Color: "orange"},
	StatusApproved: {Label: "Approved", Color: "green"},
	StatusRejected: {Label: "Rejected", Color: "red"},
}

// Display returns the presentation attributes for the status.
func (s TransactionStatus) Display() StatusDisplay {
	return statusDisplays[s]
}

// Direction indicates whether money flows into or out of the managing company.
type Direction string

const (
	DirectionIn  Direction = "In"
	DirectionOut Direction = "Out"
)

// DirectionFor resolves the direction of a movement from the receiving
// party's type. Inflow means the company is on the receiving side.
func DirectionFor(toPartyType PartyType) Direction {
	if toPartyType == PartyCompany {
		return DirectionIn
	}
	return DirectionOut
}

// NewTransaction carries a validated transaction intent prior to persistence.
// The store assigns the id and stamps the initial PENDING status.
type NewTransaction struct {
	TrxDate           time.Time
	FromPartyID       int64
	ToPartyID         int64
	CategoryCode      string
	Amount            decimal.Decimal
	PaymentMethodCode string
	Description       string
	CreatedBy         int64
	FromAccountID     *int64
	ToAccountID       *int64
	RelatedTxID       *int64
}

// Transaction is a single recorded money movement between two parties,
// subject to the approval workflow. Rows are never deleted; terminal
// transitions only append approval/rejection metadata.
type Transaction struct {
	TransactionID     int64             `json:"id"` // Store-assigned, monotonic
	TrxDate           time.Time         `json:"trxDate"`
	FromPartyID       int64             `json:"fromPartyID"`
	ToPartyID         int64             `json:"toPartyID"`
	CategoryCode      string            `json:"categoryCode"`
	Amount            decimal.Decimal   `json:"amount"` // Positive, currency-neutral
	PaymentMethodCode string            `json:"paymentMethodCode"`
	Description       string            `json:"description,omitempty"`
	CreatedBy         int64             `json:"createdBy"`
	FromAccountID     *int64            `json:"fromAccountID,omitempty"`
	ToAccountID       *int64            `json:"toAccountID,omitempty"`
	RelatedTxID       *int64            `json:"relatedTxID,omitempty"`
	Status            TransactionStatus `json:"status"`
	ApprovedBy        *int64            `json:"approvedBy,omitempty"`
	ApprovedAt        *time.Time        `json:"approvedAt,omitempty"`
	RejectedBy        *int64            `json:"rejectedBy,omitempty"`
	RejectedAt        *time.Time        `json:"rejectedAt,omitempty"`
	RejectionNote     string            `json:"rejectionNote,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`

	// Enrichment, populated when the row comes from the enriched view.
	FromPartyName      string    `json:"fromPartyName,omitempty"`
	ToPartyName        string    `json:"toPartyName,omitempty"`
	CategoryLabel      string    `json:"categoryLabel,omitempty"`
	PaymentMethodLabel string    `json:"paymentMethodLabel,omitempty"`
	CreatedByName      string    `json:"createdByName,omitempty"`
	Direction          Direction `json:"direction,omitempty"`
}
