package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PartyBalance is the aggregate net position of a party across all
// approved transactions.
type PartyBalance struct {
	PartyID   int64           `json:"partyID"`
	PartyName string          `json:"partyName"`
	TotalIn   decimal.Decimal `json:"totalIn"`
	TotalOut  decimal.Decimal `json:"totalOut"`
	Net       decimal.Decimal `json:"net"`
}

// EntryType annotates a statement line relative to the statement's party.
type EntryType string

const (
	EntryCredit EntryType = "Credit" // Party is the receiving side
	EntryDebit  EntryType = "Debit"  // Party is the sending side
)

// StatementEntry is one approved transaction on a party's statement.
type StatementEntry struct {
	TransactionID    int64           `json:"transactionID"`
	TrxDate          time.Time       `json:"trxDate"`
	Type             EntryType       `json:"type"`
	Amount           decimal.Decimal `json:"amount"`
	CounterpartyID   int64           `json:"counterpartyID"`
	CounterpartyName string          `json:"counterpartyName"`
	CategoryCode     string          `json:"categoryCode"`
	Description      string          `json:"description,omitempty"`
}

// WeeklySummary aggregates inflow/outflow/net over a date range, together
// with the transactions that contributed and the normalized range used.
type WeeklySummary struct {
	Inflow       decimal.Decimal `json:"inflow"`
	Outflow      decimal.Decimal `json:"outflow"`
	Net          decimal.Decimal `json:"net"`
	Transactions []Transaction   `json:"transactions"`
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
}
