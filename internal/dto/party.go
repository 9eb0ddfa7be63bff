package dto

import (
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyResponse is a party row as served to clients.
type PartyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToPartyResponses converts domain Parties to their wire shape.
func ToPartyResponses(ps []domain.Party) []PartyResponse {
	responses := make([]PartyResponse, len(ps))
	for i, p := range ps {
		responses[i] = PartyResponse{ID: p.PartyID, Name: p.Name, Type: string(p.Type)}
	}
	return responses
}

// PartyBalanceResponse is one row of the balances listing.
type PartyBalanceResponse struct {
	PartyID   int64           `json:"party_id"`
	PartyName string          `json:"party_name"`
	TotalIn   decimal.Decimal `json:"total_in"`
	TotalOut  decimal.Decimal `json:"total_out"`
	Net       decimal.Decimal `json:"net"`
}

// ToPartyBalanceResponses converts domain PartyBalances to their wire shape.
func ToPartyBalanceResponses(bs []domain.PartyBalance) []PartyBalanceResponse {
	responses := make([]PartyBalanceResponse, len(bs))
	for i, b := range bs {
		responses[i] = PartyBalanceResponse{
			PartyID:   b.PartyID,
			PartyName: b.PartyName,
			TotalIn:   b.TotalIn,
			TotalOut:  b.TotalOut,
			Net:       b.Net,
		}
	}
	return responses
}

// StatementEntryResponse is one line of a party statement.
type StatementEntryResponse struct {
	TransactionID    int64           `json:"transaction_id"`
	TrxDate          string          `json:"trx_date"`
	Type             string          `json:"type"` // Credit or Debit
	Amount           decimal.Decimal `json:"amount"`
	CounterpartyID   int64           `json:"counterparty_id"`
	CounterpartyName string          `json:"counterparty_name"`
	CategoryCode     string          `json:"category_code"`
	Description      string          `json:"description,omitempty"`
}

// ToStatementEntryResponses converts domain StatementEntries to their wire shape.
func ToStatementEntryResponses(es []domain.StatementEntry) []StatementEntryResponse {
	responses := make([]StatementEntryResponse, len(es))
	for i, e := range es {
		responses[i] = StatementEntryResponse{
			TransactionID:    e.TransactionID,
			TrxDate:          e.TrxDate.Format(DateLayout),
			Type:             string(e.Type),
			Amount:           e.Amount,
			CounterpartyID:   e.CounterpartyID,
			CounterpartyName: e.CounterpartyName,
			CategoryCode:     e.CategoryCode,
			Description:      e.Description,
		}
	}
	return responses
}
