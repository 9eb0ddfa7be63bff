package domain

// PartyType classifies a counterparty.
type PartyType string

const (
	PartyInvestor PartyType = "INVESTOR"
	PartyCompany  PartyType = "COMPANY"
	PartyInternal PartyType = "INTERNAL"
)

// Party is a counterparty that can send or receive funds.
// Parties referenced by transactions are never hard-deleted; Active is a
// soft-delete flag.
type Party struct {
	PartyID int64     `json:"id"`
	Name    string    `json:"name"`
	Type    PartyType `json:"type"`
	Active  bool      `json:"active"`
}
