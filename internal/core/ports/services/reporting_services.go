package services

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
)

// ReportingSvcFacade defines the projections derived from the ledger.
// Projections hold no state of their own; every call recomputes from a
// fresh read of the store.
type ReportingSvcFacade interface {
	// GetPartyBalances computes per-party totals over APPROVED transactions
	// only, ordered by party id ascending.
	GetPartyBalances(ctx context.Context) ([]domain.PartyBalance, error)

	// GetPartyStatement returns the chronological statement of APPROVED
	// transactions touching the party, annotated Credit/Debit. A party with
	// no transactions yields an empty statement, not an error.
	GetPartyStatement(ctx context.Context, partyID int64) ([]domain.StatementEntry, error)

	// GetWeeklySummary aggregates inflow/outflow/net over the requested date
	// range, defaulting to the trailing seven days.
	GetWeeklySummary(ctx context.Context, params dto.WeeklySummaryParams) (*domain.WeeklySummary, error)
}
