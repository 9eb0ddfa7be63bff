package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
	"github.com/abuyamnglobal-com/tajheez/internal/dto"
	"github.com/abuyamnglobal-com/tajheez/internal/middleware"
)

// reportingService derives balances, statements and summaries from the
// ledger. It holds no state; every call reads the store afresh.
type reportingService struct {
	txnRepo   portsrepo.TransactionReader
	partyRepo portsrepo.PartyReader
	now       func() time.Time
}

// NewReportingService creates a new reporting service.
func NewReportingService(txnRepo portsrepo.TransactionReader, partyRepo portsrepo.PartyReader) portssvc.ReportingSvcFacade {
	return &reportingService{
		txnRepo:   txnRepo,
		partyRepo: partyRepo,
		now:       time.Now,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetPartyBalances computes per-party totals over APPROVED transactions only.
// Pending and rejected transactions never move a balance.
func (s *reportingService) GetPartyBalances(ctx context.Context) ([]domain.PartyBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	parties, err := s.partyRepo.ListActiveParties(ctx)
	if err != nil {
		logger.Error("Failed to list parties for balances", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}

	balances := make(map[int64]*domain.PartyBalance, len(parties))
	for _, p := range parties {
		balances[p.PartyID] = &domain.PartyBalance{
			PartyID:   p.PartyID,
			PartyName: p.Name,
			TotalIn:   decimal.Zero,
			TotalOut:  decimal.Zero,
			Net:       decimal.Zero,
		}
	}

	approved, err := s.txnRepo.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		logger.Error("Failed to list approved transactions for balances", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list approved transactions: %w", err)
	}

	for _, txn := range approved {
		// Deactivated parties keep their history; materialize a row from
		// the enriched names if the party is no longer listed.
		from := ensureBalance(balances, txn.FromPartyID, txn.FromPartyName)
		to := ensureBalance(balances, txn.ToPartyID, txn.ToPartyName)

		from.TotalOut = from.TotalOut.Add(txn.Amount)
		to.TotalIn = to.TotalIn.Add(txn.Amount)
	}

	result := make([]domain.PartyBalance, 0, len(balances))
	for _, b := range balances {
		b.Net = b.TotalIn.Sub(b.TotalOut)
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PartyID < result[j].PartyID
	})

	return result, nil
}

func ensureBalance(balances map[int64]*domain.PartyBalance, partyID int64, name string) *domain.PartyBalance {
	b, ok := balances[partyID]
	if !ok {
		b = &domain.PartyBalance{
			PartyID:   partyID,
			PartyName: name,
			TotalIn:   decimal.Zero,
			TotalOut:  decimal.Zero,
			Net:       decimal.Zero,
		}
		balances[partyID] = b
	}
	return b
}

// GetPartyStatement returns the chronological statement of APPROVED
// transactions touching the party.
func (s *reportingService) GetPartyStatement(ctx context.Context, partyID int64) ([]domain.StatementEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find party for statement", slog.Int64("party_id", partyID), slog.String("error", err.Error()))
		}
		return nil, err
	}
	if !party.Active {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("party %d not found", partyID))
	}

	approved, err := s.txnRepo.ListByStatus(ctx, domain.StatusApproved)
	if err != nil {
		logger.Error("Failed to list approved transactions for statement", slog.Int64("party_id", partyID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list approved transactions: %w", err)
	}

	entries := make([]domain.StatementEntry, 0)
	for _, txn := range approved {
		if txn.FromPartyID != partyID && txn.ToPartyID != partyID {
			continue
		}
		entry := domain.StatementEntry{
			TransactionID: txn.TransactionID,
			TrxDate:       txn.TrxDate,
			Amount:        txn.Amount,
			CategoryCode:  txn.CategoryCode,
			Description:   txn.Description,
		}
		if txn.ToPartyID == partyID {
			entry.Type = domain.EntryCredit
			entry.CounterpartyID = txn.FromPartyID
			entry.CounterpartyName = txn.FromPartyName
		} else {
			entry.Type = domain.EntryDebit
			entry.CounterpartyID = txn.ToPartyID
			entry.CounterpartyName = txn.ToPartyName
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].TrxDate.Equal(entries[j].TrxDate) {
			return entries[i].TrxDate.Before(entries[j].TrxDate)
		}
		return entries[i].TransactionID < entries[j].TransactionID
	})

	return entries, nil
}

// GetWeeklySummary aggregates inflow/outflow/net over the requested range,
// defaulting to the trailing seven days ending today.
func (s *reportingService) GetWeeklySummary(ctx context.Context, params dto.WeeklySummaryParams) (*domain.WeeklySummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	end := dateOnly(s.now())
	start := end.AddDate(0, 0, -6)

	if params.StartDate != "" {
		if parsed, err := time.Parse(dto.DateLayout, params.StartDate); err == nil {
			start = dateOnly(parsed)
		}
	}
	if params.EndDate != "" {
		if parsed, err := time.Parse(dto.DateLayout, params.EndDate); err == nil {
			end = dateOnly(parsed)
		}
	}

	// Reversed bounds are normalized, not rejected.
	if start.After(end) {
		start, end = end, start
	}

	txns, err := s.txnRepo.ListEnriched(ctx)
	if err != nil {
		logger.Error("Failed to list transactions for summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	summary := &domain.WeeklySummary{
		Inflow:       decimal.Zero,
		Outflow:      decimal.Zero,
		Net:          decimal.Zero,
		Transactions: make([]domain.Transaction, 0),
		StartDate:    start,
		EndDate:      end,
	}

	for _, txn := range txns {
		d := dateOnly(txn.TrxDate)
		if d.Before(start) || d.After(end) {
			continue
		}
		if txn.Direction == domain.DirectionIn {
			summary.Inflow = summary.Inflow.Add(txn.Amount)
		} else {
			summary.Outflow = summary.Outflow.Add(txn.Amount)
		}
		summary.Transactions = append(summary.Transactions, txn)
	}
	summary.Net = summary.Inflow.Sub(summary.Outflow)

	return summary, nil
}

// dateOnly truncates a timestamp to its UTC calendar date.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
