package dto

import (
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WeeklySummaryParams carries the raw, optional date bounds of a summary
// request. Unparseable values fall back to the corresponding default bound.
type WeeklySummaryParams struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// WeeklySummaryResponse is the aggregate served to clients, echoing the
// normalized range actually used.
type WeeklySummaryResponse struct {
	Inflow       decimal.Decimal       `json:"inflow"`
	Outflow      decimal.Decimal       `json:"outflow"`
	Net          decimal.Decimal       `json:"net"`
	Transactions []TransactionResponse `json:"transactions"`
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
}

// ToWeeklySummaryResponse converts a domain WeeklySummary to its wire shape.
func ToWeeklySummaryResponse(s *domain.WeeklySummary) WeeklySummaryResponse {
	return WeeklySummaryResponse{
		Inflow:       s.Inflow,
		Outflow:      s.Outflow,
		Net:          s.Net,
		Transactions: ToTransactionResponses(s.Transactions),
		StartDate:    s.StartDate.Format(DateLayout),
		EndDate:      s.EndDate.Format(DateLayout),
	}
}
