package mapping

import (
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/abuyamnglobal-com/tajheez/internal/models"
)

// ToDomainTransaction converts an enriched model row to a domain Transaction.
// Direction is resolved here, at the store boundary, and nowhere else.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	t := domain.Transaction{
		TransactionID:      m.TransactionID,
		TrxDate:            m.TrxDate,
		FromPartyID:        m.FromPartyID,
		ToPartyID:          m.ToPartyID,
		CategoryCode:       m.CategoryCode,
		Amount:             m.Amount,
		PaymentMethodCode:  m.PaymentMethodCode,
		CreatedBy:          m.CreatedBy,
		FromAccountID:      m.FromAccountID,
		ToAccountID:        m.ToAccountID,
		RelatedTxID:        m.RelatedTxID,
		Status:             domain.TransactionStatus(m.Status),
		ApprovedBy:         m.ApprovedBy,
		ApprovedAt:         m.ApprovedAt,
		RejectedBy:         m.RejectedBy,
		RejectedAt:         m.RejectedAt,
		CreatedAt:          m.CreatedAt,
		FromPartyName:      m.FromPartyName,
		ToPartyName:        m.ToPartyName,
		CategoryLabel:      m.CategoryLabel,
		PaymentMethodLabel: m.PaymentMethodLabel,
		CreatedByName:      m.CreatedByName,
		Direction:          domain.DirectionFor(domain.PartyType(m.ToPartyType)),
	}
	if m.Description != nil {
		t.Description = *m.Description
	}
	if m.RejectionNote != nil {
		t.RejectionNote = *m.RejectionNote
	}
	return t
}

// ToDomainTransactionSlice converts a slice of model rows to domain Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
