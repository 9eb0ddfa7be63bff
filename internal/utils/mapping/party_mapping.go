package mapping

import (
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/abuyamnglobal-com/tajheez/internal/models"
)

// ToDomainParty converts a model Party to a domain Party.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID: m.PartyID,
		Name:    m.Name,
		Type:    domain.PartyType(m.Type),
		Active:  m.Active,
	}
}

// ToDomainPartySlice converts a slice of model Parties to domain Parties.
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}
