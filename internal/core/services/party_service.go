package services

import (
	"context"
	"fmt"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
)

// partyService serves party reference data.
type partyService struct {
	partyRepo portsrepo.PartyReader
}

// NewPartyService creates a new party service.
func NewPartyService(partyRepo portsrepo.PartyReader) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) ListParties(ctx context.Context) ([]domain.Party, error) {
	parties, err := s.partyRepo.ListActiveParties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list parties: %w", err)
	}
	return parties, nil
}
