package repositories

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
)

// PartyReader defines read operations for party reference data.
type PartyReader interface {
	// FindPartyByID retrieves a party regardless of its active flag.
	FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error)

	// ListActiveParties retrieves active parties ordered by name.
	ListActiveParties(ctx context.Context) ([]domain.Party, error)
}

// PartyRepositoryFacade combines all party repository interfaces.
type PartyRepositoryFacade interface {
	PartyReader
}
