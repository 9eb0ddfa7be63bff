package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	"github.com/abuyamnglobal-com/tajheez/internal/models"
	"github.com/abuyamnglobal-com/tajheez/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPartyRepository reads party reference data.
type PgxPartyRepository struct {
	BaseRepository
}

// NewPgxPartyRepository creates a new repository for party data.
func NewPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

// FindPartyByID retrieves a party regardless of its active flag; callers
// decide what an inactive party means for them.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID int64) (*domain.Party, error) {
	query := `SELECT id, name, type, active FROM parties WHERE id = $1;`

	var m models.Party
	err := r.Pool.QueryRow(ctx, query, partyID).Scan(&m.PartyID, &m.Name, &m.Type, &m.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("party " + strconv.FormatInt(partyID, 10) + " not found")
		}
		return nil, apperrors.NewStoreUnavailableError("failed to find party", err)
	}

	party := mapping.ToDomainParty(m)
	return &party, nil
}

// ListActiveParties retrieves active parties ordered by name.
func (r *PgxPartyRepository) ListActiveParties(ctx context.Context) ([]domain.Party, error) {
	query := `SELECT id, name, type, active FROM parties WHERE active = TRUE ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query parties", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		var m models.Party
		if err := rows.Scan(&m.PartyID, &m.Name, &m.Type, &m.Active); err != nil {
			return nil, apperrors.NewStoreUnavailableError("failed to scan party row", err)
		}
		parties = append(parties, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating party rows", err)
	}

	return mapping.ToDomainPartySlice(parties), nil
}
