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

// PgxUserRepository reads user data.
type PgxUserRepository struct {
	BaseRepository
}

// NewPgxUserRepository creates a new repository for user data.
func NewPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// FindUserByID retrieves a specific user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	query := `SELECT id, full_name, email, role, is_active FROM app_users WHERE id = $1;`

	var m models.User
	err := r.Pool.QueryRow(ctx, query, userID).Scan(&m.UserID, &m.FullName, &m.Email, &m.Role, &m.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user " + strconv.FormatInt(userID, 10) + " not found")
		}
		return nil, apperrors.NewStoreUnavailableError("failed to find user", err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}
