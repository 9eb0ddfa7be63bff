package repositories

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)
}

// UserRepositoryFacade combines all user repository interfaces.
type UserRepositoryFacade interface {
	UserReader
}
