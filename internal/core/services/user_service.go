package services

import (
	"context"
	"fmt"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
)

// userService serves user reads.
type userService struct {
	userRepo portsrepo.UserReader
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserReader) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID returns an active user; inactive users are reported as not found.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %d not found", userID))
	}
	return user, nil
}
