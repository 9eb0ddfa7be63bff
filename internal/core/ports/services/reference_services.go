package services

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
)

// PartySvcFacade defines party reference reads.
type PartySvcFacade interface {
	// ListParties returns active parties ordered by name.
	ListParties(ctx context.Context) ([]domain.Party, error)
}

// ReferenceSvcFacade defines static reference data reads.
type ReferenceSvcFacade interface {
	// ListCategories returns active categories ordered by label.
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// ListPaymentMethods returns active payment methods ordered by label.
	ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// UserSvcFacade defines user reads.
type UserSvcFacade interface {
	// GetUserByID returns an active user or apperrors.ErrNotFound.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
