package repositories

import (
	"context"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
)

// CategoryReader defines read operations for category reference data.
type CategoryReader interface {
	// FindCategoryByCode retrieves a category by its unique code.
	FindCategoryByCode(ctx context.Context, code string) (*domain.Category, error)

	// ListActiveCategories retrieves active categories ordered by label.
	ListActiveCategories(ctx context.Context) ([]domain.Category, error)
}

// PaymentMethodReader defines read operations for payment method reference data.
type PaymentMethodReader interface {
	// FindPaymentMethodByCode retrieves a payment method by its unique code.
	FindPaymentMethodByCode(ctx context.Context, code string) (*domain.PaymentMethod, error)

	// ListActivePaymentMethods retrieves active payment methods ordered by label.
	ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// ReferenceRepositoryFacade combines the static reference data readers.
type ReferenceRepositoryFacade interface {
	CategoryReader
	PaymentMethodReader
}
