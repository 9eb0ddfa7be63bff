package mapping

import (
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/abuyamnglobal-com/tajheez/internal/models"
)

// ToDomainCategory converts a model Category to a domain Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID: m.CategoryID,
		Code:       m.Code,
		Label:      m.Label,
		IsActive:   m.IsActive,
	}
}

// ToDomainCategorySlice converts a slice of model Categories to domain Categories.
func ToDomainCategorySlice(ms []models.Category) []domain.Category {
	ds := make([]domain.Category, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCategory(m)
	}
	return ds
}

// ToDomainPaymentMethod converts a model PaymentMethod to a domain PaymentMethod.
func ToDomainPaymentMethod(m models.PaymentMethod) domain.PaymentMethod {
	return domain.PaymentMethod{
		PaymentMethodID: m.PaymentMethodID,
		Code:            m.Code,
		Label:           m.Label,
		IsActive:        m.IsActive,
	}
}

// ToDomainPaymentMethodSlice converts a slice of model PaymentMethods.
func ToDomainPaymentMethodSlice(ms []models.PaymentMethod) []domain.PaymentMethod {
	ds := make([]domain.PaymentMethod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPaymentMethod(m)
	}
	return ds
}
