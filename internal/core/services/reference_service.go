package services

import (
	"context"
	"fmt"

	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	portssvc "github.com/abuyamnglobal-com/tajheez/internal/core/ports/services"
)

// referenceService serves static reference data (categories, payment methods).
type referenceService struct {
	refRepo portsrepo.ReferenceRepositoryFacade
}

// NewReferenceService creates a new reference data service.
func NewReferenceService(refRepo portsrepo.ReferenceRepositoryFacade) portssvc.ReferenceSvcFacade {
	return &referenceService{refRepo: refRepo}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

func (s *referenceService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.refRepo.ListActiveCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *referenceService) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.refRepo.ListActivePaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}
	return methods, nil
}
