package pgsql

import (
	"context"
	"errors"

	"github.com/abuyamnglobal-com/tajheez/internal/apperrors"
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	portsrepo "github.com/abuyamnglobal-com/tajheez/internal/core/ports/repositories"
	"github.com/abuyamnglobal-com/tajheez/internal/models"
	"github.com/abuyamnglobal-com/tajheez/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxReferenceRepository reads static reference data (categories and
// payment methods).
type PgxReferenceRepository struct {
	BaseRepository
}

// NewPgxReferenceRepository creates a new repository for reference data.
func NewPgxReferenceRepository(pool *pgxpool.Pool) portsrepo.ReferenceRepositoryFacade {
	return &PgxReferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReferenceRepositoryFacade = (*PgxReferenceRepository)(nil)

// FindCategoryByCode retrieves a category by its unique code.
func (r *PgxReferenceRepository) FindCategoryByCode(ctx context.Context, code string) (*domain.Category, error) {
	query := `SELECT id, code, label, is_active FROM categories WHERE code = $1;`

	var m models.Category
	err := r.Pool.QueryRow(ctx, query, code).Scan(&m.CategoryID, &m.Code, &m.Label, &m.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category " + code + " not found")
		}
		return nil, apperrors.NewStoreUnavailableError("failed to find category", err)
	}

	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// ListActiveCategories retrieves active categories ordered by label.
func (r *PgxReferenceRepository) ListActiveCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT id, code, label, is_active FROM categories WHERE is_active = TRUE ORDER BY label;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query categories", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var m models.Category
		if err := rows.Scan(&m.CategoryID, &m.Code, &m.Label, &m.IsActive); err != nil {
			return nil, apperrors.NewStoreUnavailableError("failed to scan category row", err)
		}
		categories = append(categories, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating category rows", err)
	}

	return mapping.ToDomainCategorySlice(categories), nil
}

// FindPaymentMethodByCode retrieves a payment method by its unique code.
func (r *PgxReferenceRepository) FindPaymentMethodByCode(ctx context.Context, code string) (*domain.PaymentMethod, error) {
	query := `SELECT id, code, label, is_active FROM payment_methods WHERE code = $1;`

	var m models.PaymentMethod
	err := r.Pool.QueryRow(ctx, query, code).Scan(&m.PaymentMethodID, &m.Code, &m.Label, &m.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("payment method " + code + " not found")
		}
		return nil, apperrors.NewStoreUnavailableError("failed to find payment method", err)
	}

	method := mapping.ToDomainPaymentMethod(m)
	return &method, nil
}

// ListActivePaymentMethods retrieves active payment methods ordered by label.
func (r *PgxReferenceRepository) ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	query := `SELECT id, code, label, is_active FROM payment_methods WHERE is_active = TRUE ORDER BY label;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to query payment methods", err)
	}
	defer rows.Close()

	methods := []models.PaymentMethod{}
	for rows.Next() {
		var m models.PaymentMethod
		if err := rows.Scan(&m.PaymentMethodID, &m.Code, &m.Label, &m.IsActive); err != nil {
			return nil, apperrors.NewStoreUnavailableError("failed to scan payment method row", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("error iterating payment method rows", err)
	}

	return mapping.ToDomainPaymentMethodSlice(methods), nil
}
