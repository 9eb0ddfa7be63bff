package mapping

import (
	"github.com/abuyamnglobal-com/tajheez/internal/core/domain"
	"github.com/abuyamnglobal-com/tajheez/internal/models"
)

// ToDomainUser converts a model User to a domain User.
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:   m.UserID,
		FullName: m.FullName,
		Email:    m.Email,
		Role:     domain.UserRole(m.Role),
		IsActive: m.IsActive,
	}
}
