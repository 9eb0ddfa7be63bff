package dto

import "github.com/abuyamnglobal-com/tajheez/internal/core/domain"

// UserResponse is a user row as served to clients.
type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// ToUserResponse converts a domain User to its wire shape.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.UserID,
		FullName: u.FullName,
		Email:    u.Email,
		Role:     string(u.Role),
	}
}
