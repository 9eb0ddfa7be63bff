package domain

// UserRole gates approval authority. Not enforced yet; recorded for audit.
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleMember UserRole = "MEMBER"
)

// User represents an application user able to create or approve transactions.
type User struct {
	UserID   int64    `json:"id"`
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Role     UserRole `json:"role"`
	IsActive bool     `json:"isActive"`
}
