package models

// User mirrors a row of the app_users table.
type User struct {
	UserID   int64  `db:"id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Role     string `db:"role"`
	IsActive bool   `db:"is_active"`
}
