package models

// Category mirrors a row of the categories table.
type Category struct {
	CategoryID int64  `db:"id"`
	Code       string `db:"code"`
	Label      string `db:"label"`
	IsActive   bool   `db:"is_active"`
}
