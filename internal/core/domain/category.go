package domain

// Category is static reference data classifying a transaction.
type Category struct {
	CategoryID int64  `json:"id"`
	Code       string `json:"code"` // Unique
	Label      string `json:"label"`
	IsActive   bool   `json:"isActive"`
}
