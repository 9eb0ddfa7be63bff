package domain

// PaymentMethod is static reference data describing how funds moved.
type PaymentMethod struct {
	PaymentMethodID int64  `json:"id"`
	Code            string `json:"code"` // Unique
	Label           string `json:"label"`
	IsActive        bool   `json:"isActive"`
}
