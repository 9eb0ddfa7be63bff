package models

// PaymentMethod mirrors a row of the payment_methods table.
type PaymentMethod struct {
	PaymentMethodID int64  `db:"id"`
	Code            string `db:"code"`
	Label           string `db:"label"`
	IsActive        bool   `db:"is_active"`
}
