package dto

import "github.com/abuyamnglobal-com/tajheez/internal/core/domain"

// CategoryResponse is a category row as served to clients.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ToCategoryResponses converts domain Categories to their wire shape.
func ToCategoryResponses(cs []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		responses[i] = CategoryResponse{ID: c.CategoryID, Code: c.Code, Label: c.Label}
	}
	return responses
}

// PaymentMethodResponse is a payment method row as served to clients.
type PaymentMethodResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ToPaymentMethodResponses converts domain PaymentMethods to their wire shape.
func ToPaymentMethodResponses(pms []domain.PaymentMethod) []PaymentMethodResponse {
	responses := make([]PaymentMethodResponse, len(pms))
	for i, pm := range pms {
		responses[i] = PaymentMethodResponse{ID: pm.PaymentMethodID, Code: pm.Code, Label: pm.Label}
	}
	return responses
}
