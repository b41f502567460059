package response

import (
	"encoding/json"

	"condo_gestao/internal/usecase"
)

type PixChargeResponse struct {
	PaymentID  string          `json:"payment_id"`
	ProviderID string          `json:"provider_id"`
	Status     string          `json:"status"`
	Provider   json.RawMessage `json:"provider_response,omitempty"`
}

func FromPixCharge(c usecase.PixCharge) PixChargeResponse {
	return PixChargeResponse{
		PaymentID:  c.PaymentID,
		ProviderID: c.ProviderID,
		Status:     c.Status,
		Provider:   c.Raw,
	}
}
