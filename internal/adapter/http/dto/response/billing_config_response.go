package response

import (
	"condo_gestao/internal/domain/entities"
)

type BillingConfigResponse struct {
	CondoID       string  `json:"condo_id"`
	DefaultAmount float64 `json:"valor_padrao"`
	DueDay        int     `json:"dia_vencimento"`
	PixKey        string  `json:"pix_key,omitempty"`
	PixType       string  `json:"pix_type,omitempty"`
	WebhookURL    string  `json:"webhook_url,omitempty"`
	Timezone      string  `json:"timezone,omitempty"`
}

func FromBillingConfig(c entities.BillingConfig) BillingConfigResponse {
	return BillingConfigResponse{
		CondoID:       c.CondoID,
		DefaultAmount: c.DefaultAmount,
		DueDay:        c.DueDay,
		PixKey:        c.PixKey,
		PixType:       string(c.PixType),
		WebhookURL:    c.WebhookURL,
		Timezone:      c.Timezone,
	}
}
