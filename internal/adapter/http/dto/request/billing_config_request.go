package request

import (
	"condo_gestao/internal/domain/entities"
)

// BillingConfigRequest replaces the condo's billing settings wholesale.
type BillingConfigRequest struct {
	DefaultAmount float64 `json:"valor_padrao"`
	DueDay        int     `json:"dia_vencimento" binding:"required"`
	PixKey        string  `json:"pix_key"`
	PixType       string  `json:"pix_type"`
	WebhookURL    string  `json:"webhook_url"`
	Timezone      string  `json:"timezone"`
}

func (r BillingConfigRequest) ToEntity(condoID string) entities.BillingConfig {
	return entities.BillingConfig{
		CondoID:       condoID,
		DefaultAmount: r.DefaultAmount,
		DueDay:        r.DueDay,
		PixKey:        r.PixKey,
		PixType:       entities.PixType(r.PixType),
		WebhookURL:    r.WebhookURL,
		Timezone:      r.Timezone,
	}
}
