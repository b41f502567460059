package entities

import "time"

const (
	DefaultDueDay   = 10
	DefaultTimezone = "America/Sao_Paulo"
)

// PixType qualifies the condo's pix key.

type PixType string

const (
	PixTypeCPF       PixType = "cpf"
	PixTypeCNPJ      PixType = "cnpj"
	PixTypeEmail     PixType = "email"
	PixTypeTelefone  PixType = "telefone"
	PixTypeAleatoria PixType = "aleatoria"
)

func (t PixType) Valid() bool {
	switch t {
	case PixTypeCPF, PixTypeCNPJ, PixTypeEmail, PixTypeTelefone, PixTypeAleatoria:
		return true
	}
	return false
}

// BillingConfig holds the per-condo billing settings.
//
// Storage model (DynamoDB):
//   - PK: condo_id (one item per condo)
//
// The config is created on first save; reads of a missing item return
// DefaultBillingConfig. It is updated wholesale and never deleted.

type BillingConfig struct {
	CondoID       string  `json:"condo_id"`
	DefaultAmount float64 `json:"valor_padrao"`
	DueDay        int     `json:"dia_vencimento"`
	PixKey        string  `json:"pix_key,omitempty"`
	PixType       PixType `json:"pix_type,omitempty"`
	WebhookURL    string  `json:"webhook_url,omitempty"`
	Timezone      string  `json:"timezone,omitempty"`
}

// DefaultBillingConfig is the documented fallback applied when a condo has
// never saved its billing settings.
func DefaultBillingConfig(condoID string) BillingConfig {
	return BillingConfig{
		CondoID:       condoID,
		DefaultAmount: 0,
		DueDay:        DefaultDueDay,
		Timezone:      DefaultTimezone,
	}
}

// Location resolves the condo's time zone, falling back to UTC when the
// configured name cannot be loaded.
func (c BillingConfig) Location() *time.Location {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
