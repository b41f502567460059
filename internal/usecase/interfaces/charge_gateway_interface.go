package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=charge_gateway_interface.go -destination=mocks/charge_gateway_mock.go -package=mocks

// PixChargeRequest carries what the provider needs to open a pix charge for a
// payment record.

type PixChargeRequest struct {
	Amount      float64
	Description string
	PayerEmail  string
	// ExternalReference ties the provider charge back to the payment record.
	ExternalReference string
}

// IChargeGateway abstracts external payment providers (e.g. Mercado Pago).
// The raw provider response is kept for traceability.

type IChargeGateway interface {
	CreatePixCharge(ctx context.Context, req PixChargeRequest) (providerChargeID string, providerStatus string, providerResponse json.RawMessage, err error)
}
