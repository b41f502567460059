package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"condo_gestao/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrPixGatewayNotConfigured = errors.New("pix gateway not configured")

// PixGateway opens pix charges through Mercado Pago. With
// PAYMENT_GATEWAY_MOCK (or MERCADOPAGO_MOCK) set, it fabricates approved-like
// responses so the API can run without provider credentials.

type PixGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IChargeGateway = (*PixGateway)(nil)

func NewPixGateway(accessToken string) (*PixGateway, error) {
	if isChargeGatewayMockEnabled() {
		log.Printf("[charge][gateway] mock mode enabled")
		return &PixGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[charge][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[charge][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[charge][gateway] Mercado Pago client initialized")

	return &PixGateway{client: payment.NewClient(cfg)}, nil
}

func (g *PixGateway) CreatePixCharge(ctx context.Context, req interfaces.PixChargeRequest) (string, string, json.RawMessage, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		now := time.Now().UTC().Format(time.RFC3339Nano)
		resp := map[string]any{
			"id":                 id,
			"status":             "pending",
			"status_detail":      "pending_waiting_transfer",
			"payment_method_id":  "pix",
			"transaction_amount": req.Amount,
			"external_reference": req.ExternalReference,
			"date_created":       now,
		}
		b, err := json.Marshal(resp)
		if err != nil {
			return "", "", nil, err
		}
		log.Printf("[charge][gateway] mock create success provider_id=%s", id)
		return id, "pending", b, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[charge][gateway] gateway not configured")
		return "", "", nil, ErrPixGatewayNotConfigured
	}
	log.Printf("[charge][gateway] create start external_reference=%s amount=%.2f", req.ExternalReference, req.Amount)

	mpReq := payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   "pix",
		ExternalReference: req.ExternalReference,
	}
	if req.PayerEmail != "" {
		mpReq.Payer = &payment.PayerRequest{Email: req.PayerEmail}
	}

	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[charge][gateway] sdk create failed err=%v", err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[charge][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[charge][gateway] create success provider_id=%d provider_status=%s", resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

func isChargeGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
