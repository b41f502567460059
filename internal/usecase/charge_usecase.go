package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"condo_gestao/internal/usecase/interfaces"
)

var (
	ErrChargeGatewayNotConfigured = errors.New("charge gateway not configured")
	ErrPixKeyNotConfigured        = errors.New("pix key not configured")
	ErrPaymentAlreadySettled      = errors.New("payment already settled")
)

// PixCharge is the provider-side charge opened for an unpaid record.

type PixCharge struct {
	PaymentID  string
	ProviderID string
	Status     string
	Raw        json.RawMessage
}

// IChargeUseCase opens an online pix charge for an existing unpaid payment
// record. It never mutates the record itself; confirmation still happens
// through the payment operations once the money arrives.

type IChargeUseCase interface {
	CreatePixCharge(ctx context.Context, condoID, paymentID string) (PixCharge, error)
}

type ChargeUseCase struct {
	payments  interfaces.IPaymentRepository
	residents interfaces.IResidentDirectory
	configs   interfaces.IBillingConfigRepository
	gateway   interfaces.IChargeGateway
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(payments interfaces.IPaymentRepository, residents interfaces.IResidentDirectory, configs interfaces.IBillingConfigRepository, gateway interfaces.IChargeGateway) *ChargeUseCase {
	return &ChargeUseCase{payments: payments, residents: residents, configs: configs, gateway: gateway}
}

func (u *ChargeUseCase) CreatePixCharge(ctx context.Context, condoID, paymentID string) (PixCharge, error) {
	condoID = strings.TrimSpace(condoID)
	paymentID = strings.TrimSpace(paymentID)
	if condoID == "" {
		return PixCharge{}, ErrInvalidCondoID
	}
	if paymentID == "" {
		return PixCharge{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return PixCharge{}, ErrChargeGatewayNotConfigured
	}

	p, err := u.payments.GetByID(ctx, condoID, paymentID)
	if err != nil {
		return PixCharge{}, err
	}
	if p.ID == "" {
		return PixCharge{}, ErrPaymentNotFound
	}
	if p.Settled() {
		return PixCharge{}, ErrPaymentAlreadySettled
	}

	cfg, err := u.configs.Get(ctx, condoID)
	if err != nil {
		return PixCharge{}, err
	}
	if cfg.PixKey == "" {
		return PixCharge{}, ErrPixKeyNotConfigured
	}

	payerEmail := ""
	if resident, err := u.residents.GetByID(ctx, condoID, p.ResidentID); err == nil {
		payerEmail = resident.Email
	}

	req := interfaces.PixChargeRequest{
		Amount:            p.Amount,
		Description:       fmt.Sprintf("Condominio %04d-%02d", p.Year, p.Month),
		PayerEmail:        payerEmail,
		ExternalReference: p.ID,
	}
	log.Printf("[charge][usecase] pix charge start condo_id=%s payment_id=%s amount=%.2f", condoID, paymentID, p.Amount)
	providerID, status, raw, err := u.gateway.CreatePixCharge(ctx, req)
	if err != nil {
		log.Printf("[charge][usecase] pix charge failed condo_id=%s payment_id=%s err=%v", condoID, paymentID, err)
		return PixCharge{}, err
	}
	log.Printf("[charge][usecase] pix charge success condo_id=%s payment_id=%s provider_id=%s status=%s", condoID, paymentID, providerID, status)

	return PixCharge{PaymentID: p.ID, ProviderID: providerID, Status: status, Raw: raw}, nil
}
