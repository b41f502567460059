package request

import (
	"errors"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"
)

var (
	ErrInvalidPaidAt = errors.New("invalid paid_at timestamp")
)

// RegisterPaymentRequest records a payment for a resident's billing period.
type RegisterPaymentRequest struct {
	Amount     float64 `json:"amount"`
	Month      int     `json:"month" binding:"required"`
	Year       int     `json:"year" binding:"required"`
	Method     string  `json:"method" binding:"required"`
	PaidAt     string  `json:"paid_at"`
	ReceiptURL string  `json:"receipt_url"`
	Note       string  `json:"note"`
}

func (r RegisterPaymentRequest) ResolvePaidAt() (*time.Time, error) {
	return parseOptionalRFC3339(r.PaidAt)
}

func (r RegisterPaymentRequest) ToInput() (usecase.RegisterPaymentInput, error) {
	paidAt, err := r.ResolvePaidAt()
	if err != nil {
		return usecase.RegisterPaymentInput{}, err
	}
	return usecase.RegisterPaymentInput{
		Amount:     r.Amount,
		Month:      r.Month,
		Year:       r.Year,
		Method:     entities.PaymentMethod(r.Method),
		PaidAt:     paidAt,
		ReceiptURL: r.ReceiptURL,
		Note:       r.Note,
	}, nil
}

// ConfirmPaymentRequest settles an existing pending or overdue charge.
type ConfirmPaymentRequest struct {
	Method string `json:"method" binding:"required"`
	PaidAt string `json:"paid_at"`
}

func (r ConfirmPaymentRequest) ResolvePaidAt() (*time.Time, error) {
	return parseOptionalRFC3339(r.PaidAt)
}

// AttachReceiptRequest stores the proof-of-payment URL on a record.
type AttachReceiptRequest struct {
	ReceiptURL string `json:"receipt_url" binding:"required"`
	Note       string `json:"note"`
}

func parseOptionalRFC3339(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, ErrInvalidPaidAt
	}
	return &t, nil
}
