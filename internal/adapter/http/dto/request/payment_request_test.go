package request

import (
	"errors"
	"testing"
	"time"

	"condo_gestao/internal/domain/entities"
)

func TestRegisterPaymentRequest_ToInput(t *testing.T) {
	r := RegisterPaymentRequest{Amount: 350, Month: 3, Year: 2024, Method: "pix", PaidAt: "2024-03-05T14:00:00Z"}
	in, err := r.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Method != entities.PaymentMethodPix || in.Amount != 350 {
		t.Fatalf("unexpected input: %+v", in)
	}
	want := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
	if in.PaidAt == nil || !in.PaidAt.Equal(want) {
		t.Fatalf("unexpected paid_at: %v", in.PaidAt)
	}

	r2 := RegisterPaymentRequest{Month: 3, Year: 2024, Method: "pix"}
	in, err = r2.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.PaidAt != nil {
		t.Fatalf("expected nil paid_at, got %v", in.PaidAt)
	}

	r3 := RegisterPaymentRequest{Month: 3, Year: 2024, Method: "pix", PaidAt: "ontem"}
	if _, err := r3.ToInput(); !errors.Is(err, ErrInvalidPaidAt) {
		t.Fatalf("expected ErrInvalidPaidAt, got %v", err)
	}
}

func TestConfirmPaymentRequest_ResolvePaidAt(t *testing.T) {
	r := ConfirmPaymentRequest{Method: "boleto"}
	paidAt, err := r.ResolvePaidAt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paidAt != nil {
		t.Fatalf("expected nil paid_at, got %v", paidAt)
	}

	r2 := ConfirmPaymentRequest{Method: "boleto", PaidAt: "2024-03-05T14:00:00-03:00"}
	paidAt, err = r2.ResolvePaidAt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if paidAt == nil || paidAt.UTC().Hour() != 17 {
		t.Fatalf("unexpected paid_at: %v", paidAt)
	}
}
