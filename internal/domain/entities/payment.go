package entities

import "time"

// PaymentStatus represents the lifecycle of a monthly payment record.
//
// Transitions (one direction only):
//   - pendente   -> confirmado (payment registered in time)
//   - pendente   -> atrasado   (overdue sweep, due date passed)
//   - atrasado   -> confirmado (late payment registered)
//
// confirmado is terminal; atrasado never goes back to pendente.

type PaymentStatus string

const (
	PaymentStatusPendente   PaymentStatus = "pendente"
	PaymentStatusConfirmado PaymentStatus = "confirmado"
	PaymentStatusAtrasado   PaymentStatus = "atrasado"
)

// PaymentMethod is only meaningful once a payment is confirmed.

type PaymentMethod string

const (
	PaymentMethodPix           PaymentMethod = "pix"
	PaymentMethodBoleto        PaymentMethod = "boleto"
	PaymentMethodTransferencia PaymentMethod = "transferencia"
	PaymentMethodDinheiro      PaymentMethod = "dinheiro"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodBoleto, PaymentMethodTransferencia, PaymentMethodDinheiro:
		return true
	}
	return false
}

// Standing is the derived display status of a resident, computed from their
// most recent payment. It is never persisted.

type Standing string

const (
	StandingEmDia    Standing = "em dia"
	StandingAtrasado Standing = "atrasado"
)

// Payment is one billing-period record for a resident.
//
// Storage model (DynamoDB):
//   - PK: condo_id
//   - SK: id
//
// Generated charges use a deterministic id (<resident_id>-<YYYYMM>) so a
// conditional put can guarantee at most one generated charge per period.
// Directly registered payments use a random id.
//
// PaidAt is set if and only if Status == confirmado. DueDate is derived from
// the condo billing configuration at creation time and never changes.

type Payment struct {
	ID         string        `json:"id"`
	CondoID    string        `json:"condo_id"`
	ResidentID string        `json:"resident_id"`
	Amount     float64       `json:"amount"`
	Month      int           `json:"month"`
	Year       int           `json:"year"`
	Status     PaymentStatus `json:"status"`
	Method     PaymentMethod `json:"method,omitempty"`
	DueDate    time.Time     `json:"due_date"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
	ReceiptURL string        `json:"receipt_url,omitempty"`
	Note       string        `json:"note,omitempty"`
}

// CanTransitionTo reports whether the status change is allowed by the
// payment state machine.
func (p Payment) CanTransitionTo(next PaymentStatus) bool {
	switch p.Status {
	case PaymentStatusPendente:
		return next == PaymentStatusConfirmado || next == PaymentStatusAtrasado
	case PaymentStatusAtrasado:
		return next == PaymentStatusConfirmado
	default:
		return false
	}
}

// Settled reports whether the record reached its terminal state.
func (p Payment) Settled() bool {
	return p.Status == PaymentStatusConfirmado
}
