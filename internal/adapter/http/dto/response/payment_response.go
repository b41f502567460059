package response

import (
	"time"

	"condo_gestao/internal/domain/entities"
)

type PaymentResponse struct {
	ID         string     `json:"id"`
	CondoID    string     `json:"condo_id"`
	ResidentID string     `json:"resident_id"`
	Amount     float64    `json:"amount"`
	Month      int        `json:"month"`
	Year       int        `json:"year"`
	Status     string     `json:"status"`
	Method     string     `json:"method,omitempty"`
	DueDate    time.Time  `json:"due_date"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
	ReceiptURL string     `json:"receipt_url,omitempty"`
	Note       string     `json:"note,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		CondoID:    p.CondoID,
		ResidentID: p.ResidentID,
		Amount:     p.Amount,
		Month:      p.Month,
		Year:       p.Year,
		Status:     string(p.Status),
		Method:     string(p.Method),
		DueDate:    p.DueDate,
		PaidAt:     p.PaidAt,
		ReceiptURL: p.ReceiptURL,
		Note:       p.Note,
	}
}

func FromPayments(items []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPayment(p))
	}
	return out
}
