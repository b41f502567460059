package entities

import "time"

// ComplaintStatus follows the original triage flow: every complaint starts as
// nova, may be picked up (em andamento) and ends once answered (respondida).

type ComplaintStatus string

const (
	ComplaintStatusNova        ComplaintStatus = "nova"
	ComplaintStatusEmAndamento ComplaintStatus = "em andamento"
	ComplaintStatusRespondida  ComplaintStatus = "respondida"
)

func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusNova, ComplaintStatusEmAndamento, ComplaintStatusRespondida:
		return true
	}
	return false
}

// Complaint is a resident complaint (reclamação).
//
// Storage model (DynamoDB):
//   - PK: condo_id
//   - SK: id

type Complaint struct {
	ID          string          `json:"id"`
	CondoID     string          `json:"condo_id"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	Response    string          `json:"response,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	RespondedAt *time.Time      `json:"responded_at,omitempty"`
}

// CanTransitionTo allows nova -> em andamento -> respondida (nova may be
// answered directly). respondida is terminal.
func (c Complaint) CanTransitionTo(next ComplaintStatus) bool {
	switch c.Status {
	case ComplaintStatusNova:
		return next == ComplaintStatusEmAndamento || next == ComplaintStatusRespondida
	case ComplaintStatusEmAndamento:
		return next == ComplaintStatusRespondida
	default:
		return false
	}
}
