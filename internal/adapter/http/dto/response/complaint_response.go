package response

import (
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"
)

type ComplaintResponse struct {
	ID          string     `json:"id"`
	CondoID     string     `json:"condo_id"`
	Unit        string     `json:"unit"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Response    string     `json:"response,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func FromComplaint(c entities.Complaint) ComplaintResponse {
	return ComplaintResponse{
		ID:          c.ID,
		CondoID:     c.CondoID,
		Unit:        c.Unit,
		Category:    c.Category,
		Description: c.Description,
		Status:      string(c.Status),
		Response:    c.Response,
		CreatedAt:   c.CreatedAt,
		RespondedAt: c.RespondedAt,
	}
}

func FromComplaints(items []entities.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromComplaint(c))
	}
	return out
}

type ComplaintCountsResponse struct {
	Novas       int `json:"novas"`
	EmAndamento int `json:"em_andamento"`
	Respondidas int `json:"respondidas"`
	Total       int `json:"total"`
}

func FromComplaintCounts(c usecase.ComplaintCounts) ComplaintCountsResponse {
	return ComplaintCountsResponse{
		Novas:       c.Novas,
		EmAndamento: c.EmAndamento,
		Respondidas: c.Respondidas,
		Total:       c.Total,
	}
}
