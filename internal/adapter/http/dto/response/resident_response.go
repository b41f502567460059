package response

import (
	"condo_gestao/internal/domain/entities"
)

type ResidentResponse struct {
	ID      string `json:"id"`
	CondoID string `json:"condo_id"`
	Name    string `json:"name"`
	Unit    string `json:"unit"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

func FromResident(r entities.Resident) ResidentResponse {
	return ResidentResponse{
		ID:      r.ID,
		CondoID: r.CondoID,
		Name:    r.Name,
		Unit:    r.Unit,
		Email:   r.Email,
		Phone:   r.Phone,
	}
}

func FromResidents(items []entities.Resident) []ResidentResponse {
	out := make([]ResidentResponse, 0, len(items))
	for _, r := range items {
		out = append(out, FromResident(r))
	}
	return out
}
