package request

import (
	"condo_gestao/internal/usecase"
)

// CreateComplaintRequest opens a complaint for a unit.
type CreateComplaintRequest struct {
	Unit        string `json:"unit" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

func (r CreateComplaintRequest) ToInput() usecase.CreateComplaintInput {
	return usecase.CreateComplaintInput{
		Unit:        r.Unit,
		Category:    r.Category,
		Description: r.Description,
	}
}

// RespondComplaintRequest answers a complaint, closing it.
type RespondComplaintRequest struct {
	Response string `json:"response" binding:"required"`
}

// UpdateComplaintStatusRequest moves a complaint along the triage flow.
type UpdateComplaintStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
