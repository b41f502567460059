package request

import (
	"errors"
	"time"

	"condo_gestao/internal/usecase"
)

var (
	ErrInvalidScheduledAt = errors.New("invalid scheduled_at timestamp")
)

// CreateMaintenanceRequest schedules a maintenance task.
type CreateMaintenanceRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	ScheduledAt string `json:"scheduled_at" binding:"required"`
}

func (r CreateMaintenanceRequest) ToInput() (usecase.CreateMaintenanceInput, error) {
	scheduledAt, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return usecase.CreateMaintenanceInput{}, ErrInvalidScheduledAt
	}
	return usecase.CreateMaintenanceInput{
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  r.AssignedTo,
		ScheduledAt: scheduledAt,
	}, nil
}

// UpdateMaintenanceStatusRequest moves a task along its lifecycle.
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
