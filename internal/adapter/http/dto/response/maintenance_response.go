package response

import (
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"
)

type MaintenanceResponse struct {
	ID          string    `json:"id"`
	CondoID     string    `json:"condo_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromMaintenance(m entities.Maintenance) MaintenanceResponse {
	return MaintenanceResponse{
		ID:          m.ID,
		CondoID:     m.CondoID,
		Title:       m.Title,
		Description: m.Description,
		AssignedTo:  m.AssignedTo,
		ScheduledAt: m.ScheduledAt,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}

func FromMaintenances(items []entities.Maintenance) []MaintenanceResponse {
	out := make([]MaintenanceResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMaintenance(m))
	}
	return out
}

type MaintenanceStatsResponse struct {
	Pendentes  int `json:"pendentes"`
	Agendadas  int `json:"agendadas"`
	Concluidas int `json:"concluidas"`
	Total      int `json:"total"`
}

func FromMaintenanceStats(s usecase.MaintenanceStats) MaintenanceStatsResponse {
	return MaintenanceStatsResponse{
		Pendentes:  s.Pendentes,
		Agendadas:  s.Agendadas,
		Concluidas: s.Concluidas,
		Total:      s.Total,
	}
}
