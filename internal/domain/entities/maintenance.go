package entities

import "time"

// MaintenanceStatus: pendente -> agendada -> concluida. A pending task may be
// completed without ever being scheduled. concluida is terminal.

type MaintenanceStatus string

const (
	MaintenanceStatusPendente  MaintenanceStatus = "pendente"
	MaintenanceStatusAgendada  MaintenanceStatus = "agendada"
	MaintenanceStatusConcluida MaintenanceStatus = "concluida"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceStatusPendente, MaintenanceStatusAgendada, MaintenanceStatusConcluida:
		return true
	}
	return false
}

// Maintenance is a scheduled building maintenance task (manutenção).
//
// Storage model (DynamoDB):
//   - PK: condo_id
//   - SK: id

type Maintenance struct {
	ID          string            `json:"id"`
	CondoID     string            `json:"condo_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	AssignedTo  string            `json:"assigned_to,omitempty"`
	ScheduledAt time.Time         `json:"scheduled_at"`
	Status      MaintenanceStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (m Maintenance) CanTransitionTo(next MaintenanceStatus) bool {
	switch m.Status {
	case MaintenanceStatusPendente:
		return next == MaintenanceStatusAgendada || next == MaintenanceStatusConcluida
	case MaintenanceStatusAgendada:
		return next == MaintenanceStatusConcluida
	default:
		return false
	}
}
