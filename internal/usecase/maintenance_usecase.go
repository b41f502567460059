package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidMaintenanceID     = errors.New("invalid maintenance id")
	ErrInvalidMaintenanceInput  = errors.New("invalid maintenance input")
	ErrInvalidMaintenanceStatus = errors.New("invalid maintenance status")
	ErrMaintenanceNotFound      = errors.New("maintenance not found")
	ErrMaintenanceTransition    = errors.New("invalid maintenance status transition")
)

type CreateMaintenanceInput struct {
	Title       string
	Description string
	AssignedTo  string
	ScheduledAt time.Time
}

type MaintenanceStats struct {
	Pendentes  int
	Agendadas  int
	Concluidas int
	Total      int
}

type IMaintenanceUseCase interface {
	Create(ctx context.Context, condoID string, in CreateMaintenanceInput) (entities.Maintenance, error)
	List(ctx context.Context, condoID string) ([]entities.Maintenance, error)
	UpdateStatus(ctx context.Context, condoID, id string, status entities.MaintenanceStatus) (entities.Maintenance, error)
	Stats(ctx context.Context, condoID string) (MaintenanceStats, error)
}

type MaintenanceUseCase struct {
	repo interfaces.IMaintenanceRepository
	now  func() time.Time
}

var _ IMaintenanceUseCase = (*MaintenanceUseCase)(nil)

func NewMaintenanceUseCase(repo interfaces.IMaintenanceRepository) *MaintenanceUseCase {
	return &MaintenanceUseCase{repo: repo, now: time.Now}
}

func (u *MaintenanceUseCase) Create(ctx context.Context, condoID string, in CreateMaintenanceInput) (entities.Maintenance, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return entities.Maintenance{}, ErrInvalidCondoID
	}
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || in.ScheduledAt.IsZero() {
		return entities.Maintenance{}, ErrInvalidMaintenanceInput
	}

	m := entities.Maintenance{
		ID:          uuid.NewString(),
		CondoID:     condoID,
		Title:       in.Title,
		Description: strings.TrimSpace(in.Description),
		AssignedTo:  strings.TrimSpace(in.AssignedTo),
		ScheduledAt: in.ScheduledAt,
		Status:      entities.MaintenanceStatusPendente,
		CreatedAt:   u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, m)
	if err != nil {
		log.Printf("[maintenance][usecase] create failed condo_id=%s err=%v", condoID, err)
		return entities.Maintenance{}, err
	}
	return created, nil
}

func (u *MaintenanceUseCase) List(ctx context.Context, condoID string) ([]entities.Maintenance, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return nil, ErrInvalidCondoID
	}
	return u.repo.ListByCondo(ctx, condoID)
}

func (u *MaintenanceUseCase) UpdateStatus(ctx context.Context, condoID, id string, status entities.MaintenanceStatus) (entities.Maintenance, error) {
	condoID = strings.TrimSpace(condoID)
	id = strings.TrimSpace(id)
	if condoID == "" {
		return entities.Maintenance{}, ErrInvalidCondoID
	}
	if id == "" {
		return entities.Maintenance{}, ErrInvalidMaintenanceID
	}
	if !status.Valid() {
		return entities.Maintenance{}, ErrInvalidMaintenanceStatus
	}

	m, err := u.repo.GetByID(ctx, condoID, id)
	if err != nil {
		return entities.Maintenance{}, err
	}
	if m.ID == "" {
		return entities.Maintenance{}, ErrMaintenanceNotFound
	}
	if !m.CanTransitionTo(status) {
		return entities.Maintenance{}, ErrMaintenanceTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, condoID, id, status)
	if err != nil {
		return entities.Maintenance{}, err
	}
	if updated.ID == "" {
		return entities.Maintenance{}, ErrMaintenanceNotFound
	}
	log.Printf("[maintenance][usecase] status updated condo_id=%s maintenance_id=%s status=%s", condoID, id, status)
	return updated, nil
}

func (u *MaintenanceUseCase) Stats(ctx context.Context, condoID string) (MaintenanceStats, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return MaintenanceStats{}, ErrInvalidCondoID
	}

	items, err := u.repo.ListByCondo(ctx, condoID)
	if err != nil {
		return MaintenanceStats{}, err
	}
	stats := MaintenanceStats{Total: len(items)}
	for _, m := range items {
		switch m.Status {
		case entities.MaintenanceStatusPendente:
			stats.Pendentes++
		case entities.MaintenanceStatusAgendada:
			stats.Agendadas++
		case entities.MaintenanceStatusConcluida:
			stats.Concluidas++
		}
	}
	return stats, nil
}
