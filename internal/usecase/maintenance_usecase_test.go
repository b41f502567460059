package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo_gestao/internal/domain/entities"
	mock_interfaces "condo_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMaintenanceUseCase_Create(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		uc := NewMaintenanceUseCase(nil)
		_, err := uc.Create(context.Background(), "condo-1", CreateMaintenanceInput{ScheduledAt: time.Now()})
		if !errors.Is(err, ErrInvalidMaintenanceInput) {
			t.Fatalf("expected ErrInvalidMaintenanceInput, got %v", err)
		}
	})

	t.Run("missing schedule", func(t *testing.T) {
		uc := NewMaintenanceUseCase(nil)
		_, err := uc.Create(context.Background(), "condo-1", CreateMaintenanceInput{Title: "Troca de bomba"})
		if !errors.Is(err, ErrInvalidMaintenanceInput) {
			t.Fatalf("expected ErrInvalidMaintenanceInput, got %v", err)
		}
	})

	t.Run("opens as pendente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewMaintenanceUseCase(repo)

		scheduled := time.Date(2024, time.April, 10, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Maintenance{})).DoAndReturn(
			func(_ context.Context, m entities.Maintenance) (entities.Maintenance, error) {
				if m.ID == "" || m.Status != entities.MaintenanceStatusPendente {
					t.Fatalf("unexpected maintenance: %+v", m)
				}
				return m, nil
			},
		)

		got, err := uc.Create(context.Background(), "condo-1", CreateMaintenanceInput{Title: "Troca de bomba", ScheduledAt: scheduled})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.ScheduledAt.Equal(scheduled) {
			t.Fatalf("unexpected schedule: %s", got.ScheduledAt)
		}
	})
}

func TestMaintenanceUseCase_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewMaintenanceUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "condo-1", "m-1", "cancelada")
		if !errors.Is(err, ErrInvalidMaintenanceStatus) {
			t.Fatalf("expected ErrInvalidMaintenanceStatus, got %v", err)
		}
	})

	t.Run("concluida is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewMaintenanceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "condo-1", "m-1").
			Return(entities.Maintenance{ID: "m-1", Status: entities.MaintenanceStatusConcluida}, nil)

		_, err := uc.UpdateStatus(context.Background(), "condo-1", "m-1", entities.MaintenanceStatusAgendada)
		if !errors.Is(err, ErrMaintenanceTransition) {
			t.Fatalf("expected ErrMaintenanceTransition, got %v", err)
		}
	})

	t.Run("pendente to agendada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
		uc := NewMaintenanceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "condo-1", "m-1").
			Return(entities.Maintenance{ID: "m-1", Status: entities.MaintenanceStatusPendente}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "m-1", entities.MaintenanceStatusAgendada).
			Return(entities.Maintenance{ID: "m-1", Status: entities.MaintenanceStatusAgendada}, nil)

		got, err := uc.UpdateStatus(context.Background(), "condo-1", "m-1", entities.MaintenanceStatusAgendada)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.MaintenanceStatusAgendada {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})
}

func TestMaintenanceUseCase_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMaintenanceRepository(ctrl)
	uc := NewMaintenanceUseCase(repo)

	repo.EXPECT().ListByCondo(gomock.Any(), "condo-1").Return([]entities.Maintenance{
		{ID: "m-1", Status: entities.MaintenanceStatusPendente},
		{ID: "m-2", Status: entities.MaintenanceStatusAgendada},
		{ID: "m-3", Status: entities.MaintenanceStatusAgendada},
		{ID: "m-4", Status: entities.MaintenanceStatusConcluida},
	}, nil)

	stats, err := uc.Stats(context.Background(), "condo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Pendentes != 1 || stats.Agendadas != 2 || stats.Concluidas != 1 || stats.Total != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
