package interfaces

import (
	"context"

	"condo_gestao/internal/domain/entities"
)

//go:generate mockgen -source=maintenance_repository_interface.go -destination=mocks/maintenance_repository_mock.go -package=mocks

type IMaintenanceRepository interface {
	Create(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error)
	GetByID(ctx context.Context, condoID, id string) (entities.Maintenance, error)
	// ListByCondo returns tasks ordered by scheduled date, earliest first.
	ListByCondo(ctx context.Context, condoID string) ([]entities.Maintenance, error)
	UpdateStatus(ctx context.Context, condoID, id string, status entities.MaintenanceStatus) (entities.Maintenance, error)
}
