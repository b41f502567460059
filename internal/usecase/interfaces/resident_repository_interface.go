package interfaces

import (
	"context"

	"condo_gestao/internal/domain/entities"
)

//go:generate mockgen -source=resident_repository_interface.go -destination=mocks/resident_repository_mock.go -package=mocks

// IResidentDirectory is the read-only view of the resident registry used by
// billing operations.

type IResidentDirectory interface {
	ListByCondo(ctx context.Context, condoID string) ([]entities.Resident, error)
	GetByID(ctx context.Context, condoID, id string) (entities.Resident, error)
}
