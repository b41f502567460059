package interfaces

import (
	"context"
	"time"

	"condo_gestao/internal/domain/entities"
)

//go:generate mockgen -source=complaint_repository_interface.go -destination=mocks/complaint_repository_mock.go -package=mocks

// ComplaintFilter narrows complaint listings. Zero values mean "no filter".

type ComplaintFilter struct {
	Status entities.ComplaintStatus
	Unit   string
}

type IComplaintRepository interface {
	Create(ctx context.Context, c entities.Complaint) (entities.Complaint, error)
	GetByID(ctx context.Context, condoID, id string) (entities.Complaint, error)
	ListByCondo(ctx context.Context, condoID string, filter ComplaintFilter) ([]entities.Complaint, error)
	// UpdateStatus changes the status and, when answering, the response text
	// and responded-at instant. Returns the zero value when the complaint does
	// not exist.
	UpdateStatus(ctx context.Context, condoID, id string, status entities.ComplaintStatus, response string, respondedAt *time.Time) (entities.Complaint, error)
}
