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
	ErrInvalidComplaintID     = errors.New("invalid complaint id")
	ErrInvalidComplaintInput  = errors.New("invalid complaint input")
	ErrInvalidComplaintStatus = errors.New("invalid complaint status")
	ErrComplaintNotFound      = errors.New("complaint not found")
	ErrComplaintTransition    = errors.New("invalid complaint status transition")
	ErrEmptyResponse          = errors.New("empty complaint response")
)

type CreateComplaintInput struct {
	Unit        string
	Category    string
	Description string
}

// ComplaintCounts feeds the triage tabs (new / in progress / answered).

type ComplaintCounts struct {
	Novas       int
	EmAndamento int
	Respondidas int
	Total       int
}

type IComplaintUseCase interface {
	Create(ctx context.Context, condoID string, in CreateComplaintInput) (entities.Complaint, error)
	GetByID(ctx context.Context, condoID, id string) (entities.Complaint, error)
	List(ctx context.Context, condoID string, filter interfaces.ComplaintFilter) ([]entities.Complaint, error)
	Respond(ctx context.Context, condoID, id, response string) (entities.Complaint, error)
	UpdateStatus(ctx context.Context, condoID, id string, status entities.ComplaintStatus) (entities.Complaint, error)
	Counts(ctx context.Context, condoID string) (ComplaintCounts, error)
}

type ComplaintUseCase struct {
	repo interfaces.IComplaintRepository
	now  func() time.Time
}

var _ IComplaintUseCase = (*ComplaintUseCase)(nil)

func NewComplaintUseCase(repo interfaces.IComplaintRepository) *ComplaintUseCase {
	return &ComplaintUseCase{repo: repo, now: time.Now}
}

func (u *ComplaintUseCase) Create(ctx context.Context, condoID string, in CreateComplaintInput) (entities.Complaint, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return entities.Complaint{}, ErrInvalidCondoID
	}
	in.Unit = strings.TrimSpace(in.Unit)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	if in.Unit == "" || in.Category == "" || in.Description == "" {
		return entities.Complaint{}, ErrInvalidComplaintInput
	}

	c := entities.Complaint{
		ID:          uuid.NewString(),
		CondoID:     condoID,
		Unit:        in.Unit,
		Category:    in.Category,
		Description: in.Description,
		Status:      entities.ComplaintStatusNova,
		CreatedAt:   u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[complaint][usecase] create failed condo_id=%s err=%v", condoID, err)
		return entities.Complaint{}, err
	}
	return created, nil
}

func (u *ComplaintUseCase) GetByID(ctx context.Context, condoID, id string) (entities.Complaint, error) {
	condoID = strings.TrimSpace(condoID)
	id = strings.TrimSpace(id)
	if condoID == "" {
		return entities.Complaint{}, ErrInvalidCondoID
	}
	if id == "" {
		return entities.Complaint{}, ErrInvalidComplaintID
	}

	c, err := u.repo.GetByID(ctx, condoID, id)
	if err != nil {
		return entities.Complaint{}, err
	}
	if c.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	return c, nil
}

func (u *ComplaintUseCase) List(ctx context.Context, condoID string, filter interfaces.ComplaintFilter) ([]entities.Complaint, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return nil, ErrInvalidCondoID
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, ErrInvalidComplaintStatus
	}
	return u.repo.ListByCondo(ctx, condoID, filter)
}

// Respond stores the administrator's answer and closes the complaint.
func (u *ComplaintUseCase) Respond(ctx context.Context, condoID, id, response string) (entities.Complaint, error) {
	condoID = strings.TrimSpace(condoID)
	id = strings.TrimSpace(id)
	response = strings.TrimSpace(response)
	if condoID == "" {
		return entities.Complaint{}, ErrInvalidCondoID
	}
	if id == "" {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	if response == "" {
		return entities.Complaint{}, ErrEmptyResponse
	}

	c, err := u.repo.GetByID(ctx, condoID, id)
	if err != nil {
		return entities.Complaint{}, err
	}
	if c.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	if !c.CanTransitionTo(entities.ComplaintStatusRespondida) {
		return entities.Complaint{}, ErrComplaintTransition
	}

	respondedAt := u.now().UTC()
	updated, err := u.repo.UpdateStatus(ctx, condoID, id, entities.ComplaintStatusRespondida, response, &respondedAt)
	if err != nil {
		return entities.Complaint{}, err
	}
	if updated.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	log.Printf("[complaint][usecase] respond success condo_id=%s complaint_id=%s", condoID, id)
	return updated, nil
}

func (u *ComplaintUseCase) UpdateStatus(ctx context.Context, condoID, id string, status entities.ComplaintStatus) (entities.Complaint, error) {
	condoID = strings.TrimSpace(condoID)
	id = strings.TrimSpace(id)
	if condoID == "" {
		return entities.Complaint{}, ErrInvalidCondoID
	}
	if id == "" {
		return entities.Complaint{}, ErrInvalidComplaintID
	}
	if !status.Valid() {
		return entities.Complaint{}, ErrInvalidComplaintStatus
	}

	c, err := u.repo.GetByID(ctx, condoID, id)
	if err != nil {
		return entities.Complaint{}, err
	}
	if c.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	if !c.CanTransitionTo(status) {
		return entities.Complaint{}, ErrComplaintTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, condoID, id, status, "", nil)
	if err != nil {
		return entities.Complaint{}, err
	}
	if updated.ID == "" {
		return entities.Complaint{}, ErrComplaintNotFound
	}
	return updated, nil
}

func (u *ComplaintUseCase) Counts(ctx context.Context, condoID string) (ComplaintCounts, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return ComplaintCounts{}, ErrInvalidCondoID
	}

	items, err := u.repo.ListByCondo(ctx, condoID, interfaces.ComplaintFilter{})
	if err != nil {
		return ComplaintCounts{}, err
	}
	counts := ComplaintCounts{Total: len(items)}
	for _, c := range items {
		switch c.Status {
		case entities.ComplaintStatusNova:
			counts.Novas++
		case entities.ComplaintStatusEmAndamento:
			counts.EmAndamento++
		case entities.ComplaintStatusRespondida:
			counts.Respondidas++
		}
	}
	return counts, nil
}
