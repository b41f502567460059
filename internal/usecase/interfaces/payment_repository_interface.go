package interfaces

import (
	"context"
	"time"

	"condo_gestao/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_mock.go -package=mocks

// IPaymentRepository abstracts DynamoDB persistence for Payment records.
//
// Not-found convention: lookups return a zero-value entity and a nil error;
// only transport/marshalling problems surface as errors.

type IPaymentRepository interface {
	// Create persists a new record. The put is conditional on the id not
	// existing, so deterministic charge ids double as a uniqueness guard.
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, condoID, id string) (entities.Payment, error)
	FindByResidentAndPeriod(ctx context.Context, condoID, residentID string, month, year int) (entities.Payment, error)
	ListByResident(ctx context.Context, condoID, residentID string) ([]entities.Payment, error)
	ListByYear(ctx context.Context, condoID string, year int) ([]entities.Payment, error)
	// ListPendingBefore returns records with status=pendente whose due date is
	// strictly before the given instant.
	ListPendingBefore(ctx context.Context, condoID string, before time.Time) ([]entities.Payment, error)
	FindLatestByResident(ctx context.Context, condoID, residentID string) (entities.Payment, error)
	// UpdateStatus changes only the status and, when provided, the payment
	// method and paid-at instant. Returns the zero value when the record does
	// not exist.
	UpdateStatus(ctx context.Context, condoID, id string, status entities.PaymentStatus, method entities.PaymentMethod, paidAt *time.Time) (entities.Payment, error)
	UpdateReceipt(ctx context.Context, condoID, id, receiptURL, note string) (entities.Payment, error)
}
