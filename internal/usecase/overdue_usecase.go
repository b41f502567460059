package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"
)

// SweepFailure reports one record that could not be transitioned.

type SweepFailure struct {
	PaymentID string
	Err       error
}

// SweepResult enumerates swept record ids and per-record failures.

type SweepResult struct {
	Swept    []string
	Failures []SweepFailure
}

// IOverdueSweepUseCase batch-transitions stale pending charges to atrasado.

type IOverdueSweepUseCase interface {
	SweepOverdue(ctx context.Context, condoID string, asOf time.Time) (SweepResult, error)
}

type OverdueSweepUseCase struct {
	payments interfaces.IPaymentRepository
	now      func() time.Time
}

var _ IOverdueSweepUseCase = (*OverdueSweepUseCase)(nil)

func NewOverdueSweepUseCase(payments interfaces.IPaymentRepository) *OverdueSweepUseCase {
	return &OverdueSweepUseCase{payments: payments, now: time.Now}
}

// SweepOverdue marks every pending charge whose due date is strictly before
// asOf (defaulting to now) as atrasado. Transitions are independent: one
// failed update is reported and does not block the others, and re-running the
// sweep is safe because already-overdue records no longer match the query.
func (u *OverdueSweepUseCase) SweepOverdue(ctx context.Context, condoID string, asOf time.Time) (SweepResult, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return SweepResult{}, ErrInvalidCondoID
	}
	if asOf.IsZero() {
		asOf = u.now().UTC()
	}

	pending, err := u.payments.ListPendingBefore(ctx, condoID, asOf)
	if err != nil {
		log.Printf("[sweep][usecase] pending query failed condo_id=%s err=%v", condoID, err)
		return SweepResult{}, err
	}
	log.Printf("[sweep][usecase] sweep start condo_id=%s as_of=%s matched=%d", condoID, asOf.Format(time.RFC3339), len(pending))

	var result SweepResult
	for _, p := range pending {
		updated, err := u.payments.UpdateStatus(ctx, condoID, p.ID, entities.PaymentStatusAtrasado, "", nil)
		if err != nil {
			log.Printf("[sweep][usecase] transition failed condo_id=%s payment_id=%s err=%v", condoID, p.ID, err)
			result.Failures = append(result.Failures, SweepFailure{PaymentID: p.ID, Err: err})
			continue
		}
		if updated.ID == "" {
			result.Failures = append(result.Failures, SweepFailure{PaymentID: p.ID, Err: ErrPaymentNotFound})
			continue
		}
		result.Swept = append(result.Swept, updated.ID)
	}

	log.Printf("[sweep][usecase] sweep done condo_id=%s swept=%d failed=%d", condoID, len(result.Swept), len(result.Failures))
	return result, nil
}
