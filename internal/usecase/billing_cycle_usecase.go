package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"
)

var (
	ErrInvalidCondoID = errors.New("invalid condo id")
	ErrInvalidPeriod  = errors.New("invalid billing period")
	// ErrConfigMissing is fatal to generation: no charge is written when the
	// billing configuration cannot be read.
	ErrConfigMissing = errors.New("billing configuration unavailable")
)

// Period is a billing month.

type Period struct {
	Month int
	Year  int
}

func (p Period) valid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year > 0
}

// GenerateFailure reports one resident whose charge could not be written.

type GenerateFailure struct {
	ResidentID string
	Err        error
}

// GenerateResult enumerates what a generation run did, so callers can retry
// just the failed subset.

type GenerateResult struct {
	Period   Period
	Created  []entities.Payment
	Skipped  int
	Failures []GenerateFailure
}

// IBillingCycleUseCase creates one pending charge per resident per month,
// idempotently.

type IBillingCycleUseCase interface {
	GenerateMonthlyCharges(ctx context.Context, condoID string, period *Period) (GenerateResult, error)
}

type BillingCycleUseCase struct {
	payments  interfaces.IPaymentRepository
	residents interfaces.IResidentDirectory
	configs   interfaces.IBillingConfigRepository
	now       func() time.Time
}

var _ IBillingCycleUseCase = (*BillingCycleUseCase)(nil)

func NewBillingCycleUseCase(payments interfaces.IPaymentRepository, residents interfaces.IResidentDirectory, configs interfaces.IBillingConfigRepository) *BillingCycleUseCase {
	return &BillingCycleUseCase{payments: payments, residents: residents, configs: configs, now: time.Now}
}

// GenerateMonthlyCharges ensures every resident of the condo has exactly one
// payment record for the target period. Re-running it for the same period
// creates no duplicates and alters no existing record. A failure writing one
// resident's charge is collected and does not abort the rest of the batch.
func (u *BillingCycleUseCase) GenerateMonthlyCharges(ctx context.Context, condoID string, period *Period) (GenerateResult, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return GenerateResult{}, ErrInvalidCondoID
	}

	cfg, err := u.configs.Get(ctx, condoID)
	if err != nil {
		log.Printf("[billing][usecase] config unavailable condo_id=%s err=%v", condoID, err)
		return GenerateResult{}, fmt.Errorf("%w: %v", ErrConfigMissing, err)
	}

	loc := cfg.Location()
	p := Period{}
	if period != nil {
		p = *period
	} else {
		now := u.now().In(loc)
		p = Period{Month: int(now.Month()), Year: now.Year()}
	}
	if !p.valid() {
		return GenerateResult{}, ErrInvalidPeriod
	}

	dueDate := dueDateFor(cfg.DueDay, p.Month, p.Year, loc)
	log.Printf("[billing][usecase] generate start condo_id=%s period=%04d-%02d due_date=%s amount=%.2f", condoID, p.Year, p.Month, dueDate.Format("2006-01-02"), cfg.DefaultAmount)

	residents, err := u.residents.ListByCondo(ctx, condoID)
	if err != nil {
		log.Printf("[billing][usecase] resident listing failed condo_id=%s err=%v", condoID, err)
		return GenerateResult{}, err
	}

	result := GenerateResult{Period: p}
	for _, r := range residents {
		existing, err := u.payments.FindByResidentAndPeriod(ctx, condoID, r.ID, p.Month, p.Year)
		if err != nil {
			log.Printf("[billing][usecase] existence check failed condo_id=%s resident_id=%s err=%v", condoID, r.ID, err)
			result.Failures = append(result.Failures, GenerateFailure{ResidentID: r.ID, Err: err})
			continue
		}
		if existing.ID != "" {
			result.Skipped++
			continue
		}

		charge := entities.Payment{
			ID:         ChargeID(r.ID, p.Month, p.Year),
			CondoID:    condoID,
			ResidentID: r.ID,
			Amount:     cfg.DefaultAmount,
			Month:      p.Month,
			Year:       p.Year,
			Status:     entities.PaymentStatusPendente,
			DueDate:    dueDate,
		}
		created, err := u.payments.Create(ctx, charge)
		if err != nil {
			log.Printf("[billing][usecase] charge create failed condo_id=%s resident_id=%s err=%v", condoID, r.ID, err)
			result.Failures = append(result.Failures, GenerateFailure{ResidentID: r.ID, Err: err})
			continue
		}
		result.Created = append(result.Created, created)
	}

	log.Printf("[billing][usecase] generate done condo_id=%s period=%04d-%02d created=%d skipped=%d failed=%d", condoID, p.Year, p.Month, len(result.Created), result.Skipped, len(result.Failures))
	return result, nil
}

// ChargeID is the deterministic id of a generated monthly charge. Using the
// resident and period as the key lets the store's conditional put enforce at
// most one generated charge per (resident, month, year), even under
// concurrent generation runs.
func ChargeID(residentID string, month, year int) string {
	return fmt.Sprintf("%s-%04d%02d", residentID, year, month)
}

// dueDateFor clamps the configured due day to the last valid day of the
// month (dia 31 in February becomes the 28th or 29th).
func dueDateFor(dueDay, month, year int, loc *time.Location) time.Time {
	if dueDay < 1 {
		dueDay = 1
	}
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, loc).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	return time.Date(year, time.Month(month), dueDay, 0, 0, 0, 0, loc)
}
