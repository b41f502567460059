package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidResidentID        = errors.New("invalid resident id")
	ErrInvalidPaymentID         = errors.New("invalid payment id")
	ErrInvalidAmount            = errors.New("invalid payment amount")
	ErrInvalidMethod            = errors.New("invalid payment method")
	ErrInvalidReceiptURL        = errors.New("invalid receipt url")
	ErrInvalidYear              = errors.New("invalid year")
	ErrResidentNotFound         = errors.New("resident not found")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrPaymentAlreadyRegistered = errors.New("payment already registered for this period")
	// ErrInvalidTransition rejects any move out of the confirmado terminal
	// state before a single store call is made.
	ErrInvalidTransition = errors.New("invalid payment status transition")
)

// RegisterPaymentInput is a direct payment registration (e.g. cash collected
// on the spot), which bypasses the pending state.

type RegisterPaymentInput struct {
	Amount     float64
	Month      int
	Year       int
	Method     entities.PaymentMethod
	PaidAt     *time.Time
	ReceiptURL string
	Note       string
}

// ResidentStanding joins a resident with their derived payment standing.

type ResidentStanding struct {
	Resident    entities.Resident
	Standing    entities.Standing
	LastPayment *entities.Payment
}

// StandingsReport is the dashboard view: all residents classified, plus
// totals.

type StandingsReport struct {
	Residents []ResidentStanding
	EmDia     int
	Atrasado  int
}

// ChartMonth is one bucket of the yearly payment chart.

type ChartMonth struct {
	Paid      int
	Overdue   int
	PaidTotal float64
}

// ChartReport buckets a year's payment records per billing month.

type ChartReport struct {
	Year   int
	Months [12]ChartMonth
}

type IPaymentUseCase interface {
	Register(ctx context.Context, condoID, residentID string, in RegisterPaymentInput) (entities.Payment, error)
	Confirm(ctx context.Context, condoID, paymentID string, method entities.PaymentMethod, paidAt *time.Time) (entities.Payment, error)
	AttachReceipt(ctx context.Context, condoID, paymentID, receiptURL, note string) (entities.Payment, error)
	ListByResident(ctx context.Context, condoID, residentID string) ([]entities.Payment, error)
	ListStandings(ctx context.Context, condoID string) (StandingsReport, error)
	YearlyChart(ctx context.Context, condoID string, year int) (ChartReport, error)
}

type PaymentUseCase struct {
	payments  interfaces.IPaymentRepository
	residents interfaces.IResidentDirectory
	configs   interfaces.IBillingConfigRepository
	now       func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(payments interfaces.IPaymentRepository, residents interfaces.IResidentDirectory, configs interfaces.IBillingConfigRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, residents: residents, configs: configs, now: time.Now}
}

// Register records a payment as confirmado for the given period. When the
// period already has an unpaid charge (pendente or atrasado), that charge is
// confirmed instead of creating a duplicate record, which preserves the
// one-record-per-period invariant.
func (u *PaymentUseCase) Register(ctx context.Context, condoID, residentID string, in RegisterPaymentInput) (entities.Payment, error) {
	condoID = strings.TrimSpace(condoID)
	residentID = strings.TrimSpace(residentID)
	if condoID == "" {
		return entities.Payment{}, ErrInvalidCondoID
	}
	if residentID == "" {
		return entities.Payment{}, ErrInvalidResidentID
	}
	if in.Amount < 0 {
		return entities.Payment{}, ErrInvalidAmount
	}
	if !in.Method.Valid() {
		return entities.Payment{}, ErrInvalidMethod
	}
	if !(Period{Month: in.Month, Year: in.Year}).valid() {
		return entities.Payment{}, ErrInvalidPeriod
	}

	resident, err := u.residents.GetByID(ctx, condoID, residentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if resident.ID == "" {
		return entities.Payment{}, ErrResidentNotFound
	}

	paidAt := u.now().UTC()
	if in.PaidAt != nil {
		paidAt = in.PaidAt.UTC()
	}

	existing, err := u.payments.FindByResidentAndPeriod(ctx, condoID, residentID, in.Month, in.Year)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		if existing.Settled() {
			return entities.Payment{}, ErrPaymentAlreadyRegistered
		}
		log.Printf("[payment][usecase] confirming existing charge condo_id=%s payment_id=%s period=%04d-%02d", condoID, existing.ID, in.Year, in.Month)
		confirmed, err := u.payments.UpdateStatus(ctx, condoID, existing.ID, entities.PaymentStatusConfirmado, in.Method, &paidAt)
		if err != nil {
			return entities.Payment{}, err
		}
		if confirmed.ID == "" {
			return entities.Payment{}, ErrPaymentNotFound
		}
		if in.ReceiptURL != "" || in.Note != "" {
			return u.payments.UpdateReceipt(ctx, condoID, confirmed.ID, in.ReceiptURL, in.Note)
		}
		return confirmed, nil
	}

	cfg, err := u.configs.Get(ctx, condoID)
	if err != nil {
		return entities.Payment{}, err
	}
	p := entities.Payment{
		ID:         uuid.NewString(),
		CondoID:    condoID,
		ResidentID: residentID,
		Amount:     in.Amount,
		Month:      in.Month,
		Year:       in.Year,
		Status:     entities.PaymentStatusConfirmado,
		Method:     in.Method,
		DueDate:    dueDateFor(cfg.DueDay, in.Month, in.Year, cfg.Location()),
		PaidAt:     &paidAt,
		ReceiptURL: in.ReceiptURL,
		Note:       in.Note,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] register failed condo_id=%s resident_id=%s err=%v", condoID, residentID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] register success condo_id=%s payment_id=%s method=%s", condoID, created.ID, created.Method)
	return created, nil
}

// Confirm transitions a pendente or atrasado charge to confirmado, setting
// the payment method and paid-at instant.
func (u *PaymentUseCase) Confirm(ctx context.Context, condoID, paymentID string, method entities.PaymentMethod, paidAt *time.Time) (entities.Payment, error) {
	condoID = strings.TrimSpace(condoID)
	paymentID = strings.TrimSpace(paymentID)
	if condoID == "" {
		return entities.Payment{}, ErrInvalidCondoID
	}
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if !method.Valid() {
		return entities.Payment{}, ErrInvalidMethod
	}

	p, err := u.payments.GetByID(ctx, condoID, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if !p.CanTransitionTo(entities.PaymentStatusConfirmado) {
		return entities.Payment{}, ErrInvalidTransition
	}

	when := u.now().UTC()
	if paidAt != nil {
		when = paidAt.UTC()
	}
	updated, err := u.payments.UpdateStatus(ctx, condoID, paymentID, entities.PaymentStatusConfirmado, method, &when)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	log.Printf("[payment][usecase] confirm success condo_id=%s payment_id=%s method=%s", condoID, paymentID, method)
	return updated, nil
}

// AttachReceipt stores the proof-of-payment pointer on an existing record.
// The file itself lives in external storage; only the URL is kept.
func (u *PaymentUseCase) AttachReceipt(ctx context.Context, condoID, paymentID, receiptURL, note string) (entities.Payment, error) {
	condoID = strings.TrimSpace(condoID)
	paymentID = strings.TrimSpace(paymentID)
	receiptURL = strings.TrimSpace(receiptURL)
	if condoID == "" {
		return entities.Payment{}, ErrInvalidCondoID
	}
	if paymentID == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if receiptURL == "" {
		return entities.Payment{}, ErrInvalidReceiptURL
	}

	p, err := u.payments.GetByID(ctx, condoID, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return u.payments.UpdateReceipt(ctx, condoID, paymentID, receiptURL, note)
}

// ListByResident returns a resident's payment history, most recent first
// (paid records by payment date, unpaid ones by due date).
func (u *PaymentUseCase) ListByResident(ctx context.Context, condoID, residentID string) ([]entities.Payment, error) {
	condoID = strings.TrimSpace(condoID)
	residentID = strings.TrimSpace(residentID)
	if condoID == "" {
		return nil, ErrInvalidCondoID
	}
	if residentID == "" {
		return nil, ErrInvalidResidentID
	}

	items, err := u.payments.ListByResident(ctx, condoID, residentID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return paymentSortKey(items[i]).After(paymentSortKey(items[j]))
	})
	return items, nil
}

func paymentSortKey(p entities.Payment) time.Time {
	if p.PaidAt != nil {
		return *p.PaidAt
	}
	return p.DueDate
}

// ListStandings classifies every resident of the condo by their most recent
// payment and totals the result for the dashboard cards.
func (u *PaymentUseCase) ListStandings(ctx context.Context, condoID string) (StandingsReport, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return StandingsReport{}, ErrInvalidCondoID
	}

	residents, err := u.residents.ListByCondo(ctx, condoID)
	if err != nil {
		return StandingsReport{}, err
	}

	now := u.now()
	report := StandingsReport{Residents: make([]ResidentStanding, 0, len(residents))}
	for _, r := range residents {
		last, err := u.payments.FindLatestByResident(ctx, condoID, r.ID)
		if err != nil {
			return StandingsReport{}, err
		}
		var lastPtr *entities.Payment
		if last.ID != "" {
			lp := last
			lastPtr = &lp
		}
		standing := ClassifyStanding(lastPtr, now)
		if standing == entities.StandingEmDia {
			report.EmDia++
		} else {
			report.Atrasado++
		}
		report.Residents = append(report.Residents, ResidentStanding{Resident: r, Standing: standing, LastPayment: lastPtr})
	}
	return report, nil
}

// YearlyChart buckets the year's records per billing month: confirmed and
// overdue counts plus the confirmed total, feeding the payments chart.
func (u *PaymentUseCase) YearlyChart(ctx context.Context, condoID string, year int) (ChartReport, error) {
	condoID = strings.TrimSpace(condoID)
	if condoID == "" {
		return ChartReport{}, ErrInvalidCondoID
	}
	if year <= 0 {
		return ChartReport{}, ErrInvalidYear
	}

	items, err := u.payments.ListByYear(ctx, condoID, year)
	if err != nil {
		return ChartReport{}, err
	}

	report := ChartReport{Year: year}
	for _, p := range items {
		if p.Month < 1 || p.Month > 12 {
			continue
		}
		bucket := &report.Months[p.Month-1]
		switch p.Status {
		case entities.PaymentStatusConfirmado:
			bucket.Paid++
			bucket.PaidTotal += p.Amount
		case entities.PaymentStatusAtrasado:
			bucket.Overdue++
		}
	}
	return report, nil
}
