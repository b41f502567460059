package usecase

import (
	"testing"
	"time"

	"condo_gestao/internal/domain/entities"
)

func TestClassifyStanding(t *testing.T) {
	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)

	paidAt := func(v time.Time) *entities.Payment {
		return &entities.Payment{ID: "p-1", Status: entities.PaymentStatusConfirmado, PaidAt: &v}
	}

	t.Run("no history is atrasado", func(t *testing.T) {
		if got := ClassifyStanding(nil, now); got != entities.StandingAtrasado {
			t.Fatalf("expected atrasado, got %s", got)
		}
	})

	t.Run("unpaid record is atrasado", func(t *testing.T) {
		last := &entities.Payment{ID: "p-1", Status: entities.PaymentStatusPendente}
		if got := ClassifyStanding(last, now); got != entities.StandingAtrasado {
			t.Fatalf("expected atrasado, got %s", got)
		}
	})

	t.Run("paid within one calendar month is em dia", func(t *testing.T) {
		last := paidAt(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
		if got := ClassifyStanding(last, now); got != entities.StandingEmDia {
			t.Fatalf("expected em dia, got %s", got)
		}
	})

	t.Run("paid over one calendar month ago is atrasado", func(t *testing.T) {
		last := paidAt(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
		later := time.Date(2024, time.March, 16, 0, 0, 0, 0, time.UTC)
		if got := ClassifyStanding(last, later); got != entities.StandingAtrasado {
			t.Fatalf("expected atrasado, got %s", got)
		}
	})

	t.Run("window is a calendar month, not 30 days", func(t *testing.T) {
		// Jan 31 paid, evaluated Feb 29: AddDate(0,-1,0) lands on Jan 29, so
		// Jan 31 still counts as em dia even though 29 days have passed.
		last := paidAt(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC))
		eval := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		if got := ClassifyStanding(last, eval); got != entities.StandingEmDia {
			t.Fatalf("expected em dia, got %s", got)
		}
	})

	t.Run("exactly on the boundary is atrasado", func(t *testing.T) {
		last := paidAt(time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC))
		if got := ClassifyStanding(last, now); got != entities.StandingAtrasado {
			t.Fatalf("expected atrasado, got %s", got)
		}
	})
}
