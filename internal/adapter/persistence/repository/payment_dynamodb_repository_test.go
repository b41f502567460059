package repository

import (
	"strings"
	"testing"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"
)

func TestLatestPaymentRecord(t *testing.T) {
	t.Run("paid record is never shadowed by a newer pending charge", func(t *testing.T) {
		paidAt := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
		items := []entities.Payment{
			{ID: "r-1-202401", ResidentID: "r-1", Status: entities.PaymentStatusConfirmado, PaidAt: &paidAt,
				DueDate: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "r-1-202402", ResidentID: "r-1", Status: entities.PaymentStatusPendente,
				DueDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		}

		latest := latestPaymentRecord(items)
		if latest.ID != "r-1-202401" {
			t.Fatalf("expected the paid record, got %q", latest.ID)
		}

		now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
		if got := usecase.ClassifyStanding(&latest, now); got != entities.StandingEmDia {
			t.Fatalf("expected em dia right after generating the next cycle, got %q", got)
		}
	})

	t.Run("most recent paid wins among several", func(t *testing.T) {
		jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
		feb := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
		items := []entities.Payment{
			{ID: "p-jan", Status: entities.PaymentStatusConfirmado, PaidAt: &jan},
			{ID: "p-feb", Status: entities.PaymentStatusConfirmado, PaidAt: &feb},
		}
		if got := latestPaymentRecord(items); got.ID != "p-feb" {
			t.Fatalf("expected p-feb, got %q", got.ID)
		}
	})

	t.Run("falls back to the latest-due unpaid charge", func(t *testing.T) {
		items := []entities.Payment{
			{ID: "p-feb", Status: entities.PaymentStatusPendente, DueDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
			{ID: "p-mar", Status: entities.PaymentStatusPendente, DueDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)},
		}
		got := latestPaymentRecord(items)
		if got.ID != "p-mar" {
			t.Fatalf("expected p-mar, got %q", got.ID)
		}
		if usecase.ClassifyStanding(&got, time.Now()) != entities.StandingAtrasado {
			t.Fatalf("expected an unpaid-only history to classify atrasado")
		}
	})

	t.Run("no records", func(t *testing.T) {
		if got := latestPaymentRecord(nil); got.ID != "" {
			t.Fatalf("expected zero payment, got %+v", got)
		}
	})
}

func TestBuildStatusUpdate(t *testing.T) {
	t.Run("atrasado only from pendente", func(t *testing.T) {
		cond, _, vals, _ := buildStatusUpdate(entities.PaymentStatusAtrasado, "", nil)
		if !strings.Contains(cond, "#status = :only_pending") {
			t.Fatalf("expected a pending guard, got %q", cond)
		}
		if _, ok := vals[":only_pending"]; !ok {
			t.Fatalf("expected :only_pending value, got %v", vals)
		}
	})

	t.Run("confirm carries method and paid_at without the guard", func(t *testing.T) {
		paidAt := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
		cond, expr, vals, names := buildStatusUpdate(entities.PaymentStatusConfirmado, entities.PaymentMethodPix, &paidAt)
		if strings.Contains(cond, ":only_pending") {
			t.Fatalf("unexpected pending guard on confirm: %q", cond)
		}
		if !strings.Contains(expr, "#method = :method") || !strings.Contains(expr, "#paid_at = :paid_at") {
			t.Fatalf("unexpected update expression: %q", expr)
		}
		if _, ok := vals[":paid_at"]; !ok {
			t.Fatalf("expected :paid_at value, got %v", vals)
		}
		if names["#method"] != "method" || names["#paid_at"] != "paid_at" {
			t.Fatalf("unexpected names: %v", names)
		}
	})
}
