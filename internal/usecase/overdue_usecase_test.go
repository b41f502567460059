package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"condo_gestao/internal/domain/entities"
	mock_interfaces "condo_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOverdueSweepUseCase_SweepOverdue(t *testing.T) {
	t.Run("invalid condo id", func(t *testing.T) {
		uc := NewOverdueSweepUseCase(nil)
		_, err := uc.SweepOverdue(context.Background(), "  ", time.Time{})
		if !errors.Is(err, ErrInvalidCondoID) {
			t.Fatalf("expected ErrInvalidCondoID, got %v", err)
		}
	})

	t.Run("zero as-of defaults to now", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewOverdueSweepUseCase(payments)
		fixed := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		payments.EXPECT().ListPendingBefore(gomock.Any(), "condo-1", fixed).Return(nil, nil)

		res, err := uc.SweepOverdue(context.Background(), "condo-1", time.Time{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Swept) != 0 || len(res.Failures) != 0 {
			t.Fatalf("expected empty result, got %+v", res)
		}
	})

	t.Run("transitions every matched record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewOverdueSweepUseCase(payments)

		asOf := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		due := time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)
		pending := []entities.Payment{
			{ID: "p-1", Status: entities.PaymentStatusPendente, DueDate: due},
			{ID: "p-2", Status: entities.PaymentStatusPendente, DueDate: due},
		}
		payments.EXPECT().ListPendingBefore(gomock.Any(), "condo-1", asOf).Return(pending, nil)
		payments.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "p-1", entities.PaymentStatusAtrasado, entities.PaymentMethod(""), nil).
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusAtrasado}, nil)
		payments.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "p-2", entities.PaymentStatusAtrasado, entities.PaymentMethod(""), nil).
			Return(entities.Payment{ID: "p-2", Status: entities.PaymentStatusAtrasado}, nil)

		res, err := uc.SweepOverdue(context.Background(), "condo-1", asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Swept) != 2 || len(res.Failures) != 0 {
			t.Fatalf("expected 2 swept, got %+v", res)
		}
	})

	t.Run("collects per-record failures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewOverdueSweepUseCase(payments)

		asOf := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		pending := []entities.Payment{
			{ID: "p-1", Status: entities.PaymentStatusPendente},
			{ID: "p-2", Status: entities.PaymentStatusPendente},
			{ID: "p-3", Status: entities.PaymentStatusPendente},
		}
		payments.EXPECT().ListPendingBefore(gomock.Any(), "condo-1", asOf).Return(pending, nil)
		payments.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "p-1", entities.PaymentStatusAtrasado, entities.PaymentMethod(""), nil).
			Return(entities.Payment{}, errors.New("throttled"))
		// Record deleted between the query and the update.
		payments.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "p-2", entities.PaymentStatusAtrasado, entities.PaymentMethod(""), nil).
			Return(entities.Payment{}, nil)
		payments.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "p-3", entities.PaymentStatusAtrasado, entities.PaymentMethod(""), nil).
			Return(entities.Payment{ID: "p-3", Status: entities.PaymentStatusAtrasado}, nil)

		res, err := uc.SweepOverdue(context.Background(), "condo-1", asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Swept) != 1 || res.Swept[0] != "p-3" {
			t.Fatalf("expected only p-3 swept, got %v", res.Swept)
		}
		if len(res.Failures) != 2 {
			t.Fatalf("expected 2 failures, got %d", len(res.Failures))
		}
		if !errors.Is(res.Failures[1].Err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound for vanished record, got %v", res.Failures[1].Err)
		}
	})

	t.Run("query failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewOverdueSweepUseCase(payments)

		asOf := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		payments.EXPECT().ListPendingBefore(gomock.Any(), "condo-1", asOf).Return(nil, errors.New("dynamo down"))

		if _, err := uc.SweepOverdue(context.Background(), "condo-1", asOf); err == nil {
			t.Fatal("expected error")
		}
	})
}
