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

func TestPaymentUseCase_Register(t *testing.T) {
	t.Run("invalid resident id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "condo-1", " ", RegisterPaymentInput{Month: 3, Year: 2024, Method: entities.PaymentMethodPix})
		if !errors.Is(err, ErrInvalidResidentID) {
			t.Fatalf("expected ErrInvalidResidentID, got %v", err)
		}
	})

	t.Run("invalid method", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.Register(context.Background(), "condo-1", "r-1", RegisterPaymentInput{Month: 3, Year: 2024, Method: "cheque"})
		if !errors.Is(err, ErrInvalidMethod) {
			t.Fatalf("expected ErrInvalidMethod, got %v", err)
		}
	})

	t.Run("resident not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		residents := mock_interfaces.NewMockIResidentDirectory(ctrl)
		uc := NewPaymentUseCase(nil, residents, nil)

		residents.EXPECT().GetByID(gomock.Any(), "condo-1", "ghost").Return(entities.Resident{}, nil)

		_, err := uc.Register(context.Background(), "condo-1", "ghost", RegisterPaymentInput{Amount: 350, Month: 3, Year: 2024, Method: entities.PaymentMethodPix})
		if !errors.Is(err, ErrResidentNotFound) {
			t.Fatalf("expected ErrResidentNotFound, got %v", err)
		}
	})

	t.Run("creates a confirmed record when no period charge exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		residents := mock_interfaces.NewMockIResidentDirectory(ctrl)
		configs := mock_interfaces.NewMockIBillingConfigRepository(ctrl)
		uc := NewPaymentUseCase(payments, residents, configs)
		fixed := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		residents.EXPECT().GetByID(gomock.Any(), "condo-1", "r-1").Return(entities.Resident{ID: "r-1", CondoID: "condo-1"}, nil)
		payments.EXPECT().FindByResidentAndPeriod(gomock.Any(), "condo-1", "r-1", 3, 2024).Return(entities.Payment{}, nil)
		configs.EXPECT().Get(gomock.Any(), "condo-1").Return(utcConfig("condo-1", 350, 10), nil)
		payments.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.ID == "" || p.Status != entities.PaymentStatusConfirmado {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.PaidAt == nil || !p.PaidAt.Equal(fixed) {
					t.Fatalf("expected paid_at %s, got %v", fixed, p.PaidAt)
				}
				if p.Method != entities.PaymentMethodDinheiro || p.Amount != 350 {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		_, err := uc.Register(context.Background(), "condo-1", "r-1", RegisterPaymentInput{Amount: 350, Month: 3, Year: 2024, Method: entities.PaymentMethodDinheiro})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("confirms an existing unpaid charge instead of duplicating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		residents := mock_interfaces.NewMockIResidentDirectory(ctrl)
		uc := NewPaymentUseCase(payments, residents, nil)
		fixed := time.Date(2024, time.March, 5, 10, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		residents.EXPECT().GetByID(gomock.Any(), "condo-1", "r-1").Return(entities.Resident{ID: "r-1", CondoID: "condo-1"}, nil)
		payments.EXPECT().FindByResidentAndPeriod(gomock.Any(), "condo-1", "r-1", 3, 2024).
			Return(entities.Payment{ID: "r-1-202403", Status: entities.PaymentStatusPendente}, nil)
		payments.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "r-1-202403", entities.PaymentStatusConfirmado, entities.PaymentMethodPix, gomock.AssignableToTypeOf(&fixed)).
			Return(entities.Payment{ID: "r-1-202403", Status: entities.PaymentStatusConfirmado}, nil)

		got, err := uc.Register(context.Background(), "condo-1", "r-1", RegisterPaymentInput{Amount: 350, Month: 3, Year: 2024, Method: entities.PaymentMethodPix})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "r-1-202403" {
			t.Fatalf("expected the existing charge to be confirmed, got %+v", got)
		}
	})

	t.Run("rejects an already settled period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		residents := mock_interfaces.NewMockIResidentDirectory(ctrl)
		uc := NewPaymentUseCase(payments, residents, nil)

		residents.EXPECT().GetByID(gomock.Any(), "condo-1", "r-1").Return(entities.Resident{ID: "r-1", CondoID: "condo-1"}, nil)
		payments.EXPECT().FindByResidentAndPeriod(gomock.Any(), "condo-1", "r-1", 3, 2024).
			Return(entities.Payment{ID: "r-1-202403", Status: entities.PaymentStatusConfirmado}, nil)

		_, err := uc.Register(context.Background(), "condo-1", "r-1", RegisterPaymentInput{Amount: 350, Month: 3, Year: 2024, Method: entities.PaymentMethodPix})
		if !errors.Is(err, ErrPaymentAlreadyRegistered) {
			t.Fatalf("expected ErrPaymentAlreadyRegistered, got %v", err)
		}
	})
}

func TestPaymentUseCase_Confirm(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil)

		payments.EXPECT().GetByID(gomock.Any(), "condo-1", "p-1").Return(entities.Payment{}, nil)

		_, err := uc.Confirm(context.Background(), "condo-1", "p-1", entities.PaymentMethodPix, nil)
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("confirmado is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil)

		payments.EXPECT().GetByID(gomock.Any(), "condo-1", "p-1").
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusConfirmado}, nil)

		_, err := uc.Confirm(context.Background(), "condo-1", "p-1", entities.PaymentMethodPix, nil)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("atrasado can still be confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil)
		fixed := time.Date(2024, time.April, 2, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		payments.EXPECT().GetByID(gomock.Any(), "condo-1", "p-1").
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusAtrasado}, nil)
		payments.EXPECT().UpdateStatus(gomock.Any(), "condo-1", "p-1", entities.PaymentStatusConfirmado, entities.PaymentMethodBoleto, gomock.AssignableToTypeOf(&fixed)).
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusConfirmado}, nil)

		got, err := uc.Confirm(context.Background(), "condo-1", "p-1", entities.PaymentMethodBoleto, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusConfirmado {
			t.Fatalf("expected confirmado, got %s", got.Status)
		}
	})
}

func TestPaymentUseCase_AttachReceipt(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil)
		_, err := uc.AttachReceipt(context.Background(), "condo-1", "p-1", "  ", "")
		if !errors.Is(err, ErrInvalidReceiptURL) {
			t.Fatalf("expected ErrInvalidReceiptURL, got %v", err)
		}
	})

	t.Run("stores the url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(payments, nil, nil)

		payments.EXPECT().GetByID(gomock.Any(), "condo-1", "p-1").
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusConfirmado}, nil)
		payments.EXPECT().UpdateReceipt(gomock.Any(), "condo-1", "p-1", "https://files/r.pdf", "comprovante").
			Return(entities.Payment{ID: "p-1", ReceiptURL: "https://files/r.pdf"}, nil)

		got, err := uc.AttachReceipt(context.Background(), "condo-1", "p-1", "https://files/r.pdf", "comprovante")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ReceiptURL != "https://files/r.pdf" {
			t.Fatalf("unexpected payment: %+v", got)
		}
	})
}

func TestPaymentUseCase_ListByResident(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentUseCase(payments, nil, nil)

	jan := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	payments.EXPECT().ListByResident(gomock.Any(), "condo-1", "r-1").Return([]entities.Payment{
		{ID: "p-jan", Status: entities.PaymentStatusConfirmado, DueDate: jan, PaidAt: &jan},
		{ID: "p-mar", Status: entities.PaymentStatusPendente, DueDate: mar},
		{ID: "p-feb", Status: entities.PaymentStatusConfirmado, DueDate: feb, PaidAt: &feb},
	}, nil)

	got, err := uc.ListByResident(context.Background(), "condo-1", "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].ID != "p-mar" || got[1].ID != "p-feb" || got[2].ID != "p-jan" {
		t.Fatalf("expected newest first, got %v", []string{got[0].ID, got[1].ID, got[2].ID})
	}
}

func TestPaymentUseCase_ListStandings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	residents := mock_interfaces.NewMockIResidentDirectory(ctrl)
	uc := NewPaymentUseCase(payments, residents, nil)
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	recent := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	stale := time.Date(2023, time.November, 20, 0, 0, 0, 0, time.UTC)
	residents.EXPECT().ListByCondo(gomock.Any(), "condo-1").Return([]entities.Resident{
		{ID: "r-1", CondoID: "condo-1"},
		{ID: "r-2", CondoID: "condo-1"},
		{ID: "r-3", CondoID: "condo-1"},
	}, nil)
	payments.EXPECT().FindLatestByResident(gomock.Any(), "condo-1", "r-1").
		Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusConfirmado, PaidAt: &recent}, nil)
	payments.EXPECT().FindLatestByResident(gomock.Any(), "condo-1", "r-2").
		Return(entities.Payment{ID: "p-2", Status: entities.PaymentStatusConfirmado, PaidAt: &stale}, nil)
	payments.EXPECT().FindLatestByResident(gomock.Any(), "condo-1", "r-3").
		Return(entities.Payment{}, nil)

	report, err := uc.ListStandings(context.Background(), "condo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.EmDia != 1 || report.Atrasado != 2 {
		t.Fatalf("expected 1 em dia / 2 atrasado, got %d/%d", report.EmDia, report.Atrasado)
	}
	if report.Residents[2].LastPayment != nil {
		t.Fatalf("expected nil last payment for r-3")
	}
}

func TestPaymentUseCase_YearlyChart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
	uc := NewPaymentUseCase(payments, nil, nil)

	payments.EXPECT().ListByYear(gomock.Any(), "condo-1", 2024).Return([]entities.Payment{
		{ID: "p-1", Month: 1, Year: 2024, Status: entities.PaymentStatusConfirmado, Amount: 350},
		{ID: "p-2", Month: 1, Year: 2024, Status: entities.PaymentStatusConfirmado, Amount: 350},
		{ID: "p-3", Month: 1, Year: 2024, Status: entities.PaymentStatusAtrasado, Amount: 350},
		{ID: "p-4", Month: 2, Year: 2024, Status: entities.PaymentStatusPendente, Amount: 350},
	}, nil)

	report, err := uc.YearlyChart(context.Background(), "condo-1", 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jan := report.Months[0]
	if jan.Paid != 2 || jan.Overdue != 1 || jan.PaidTotal != 700 {
		t.Fatalf("unexpected january bucket: %+v", jan)
	}
	// Pendente records are neither paid nor overdue.
	feb := report.Months[1]
	if feb.Paid != 0 || feb.Overdue != 0 || feb.PaidTotal != 0 {
		t.Fatalf("unexpected february bucket: %+v", feb)
	}
}
