package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"condo_gestao/internal/adapter/http/handlers/mocks"
	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_RegisterPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.POST("/v1/condos/:condo_id/residents/:resident_id/payments", h.RegisterPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/condos/condo-1/residents/r-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid paid_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.POST("/v1/condos/:condo_id/residents/:resident_id/payments", h.RegisterPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/condos/condo-1/residents/r-1/payments", bytes.NewBufferString(`{"month":3,"year":2024,"method":"pix","paid_at":"ontem"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.POST("/v1/condos/:condo_id/residents/:resident_id/payments", h.RegisterPayment)

		in := usecase.RegisterPaymentInput{Amount: 350, Month: 3, Year: 2024, Method: entities.PaymentMethodPix}
		uc.EXPECT().Register(gomock.Any(), "condo-1", "r-1", in).
			Return(entities.Payment{ID: "r-1-202403", ResidentID: "r-1", Amount: 350, Status: entities.PaymentStatusConfirmado}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/condos/condo-1/residents/r-1/payments", bytes.NewBufferString(`{"amount":350,"month":3,"year":2024,"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "r-1-202403" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("period already settled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.POST("/v1/condos/:condo_id/residents/:resident_id/payments", h.RegisterPayment)

		uc.EXPECT().Register(gomock.Any(), "condo-1", "r-1", gomock.Any()).
			Return(entities.Payment{}, usecase.ErrPaymentAlreadyRegistered)

		req := httptest.NewRequest(http.MethodPost, "/v1/condos/condo-1/residents/r-1/payments", bytes.NewBufferString(`{"amount":350,"month":3,"year":2024,"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ConfirmPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing method", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.PATCH("/v1/condos/:condo_id/payments/:payment_id/confirm", h.ConfirmPayment)

		req := httptest.NewRequest(http.MethodPatch, "/v1/condos/condo-1/payments/p-1/confirm", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with explicit paid_at", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.PATCH("/v1/condos/:condo_id/payments/:payment_id/confirm", h.ConfirmPayment)

		paidAt := time.Date(2024, time.March, 5, 14, 0, 0, 0, time.UTC)
		uc.EXPECT().Confirm(gomock.Any(), "condo-1", "p-1", entities.PaymentMethodBoleto, &paidAt).
			Return(entities.Payment{ID: "p-1", Status: entities.PaymentStatusConfirmado, PaidAt: &paidAt}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/condos/condo-1/payments/p-1/confirm", bytes.NewBufferString(`{"method":"boleto","paid_at":"2024-03-05T14:00:00Z"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("terminal status maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.PATCH("/v1/condos/:condo_id/payments/:payment_id/confirm", h.ConfirmPayment)

		uc.EXPECT().Confirm(gomock.Any(), "condo-1", "p-1", entities.PaymentMethodPix, nil).
			Return(entities.Payment{}, usecase.ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/condos/condo-1/payments/p-1/confirm", bytes.NewBufferString(`{"method":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPaymentHandler_ListStandings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	charges := mocks.NewMockIChargeUseCase(ctrl)
	h := NewPaymentHandler(uc, charges)

	r := gin.New()
	r.GET("/v1/condos/:condo_id/payments/standings", h.ListStandings)

	uc.EXPECT().ListStandings(gomock.Any(), "condo-1").Return(usecase.StandingsReport{
		Residents: []usecase.ResidentStanding{
			{Resident: entities.Resident{ID: "r-1", Name: "Ana"}, Standing: entities.StandingEmDia},
			{Resident: entities.Resident{ID: "r-2", Name: "Bruno"}, Standing: entities.StandingAtrasado},
		},
		EmDia:    1,
		Atrasado: 1,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/condos/condo-1/payments/standings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["em_dia"] != float64(1) || body["atrasado"] != float64(1) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestPaymentHandler_YearlyChart(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	charges := mocks.NewMockIChargeUseCase(ctrl)
	h := NewPaymentHandler(uc, charges)

	r := gin.New()
	r.GET("/v1/condos/:condo_id/payments/chart", h.YearlyChart)

	report := usecase.ChartReport{Year: 2024}
	report.Months[0] = usecase.ChartMonth{Paid: 2, Overdue: 1, PaidTotal: 700}
	uc.EXPECT().YearlyChart(gomock.Any(), "condo-1", 2024).Return(report, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/condos/condo-1/payments/chart?year=2024", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["year"] != float64(2024) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestPaymentHandler_CreatePixCharge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.POST("/v1/condos/:condo_id/payments/:payment_id/pix-charge", h.CreatePixCharge)

		charges.EXPECT().CreatePixCharge(gomock.Any(), "condo-1", "p-1").
			Return(usecase.PixCharge{PaymentID: "p-1", ProviderID: "12345", Status: "pending"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/condos/condo-1/payments/p-1/pix-charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["provider_id"] != "12345" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		charges := mocks.NewMockIChargeUseCase(ctrl)
		h := NewPaymentHandler(uc, charges)

		r := gin.New()
		r.POST("/v1/condos/:condo_id/payments/:payment_id/pix-charge", h.CreatePixCharge)

		charges.EXPECT().CreatePixCharge(gomock.Any(), "condo-1", "p-1").
			Return(usecase.PixCharge{}, usecase.ErrChargeGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/condos/condo-1/payments/p-1/pix-charge", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestMapPaymentError(t *testing.T) {
	if got := mapPaymentError(usecase.ErrInvalidMethod); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapPaymentError(usecase.ErrResidentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(usecase.ErrPaymentNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapPaymentError(usecase.ErrPaymentAlreadyRegistered); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrPaymentAlreadySettled); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrPixKeyNotConfigured); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapPaymentError(usecase.ErrChargeGatewayNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
