package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "condo_gestao/internal/adapter/http/dto/request"
	response "condo_gestao/internal/adapter/http/dto/response"
	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"
	"condo_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles per-record payment operations plus the derived
// standing and chart reports.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	charges usecase.IChargeUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, charges usecase.IChargeUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc, charges: charges}
}

// RegisterPayment records a settled payment for a resident's period.
func (h *PaymentHandler) RegisterPayment(c *gin.Context) {
	condoID := c.Param("condo_id")
	residentID := c.Param("resident_id")
	log.Printf("[payment][handler] register start condo_id=%s resident_id=%s", condoID, residentID)

	var payload request.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), condoID, residentID, in)
	if err != nil {
		log.Printf("[payment][handler] register failed condo_id=%s resident_id=%s err=%v", condoID, residentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] register success condo_id=%s payment_id=%s", condoID, created.ID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ConfirmPayment settles a pending or overdue charge.
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	condoID := c.Param("condo_id")
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] confirm start condo_id=%s payment_id=%s", condoID, paymentID)

	var payload request.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	paidAt, err := payload.ResolvePaidAt()
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Confirm(c.Request.Context(), condoID, paymentID, entities.PaymentMethod(payload.Method), paidAt)
	if err != nil {
		log.Printf("[payment][handler] confirm failed condo_id=%s payment_id=%s err=%v", condoID, paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] confirm success condo_id=%s payment_id=%s", condoID, paymentID)

	c.JSON(http.StatusOK, response.FromPayment(updated))
}

// AttachReceipt stores the proof-of-payment URL on an existing record.
func (h *PaymentHandler) AttachReceipt(c *gin.Context) {
	condoID := c.Param("condo_id")
	paymentID := c.Param("payment_id")

	var payload request.AttachReceiptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AttachReceipt(c.Request.Context(), condoID, paymentID, payload.ReceiptURL, payload.Note)
	if err != nil {
		log.Printf("[payment][handler] receipt failed condo_id=%s payment_id=%s err=%v", condoID, paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(updated))
}

// ListResidentPayments returns a resident's payment history, newest first.
func (h *PaymentHandler) ListResidentPayments(c *gin.Context) {
	condoID := c.Param("condo_id")
	residentID := c.Param("resident_id")

	items, err := h.usecase.ListByResident(c.Request.Context(), condoID, residentID)
	if err != nil {
		log.Printf("[payment][handler] list failed condo_id=%s resident_id=%s err=%v", condoID, residentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(items))
}

// ListStandings classifies every resident as em dia or atrasado.
func (h *PaymentHandler) ListStandings(c *gin.Context) {
	condoID := c.Param("condo_id")

	report, err := h.usecase.ListStandings(c.Request.Context(), condoID)
	if err != nil {
		log.Printf("[payment][handler] standings failed condo_id=%s err=%v", condoID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStandingsReport(report))
}

// YearlyChart buckets the year's payments per month for the chart view.
func (h *PaymentHandler) YearlyChart(c *gin.Context) {
	condoID := c.Param("condo_id")
	year, err := strconv.Atoi(c.DefaultQuery("year", "0"))
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	report, err := h.usecase.YearlyChart(c.Request.Context(), condoID, year)
	if err != nil {
		log.Printf("[payment][handler] chart failed condo_id=%s year=%d err=%v", condoID, year, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChartReport(report))
}

// CreatePixCharge opens an online pix charge for an unpaid record.
func (h *PaymentHandler) CreatePixCharge(c *gin.Context) {
	condoID := c.Param("condo_id")
	paymentID := c.Param("payment_id")
	log.Printf("[payment][handler] pix charge start condo_id=%s payment_id=%s", condoID, paymentID)

	charge, err := h.charges.CreatePixCharge(c.Request.Context(), condoID, paymentID)
	if err != nil {
		log.Printf("[payment][handler] pix charge failed condo_id=%s payment_id=%s err=%v", condoID, paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pix charge success condo_id=%s payment_id=%s provider_id=%s", condoID, paymentID, charge.ProviderID)

	c.JSON(http.StatusCreated, response.FromPixCharge(charge))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCondoID),
		errors.Is(err, usecase.ErrInvalidResidentID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidMethod),
		errors.Is(err, usecase.ErrInvalidReceiptURL),
		errors.Is(err, usecase.ErrInvalidYear),
		errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResidentNotFound):
		return pkg.NewDomainErrorSimple("RESIDENT_NOT_FOUND", "Resident not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentAlreadyRegistered):
		return pkg.NewDomainErrorSimple("PAYMENT_ALREADY_REGISTERED", "Payment already registered for this period", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition), errors.Is(err, usecase.ErrPaymentAlreadySettled):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_TRANSITION", "Payment cannot transition to the requested status", http.StatusConflict)
	case errors.Is(err, usecase.ErrPixKeyNotConfigured):
		return pkg.NewDomainErrorSimple("PIX_KEY_NOT_CONFIGURED", "Condo has no pix key configured", http.StatusConflict)
	case errors.Is(err, usecase.ErrChargeGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("CHARGE_GATEWAY_UNAVAILABLE", "Charge gateway unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
