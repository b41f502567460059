package handlers

import (
	"errors"
	"log"
	"net/http"

	request "condo_gestao/internal/adapter/http/dto/request"
	response "condo_gestao/internal/adapter/http/dto/response"
	"condo_gestao/internal/usecase"
	"condo_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillingPayload = pkg.NewDomainErrorSimple("INVALID_BILLING_INPUT", "Invalid billing payload", http.StatusBadRequest)
)

// BillingHandler handles the batch billing operations: monthly charge
// generation and the overdue sweep.

type BillingHandler struct {
	cycle usecase.IBillingCycleUseCase
	sweep usecase.IOverdueSweepUseCase
}

func NewBillingHandler(cycle usecase.IBillingCycleUseCase, sweep usecase.IOverdueSweepUseCase) *BillingHandler {
	return &BillingHandler{cycle: cycle, sweep: sweep}
}

// GenerateCharges creates one pending charge per resident for the requested
// period. Re-running it is safe: existing periods are skipped.
func (h *BillingHandler) GenerateCharges(c *gin.Context) {
	condoID := c.Param("condo_id")
	log.Printf("[billing][handler] generate start condo_id=%s", condoID)

	var payload request.GenerateChargesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
			return
		}
	}

	result, err := h.cycle.GenerateMonthlyCharges(c.Request.Context(), condoID, payload.ResolvePeriod())
	if err != nil {
		log.Printf("[billing][handler] generate failed condo_id=%s err=%v", condoID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[billing][handler] generate success condo_id=%s created=%d skipped=%d failed=%d", condoID, len(result.Created), result.Skipped, len(result.Failures))

	c.JSON(http.StatusOK, response.FromGenerateResult(result))
}

// SweepOverdue marks pending charges past their due date as atrasado.
func (h *BillingHandler) SweepOverdue(c *gin.Context) {
	condoID := c.Param("condo_id")
	log.Printf("[billing][handler] sweep start condo_id=%s", condoID)

	var payload request.SweepRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
			return
		}
	}
	asOf, err := payload.ResolveAsOf()
	if err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	result, err := h.sweep.SweepOverdue(c.Request.Context(), condoID, asOf)
	if err != nil {
		log.Printf("[billing][handler] sweep failed condo_id=%s err=%v", condoID, err)
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[billing][handler] sweep success condo_id=%s swept=%d failed=%d", condoID, len(result.Swept), len(result.Failures))

	c.JSON(http.StatusOK, response.FromSweepResult(result))
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCondoID), errors.Is(err, usecase.ErrInvalidPeriod):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConfigMissing):
		return pkg.NewDomainErrorSimple("BILLING_CONFIG_UNAVAILABLE", "Billing configuration unavailable", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
