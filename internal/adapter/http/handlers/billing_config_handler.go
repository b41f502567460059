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
	errInvalidConfigPayload = pkg.NewDomainErrorSimple("INVALID_CONFIG_INPUT", "Invalid billing config payload", http.StatusBadRequest)
)

// BillingConfigHandler reads and replaces the condo's billing settings.

type BillingConfigHandler struct {
	usecase usecase.IBillingConfigUseCase
}

func NewBillingConfigHandler(uc usecase.IBillingConfigUseCase) *BillingConfigHandler {
	return &BillingConfigHandler{usecase: uc}
}

// GetConfig returns the condo's billing settings, applying the documented
// defaults when nothing has been saved yet.
func (h *BillingConfigHandler) GetConfig(c *gin.Context) {
	condoID := c.Param("condo_id")

	cfg, err := h.usecase.Get(c.Request.Context(), condoID)
	if err != nil {
		log.Printf("[config][handler] get failed condo_id=%s err=%v", condoID, err)
		appErr := mapBillingConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBillingConfig(cfg))
}

// SaveConfig replaces the condo's billing settings wholesale.
func (h *BillingConfigHandler) SaveConfig(c *gin.Context) {
	condoID := c.Param("condo_id")
	log.Printf("[config][handler] save start condo_id=%s", condoID)

	var payload request.BillingConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConfigPayload.HTTPStatus, errInvalidConfigPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), condoID, payload.ToEntity(condoID))
	if err != nil {
		log.Printf("[config][handler] save failed condo_id=%s err=%v", condoID, err)
		appErr := mapBillingConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[config][handler] save success condo_id=%s due_day=%d", condoID, saved.DueDay)

	c.JSON(http.StatusOK, response.FromBillingConfig(saved))
}

func mapBillingConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCondoID),
		errors.Is(err, usecase.ErrInvalidDueDay),
		errors.Is(err, usecase.ErrInvalidDefaultAmount),
		errors.Is(err, usecase.ErrInvalidPixType),
		errors.Is(err, usecase.ErrInvalidTimezone):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
