package handlers

import (
	"errors"
	"log"
	"net/http"

	request "condo_gestao/internal/adapter/http/dto/request"
	response "condo_gestao/internal/adapter/http/dto/response"
	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"
	"condo_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMaintenancePayload = pkg.NewDomainErrorSimple("INVALID_MAINTENANCE_INPUT", "Invalid maintenance payload", http.StatusBadRequest)
)

// MaintenanceHandler handles the maintenance agenda.

type MaintenanceHandler struct {
	usecase usecase.IMaintenanceUseCase
}

func NewMaintenanceHandler(uc usecase.IMaintenanceUseCase) *MaintenanceHandler {
	return &MaintenanceHandler{usecase: uc}
}

func (h *MaintenanceHandler) CreateMaintenance(c *gin.Context) {
	condoID := c.Param("condo_id")

	var payload request.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), condoID, in)
	if err != nil {
		log.Printf("[maintenance][handler] create failed condo_id=%s err=%v", condoID, err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[maintenance][handler] create success condo_id=%s maintenance_id=%s", condoID, created.ID)

	c.JSON(http.StatusCreated, response.FromMaintenance(created))
}

func (h *MaintenanceHandler) ListMaintenances(c *gin.Context) {
	condoID := c.Param("condo_id")

	items, err := h.usecase.List(c.Request.Context(), condoID)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenances(items))
}

func (h *MaintenanceHandler) UpdateMaintenanceStatus(c *gin.Context) {
	condoID := c.Param("condo_id")
	id := c.Param("maintenance_id")

	var payload request.UpdateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaintenancePayload.HTTPStatus, errInvalidMaintenancePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), condoID, id, entities.MaintenanceStatus(payload.Status))
	if err != nil {
		log.Printf("[maintenance][handler] status failed condo_id=%s maintenance_id=%s err=%v", condoID, id, err)
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenance(updated))
}

func (h *MaintenanceHandler) MaintenanceStats(c *gin.Context) {
	condoID := c.Param("condo_id")

	stats, err := h.usecase.Stats(c.Request.Context(), condoID)
	if err != nil {
		appErr := mapMaintenanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaintenanceStats(stats))
}

func mapMaintenanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCondoID),
		errors.Is(err, usecase.ErrInvalidMaintenanceID),
		errors.Is(err, usecase.ErrInvalidMaintenanceInput),
		errors.Is(err, usecase.ErrInvalidMaintenanceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaintenanceNotFound):
		return pkg.NewDomainErrorSimple("MAINTENANCE_NOT_FOUND", "Maintenance not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMaintenanceTransition):
		return pkg.NewDomainErrorSimple("INVALID_MAINTENANCE_TRANSITION", "Maintenance cannot transition to the requested status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
