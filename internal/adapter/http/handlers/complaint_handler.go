package handlers

import (
	"errors"
	"log"
	"net/http"

	request "condo_gestao/internal/adapter/http/dto/request"
	response "condo_gestao/internal/adapter/http/dto/response"
	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase"
	"condo_gestao/internal/usecase/interfaces"
	"condo_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidComplaintPayload = pkg.NewDomainErrorSimple("INVALID_COMPLAINT_INPUT", "Invalid complaint payload", http.StatusBadRequest)
)

// ComplaintHandler handles the complaint triage flow.

type ComplaintHandler struct {
	usecase usecase.IComplaintUseCase
}

func NewComplaintHandler(uc usecase.IComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{usecase: uc}
}

func (h *ComplaintHandler) CreateComplaint(c *gin.Context) {
	condoID := c.Param("condo_id")

	var payload request.CreateComplaintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), condoID, payload.ToInput())
	if err != nil {
		log.Printf("[complaint][handler] create failed condo_id=%s err=%v", condoID, err)
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[complaint][handler] create success condo_id=%s complaint_id=%s", condoID, created.ID)

	c.JSON(http.StatusCreated, response.FromComplaint(created))
}

func (h *ComplaintHandler) GetComplaint(c *gin.Context) {
	condoID := c.Param("condo_id")
	id := c.Param("complaint_id")

	found, err := h.usecase.GetByID(c.Request.Context(), condoID, id)
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(found))
}

func (h *ComplaintHandler) ListComplaints(c *gin.Context) {
	condoID := c.Param("condo_id")
	filter := interfaces.ComplaintFilter{
		Status: entities.ComplaintStatus(c.Query("status")),
		Unit:   c.Query("unit"),
	}

	items, err := h.usecase.List(c.Request.Context(), condoID, filter)
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaints(items))
}

func (h *ComplaintHandler) RespondComplaint(c *gin.Context) {
	condoID := c.Param("condo_id")
	id := c.Param("complaint_id")

	var payload request.RespondComplaintRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Respond(c.Request.Context(), condoID, id, payload.Response)
	if err != nil {
		log.Printf("[complaint][handler] respond failed condo_id=%s complaint_id=%s err=%v", condoID, id, err)
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(updated))
}

func (h *ComplaintHandler) UpdateComplaintStatus(c *gin.Context) {
	condoID := c.Param("condo_id")
	id := c.Param("complaint_id")

	var payload request.UpdateComplaintStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidComplaintPayload.HTTPStatus, errInvalidComplaintPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), condoID, id, entities.ComplaintStatus(payload.Status))
	if err != nil {
		log.Printf("[complaint][handler] status failed condo_id=%s complaint_id=%s err=%v", condoID, id, err)
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaint(updated))
}

func (h *ComplaintHandler) ComplaintCounts(c *gin.Context) {
	condoID := c.Param("condo_id")

	counts, err := h.usecase.Counts(c.Request.Context(), condoID)
	if err != nil {
		appErr := mapComplaintError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromComplaintCounts(counts))
}

func mapComplaintError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCondoID),
		errors.Is(err, usecase.ErrInvalidComplaintID),
		errors.Is(err, usecase.ErrInvalidComplaintInput),
		errors.Is(err, usecase.ErrInvalidComplaintStatus),
		errors.Is(err, usecase.ErrEmptyResponse):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrComplaintNotFound):
		return pkg.NewDomainErrorSimple("COMPLAINT_NOT_FOUND", "Complaint not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrComplaintTransition):
		return pkg.NewDomainErrorSimple("INVALID_COMPLAINT_TRANSITION", "Complaint cannot transition to the requested status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
