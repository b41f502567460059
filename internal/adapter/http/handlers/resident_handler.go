package handlers

import (
	"log"
	"net/http"
	"strings"

	response "condo_gestao/internal/adapter/http/dto/response"
	"condo_gestao/internal/usecase/interfaces"
	"condo_gestao/pkg"

	"github.com/gin-gonic/gin"
)

// ResidentHandler exposes read access to the resident directory. Residents
// are managed elsewhere; billing only needs to look them up.

type ResidentHandler struct {
	directory interfaces.IResidentDirectory
}

func NewResidentHandler(directory interfaces.IResidentDirectory) *ResidentHandler {
	return &ResidentHandler{directory: directory}
}

func (h *ResidentHandler) ListResidents(c *gin.Context) {
	condoID := strings.TrimSpace(c.Param("condo_id"))
	if condoID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.directory.ListByCondo(c.Request.Context(), condoID)
	if err != nil {
		log.Printf("[resident][handler] list failed condo_id=%s err=%v", condoID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResidents(items))
}

func (h *ResidentHandler) GetResident(c *gin.Context) {
	condoID := strings.TrimSpace(c.Param("condo_id"))
	residentID := strings.TrimSpace(c.Param("resident_id"))
	if condoID == "" || residentID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	found, err := h.directory.GetByID(c.Request.Context(), condoID, residentID)
	if err != nil {
		log.Printf("[resident][handler] get failed condo_id=%s resident_id=%s err=%v", condoID, residentID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if found.ID == "" {
		appErr := pkg.NewDomainErrorSimple("RESIDENT_NOT_FOUND", "Resident not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromResident(found))
}
