package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"paintbook/middleware"
	"paintbook/models"
	"paintbook/services/availability"
	"paintbook/utils"
)

// AvailabilityHandler exposes painter slot management over HTTP.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// CreateSlot handles POST /api/availability.
func (h *AvailabilityHandler) CreateSlot(c *gin.Context) {
	var req models.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	providerID := c.GetString(middleware.ContextUserID)
	slot, err := h.Service.CreateSlot(c.Request.Context(), providerID, req.Start, req.End)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slot)
}

// ListSlots handles GET /api/availability.
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	providerID := c.GetString(middleware.ContextUserID)
	slots, err := h.Service.ListProviderSlots(c.Request.Context(), providerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if slots == nil {
		slots = []models.AvailabilitySlot{}
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// DeleteSlot handles DELETE /api/availability/:id.
func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	providerID := c.GetString(middleware.ContextUserID)
	if err := h.Service.DeleteSlot(c.Request.Context(), providerID, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
