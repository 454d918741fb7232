package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"paintbook/middleware"
	"paintbook/models"
	"paintbook/services/booking"
	"paintbook/utils"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings. A request nothing covers yields a
// 200 carrying alternatives and no booking.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	customerID := c.GetString(middleware.ContextUserID)
	result, err := h.Service.CreateBooking(c.Request.Context(), customerID, req.Start, req.End)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if result.Booking != nil {
		c.JSON(http.StatusCreated, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BookAlternative handles POST /api/bookings/alternative.
func (h *BookingHandler) BookAlternative(c *gin.Context) {
	var req models.BookAlternativeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	customerID := c.GetString(middleware.ContextUserID)
	duration := time.Duration(req.DurationMinutes) * time.Minute
	created, err := h.Service.BookAlternativeSlot(c.Request.Context(), customerID, req.SlotID, duration)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateStatus handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	requesterID := c.GetString(middleware.ContextUserID)
	updated, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, requesterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetBooking handles GET /api/bookings/:id scoped to the requester.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	requesterID := c.GetString(middleware.ContextUserID)
	found, err := h.Service.GetBookingByID(c.Request.Context(), c.Param("id"), requesterID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListBookings handles GET /api/bookings with optional status/date filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{Status: c.Query("status")}

	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "startDate must be RFC3339")
			return
		}
		filter.StartDate = t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "endDate must be RFC3339")
			return
		}
		filter.EndDate = t
	}

	userID := c.GetString(middleware.ContextUserID)
	bookings, err := h.Service.ListUserBookings(c.Request.Context(), userID, filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
