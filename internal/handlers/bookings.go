package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Bookings handlers

// CreateBooking - POST /api/booking
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create booking", "error", err)
		respondError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListBookings - GET /api/booking
func (h *Handlers) ListBookings(c *gin.Context) {
	status := c.Query("status")
	query := c.Query("query")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	var startDate, endDate *time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate"})
			return
		}
		startDate = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate"})
			return
		}
		endDate = &t
	}

	response, err := h.services.Bookings.List(c.Request.Context(), status, query, startDate, endDate, page, pageSize)
	if err != nil {
		slog.Error("Failed to list bookings", "error", err)
		respondError(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetBooking - GET /api/booking/:id
func (h *Handlers) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Bookings.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get booking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateBooking - PUT /api/booking/:id
func (h *Handlers) UpdateBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.Update(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update booking", "error", err, "booking_id", id)
		respondError(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteBooking - DELETE /api/booking/:id
func (h *Handlers) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Bookings.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}

// CancelBooking - PATCH /api/booking/cancel
func (h *Handlers) CancelBooking(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.Cancel(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to cancel booking", "error", err, "booking_id", req.BookingID)
		respondError(c, err, "Failed to cancel booking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CheckInBooking - PATCH /api/booking/checkin
func (h *Handlers) CheckInBooking(c *gin.Context) {
	var req models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.CheckIn(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to check in booking", "error", err, "booking_id", req.BookingID)
		respondError(c, err, "Failed to check in booking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// CheckOutBooking - PATCH /api/booking/checkout
func (h *Handlers) CheckOutBooking(c *gin.Context) {
	var req models.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.CheckOut(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to check out booking", "error", err, "booking_id", req.BookingID)
		respondError(c, err, "Failed to check out booking")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExtendStay - PATCH /api/booking/extend
func (h *Handlers) ExtendStay(c *gin.Context) {
	var req models.ExtendStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Bookings.ExtendStay(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to extend stay", "error", err, "booking_id", req.BookingID, "stay_id", req.StayID)
		respondError(c, err, "Failed to extend stay")
		return
	}

	c.JSON(http.StatusOK, response)
}
