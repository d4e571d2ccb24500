package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/reporting"
)

// Reports handlers

// BookingAnalytics - GET /api/analytics/bookings
// ?meanDivisor=stay switches the stay metric means from per-booking to
// per-stay averaging
func (h *Handlers) BookingAnalytics(c *gin.Context) {
	divisor := reporting.DivisorPerBooking
	switch c.DefaultQuery("meanDivisor", "booking") {
	case "booking":
	case "stay":
		divisor = reporting.DivisorPerStay
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "meanDivisor must be booking or stay"})
		return
	}

	response, err := h.services.Reports.BookingAnalytics(c.Request.Context(), divisor)
	if err != nil {
		slog.Error("Failed to compute booking analytics", "error", err)
		respondError(c, err, "Failed to compute analytics")
		return
	}

	c.JSON(http.StatusOK, response)
}
