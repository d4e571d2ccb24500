package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Payment webhook

// PaymentNotification - POST /api/payments/notifications
// Receives gateway webhooks. Non-2xx responses make the gateway retry,
// so only unresolvable payloads return an error status.
func (h *Handlers) PaymentNotification(c *gin.Context) {
	var payload models.PaymentNotificationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Bookings.HandlePaymentNotification(c.Request.Context(), &payload); err != nil {
		slog.Error("Failed to process payment notification",
			"error", err,
			"reference", payload.Data.Reference)
		respondError(c, err, "Failed to process notification")
		return
	}

	c.Status(http.StatusOK)
}

// PaymentSuccess - GET /api/payments/success
// Landing for the gateway redirect after a completed payment. The
// booking state is reconciled by the webhook, not here.
func (h *Handlers) PaymentSuccess(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		reference = c.Query("trxref")
	}
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	slog.Info("Payment success redirect", "reference", reference)

	c.JSON(http.StatusOK, gin.H{"status": "success", "reference": reference})
}

// PaymentFail - GET /api/payments/fail
func (h *Handlers) PaymentFail(c *gin.Context) {
	reference := c.Query("reference")
	if reference == "" {
		reference = c.Query("trxref")
	}
	if reference == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reference is required"})
		return
	}

	slog.Info("Payment failure redirect", "reference", reference)

	c.JSON(http.StatusOK, gin.H{"status": "failed", "reference": reference})
}
