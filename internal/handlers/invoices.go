package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Invoices handlers

// CreateInvoice - POST /api/invoice
func (h *Handlers) CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Invoices.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create invoice", "error", err)
		respondError(c, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListInvoices - GET /api/invoice
func (h *Handlers) ListInvoices(c *gin.Context) {
	status := c.Query("status")

	var bookingID *int64
	if v := c.Query("bookingId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bookingId"})
			return
		}
		bookingID = &id
	}

	response, err := h.services.Invoices.List(c.Request.Context(), status, bookingID)
	if err != nil {
		slog.Error("Failed to list invoices", "error", err)
		respondError(c, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetInvoice - GET /api/invoice/:id
func (h *Handlers) GetInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Invoices.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get invoice")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateInvoiceStatus - PATCH /api/invoice/:id/status
func (h *Handlers) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Invoices.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update invoice status", "error", err, "invoice_id", id)
		respondError(c, err, "Failed to update invoice status")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteInvoice - DELETE /api/invoice/:id
func (h *Handlers) DeleteInvoice(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Invoices.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete invoice")
		return
	}

	c.Status(http.StatusNoContent)
}
