package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Maintenance handlers

// CreateMaintenanceRequest - POST /api/maintenance
func (h *Handlers) CreateMaintenanceRequest(c *gin.Context) {
	var req models.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Maintenance.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create maintenance request", "error", err)
		respondError(c, err, "Failed to create maintenance request")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListMaintenanceRequests - GET /api/maintenance
func (h *Handlers) ListMaintenanceRequests(c *gin.Context) {
	var roomID *int64
	if v := c.Query("roomId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roomId"})
			return
		}
		roomID = &id
	}

	var resolved *bool
	if v := c.Query("resolved"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resolved"})
			return
		}
		resolved = &b
	}

	response, err := h.services.Maintenance.List(c.Request.Context(), roomID, resolved)
	if err != nil {
		slog.Error("Failed to list maintenance requests", "error", err)
		respondError(c, err, "Failed to list maintenance requests")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetMaintenanceRequest - GET /api/maintenance/:id
func (h *Handlers) GetMaintenanceRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Maintenance.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get maintenance request")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateMaintenanceRequest - PATCH /api/maintenance/:id
func (h *Handlers) UpdateMaintenanceRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Maintenance.Update(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update maintenance request", "error", err, "request_id", id)
		respondError(c, err, "Failed to update maintenance request")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteMaintenanceRequest - DELETE /api/maintenance/:id
func (h *Handlers) DeleteMaintenanceRequest(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Maintenance.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete maintenance request")
		return
	}

	c.Status(http.StatusNoContent)
}
