package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Complaints handlers

// CreateComplaint - POST /api/complaints
func (h *Handlers) CreateComplaint(c *gin.Context) {
	var req models.CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Complaints.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create complaint", "error", err)
		respondError(c, err, "Failed to create complaint")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListComplaints - GET /api/complaints
func (h *Handlers) ListComplaints(c *gin.Context) {
	status := c.Query("status")
	category := c.Query("category")

	response, err := h.services.Complaints.List(c.Request.Context(), status, category)
	if err != nil {
		slog.Error("Failed to list complaints", "error", err)
		respondError(c, err, "Failed to list complaints")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetComplaint - GET /api/complaints/:id
func (h *Handlers) GetComplaint(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Complaints.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get complaint")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateComplaint - PUT /api/complaints/:id
func (h *Handlers) UpdateComplaint(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Complaints.Update(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update complaint", "error", err, "complaint_id", id)
		respondError(c, err, "Failed to update complaint")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteComplaint - DELETE /api/complaints/:id
func (h *Handlers) DeleteComplaint(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Complaints.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete complaint")
		return
	}

	c.Status(http.StatusNoContent)
}
