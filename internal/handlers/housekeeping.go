package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Housekeeping handlers

// CreateTask - POST /api/task
func (h *Handlers) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Housekeeping.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create task", "error", err)
		respondError(c, err, "Failed to create task")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListTasks - GET /api/task
func (h *Handlers) ListTasks(c *gin.Context) {
	status := c.Query("status")

	var assigneeID *int64
	if v := c.Query("assigneeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assigneeId"})
			return
		}
		assigneeID = &id
	}

	response, err := h.services.Housekeeping.List(c.Request.Context(), status, assigneeID)
	if err != nil {
		slog.Error("Failed to list tasks", "error", err)
		respondError(c, err, "Failed to list tasks")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTask - GET /api/task/:id
func (h *Handlers) GetTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Housekeeping.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get task")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateTask - PATCH /api/task/:id
func (h *Handlers) UpdateTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Housekeeping.Update(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update task", "error", err, "task_id", id)
		respondError(c, err, "Failed to update task")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteTask - DELETE /api/task/:id
func (h *Handlers) DeleteTask(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Housekeeping.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete task")
		return
	}

	c.Status(http.StatusNoContent)
}

// ReportTaskIssue - POST /api/task/:id/issues
func (h *Handlers) ReportTaskIssue(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CreateTaskIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Housekeeping.ReportIssue(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to report task issue", "error", err, "task_id", id)
		respondError(c, err, "Failed to report issue")
		return
	}

	c.JSON(http.StatusCreated, response)
}
