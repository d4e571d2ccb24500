package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Users handlers

// CreateUser - POST /api/user
func (h *Handlers) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Users.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create user", "error", err)
		respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListUsers - GET /api/user
func (h *Handlers) ListUsers(c *gin.Context) {
	response, err := h.services.Users.List(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list users", "error", err)
		respondError(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetUser - GET /api/user/:id
func (h *Handlers) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get user")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateUser - PUT /api/user/:id
func (h *Handlers) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Users.Update(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update user", "error", err, "user_id", id)
		respondError(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeactivateUser - DELETE /api/user/:id
func (h *Handlers) DeactivateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Users.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to deactivate user")
		return
	}

	c.Status(http.StatusNoContent)
}
