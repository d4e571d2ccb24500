package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Inventory handlers

// CreateInventoryItem - POST /api/inventory
func (h *Handlers) CreateInventoryItem(c *gin.Context) {
	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Inventory.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create inventory item", "error", err)
		respondError(c, err, "Failed to create inventory item")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListInventory - GET /api/inventory
func (h *Handlers) ListInventory(c *gin.Context) {
	category := c.Query("category")
	belowReorder, _ := strconv.ParseBool(c.DefaultQuery("belowReorder", "false"))

	response, err := h.services.Inventory.List(c.Request.Context(), category, belowReorder)
	if err != nil {
		slog.Error("Failed to list inventory", "error", err)
		respondError(c, err, "Failed to list inventory")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetInventoryItem - GET /api/inventory/:id
func (h *Handlers) GetInventoryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Inventory.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get inventory item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateInventoryItem - PUT /api/inventory/:id
func (h *Handlers) UpdateInventoryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CreateInventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Inventory.Update(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update inventory item", "error", err, "item_id", id)
		respondError(c, err, "Failed to update inventory item")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteInventoryItem - DELETE /api/inventory/:id
func (h *Handlers) DeleteInventoryItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Inventory.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete inventory item")
		return
	}

	c.Status(http.StatusNoContent)
}
