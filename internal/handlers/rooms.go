package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/models"
)

// Rooms handlers

// CreateRoom - POST /api/room
func (h *Handlers) CreateRoom(c *gin.Context) {
	var req models.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Rooms.Create(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create room", "error", err)
		respondError(c, err, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListRooms - GET /api/room
func (h *Handlers) ListRooms(c *gin.Context) {
	var floor *int
	if v := c.Query("floor"); v != "" {
		f, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid floor"})
			return
		}
		floor = &f
	}

	var roomTypeID *int64
	if v := c.Query("roomTypeId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid roomTypeId"})
			return
		}
		roomTypeID = &id
	}

	response, err := h.services.Rooms.List(c.Request.Context(), floor, roomTypeID)
	if err != nil {
		slog.Error("Failed to list rooms", "error", err)
		respondError(c, err, "Failed to list rooms")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RoomBoard - GET /api/room/board
// Serves the cached housekeeping board as raw JSON
func (h *Handlers) RoomBoard(c *gin.Context) {
	payload, err := h.services.Rooms.Board(c.Request.Context())
	if err != nil {
		slog.Error("Failed to load room board", "error", err)
		respondError(c, err, "Failed to load room board")
		return
	}

	c.Data(http.StatusOK, "application/json", payload)
}

// GetRoom - GET /api/room/:id
func (h *Handlers) GetRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Rooms.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get room")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateRoomStatus - PATCH /api/room/:id/status
func (h *Handlers) UpdateRoomStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Rooms.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update room status", "error", err, "room_id", id)
		respondError(c, err, "Failed to update room status")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteRoom - DELETE /api/room/:id
func (h *Handlers) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Rooms.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}

// Room type handlers

// CreateRoomType - POST /api/roomType
func (h *Handlers) CreateRoomType(c *gin.Context) {
	var req models.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Rooms.CreateRoomType(c.Request.Context(), &req)
	if err != nil {
		slog.Error("Failed to create room type", "error", err)
		respondError(c, err, "Failed to create room type")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListRoomTypes - GET /api/roomType
func (h *Handlers) ListRoomTypes(c *gin.Context) {
	response, err := h.services.Rooms.ListRoomTypes(c.Request.Context())
	if err != nil {
		slog.Error("Failed to list room types", "error", err)
		respondError(c, err, "Failed to list room types")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRoomType - GET /api/roomType/:id
func (h *Handlers) GetRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	response, err := h.services.Rooms.GetRoomType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get room type")
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdateRoomType - PUT /api/roomType/:id
func (h *Handlers) UpdateRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.services.Rooms.UpdateRoomType(c.Request.Context(), id, &req)
	if err != nil {
		slog.Error("Failed to update room type", "error", err, "room_type_id", id)
		respondError(c, err, "Failed to update room type")
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeleteRoomType - DELETE /api/roomType/:id
func (h *Handlers) DeleteRoomType(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Rooms.DeleteRoomType(c.Request.Context(), id); err != nil {
		respondError(c, err, "Failed to delete room type")
		return
	}

	c.Status(http.StatusNoContent)
}
