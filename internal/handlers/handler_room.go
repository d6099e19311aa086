package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/middleware"
)

// roomHandler handles HTTP requests related to rooms.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{
		roomService: rs,
	}
}

// registerRoomRoutes registers routes related to rooms.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	rooms := rg.Group("/rooms")
	{
		rooms.POST("", h.createRoom)
		rooms.GET("", h.listRooms)
		rooms.GET("/available", h.getAvailableRooms)
		rooms.GET("/maintenance-alerts", h.getMaintenanceAlerts)
		rooms.GET("/:id", h.getRoomByID)
		rooms.PUT("/:id", h.updateRoom)
		rooms.PATCH("/:id/status", h.updateRoomStatus)
		rooms.DELETE("/:id", h.deleteRoom)
	}
}

// createRoom godoc
// @Summary Create a new room
// @Description Adds a new room to the hostel inventory, starting available and empty
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Room number already exists"
// @Failure 500 {object} map[string]string "Failed to create room"
// @Router /rooms [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create room")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// listRooms godoc
// @Summary List rooms
// @Description Retrieves rooms, optionally narrowed by search text and status
// @Tags rooms
// @Produce  json
// @Param   search query string false "Substring match over room number and type"
// @Param   status query string false "Exact status filter; 'all' bypasses"
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} map[string]string "Failed to list rooms"
// @Router /rooms [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list rooms")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

// getAvailableRooms godoc
// @Summary List available rooms
// @Tags rooms
// @Produce  json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} map[string]string "Failed to list available rooms"
// @Router /rooms/available [get]
func (h *roomHandler) getAvailableRooms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rooms, err := h.roomService.GetAvailableRooms(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list available rooms")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

// getMaintenanceAlerts godoc
// @Summary List rooms needing attention
// @Description Retrieves rooms under maintenance or cleaning
// @Tags rooms
// @Produce  json
// @Success 200 {array} dto.RoomResponse
// @Failure 500 {object} map[string]string "Failed to list maintenance alerts"
// @Router /rooms/maintenance-alerts [get]
func (h *roomHandler) getMaintenanceAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rooms, err := h.roomService.GetMaintenanceAlerts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list maintenance alerts")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponses(rooms))
}

// getRoomByID godoc
// @Summary Get a room by ID
// @Tags rooms
// @Produce  json
// @Param   id path int true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Failed to retrieve room"
// @Router /rooms/{id} [get]
func (h *roomHandler) getRoomByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	room, err := h.roomService.GetRoomByID(c.Request.Context(), roomID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve room")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// updateRoom godoc
// @Summary Update a room
// @Description Applies the provided fields to an existing room
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path int true "Room ID"
// @Param   room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Failed to update room"
// @Router /rooms/{id} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRoom", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update room")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// updateRoomStatus godoc
// @Summary Update a room's status
// @Tags rooms
// @Accept  json
// @Produce  json
// @Param   id path int true "Room ID"
// @Param   status body dto.UpdateRoomStatusRequest true "New status"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Failed to update room status"
// @Router /rooms/{id}/status [patch]
func (h *roomHandler) updateRoomStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRoomStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoomStatus(c.Request.Context(), roomID, domain.RoomStatus(req.Status))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update room status")
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// deleteRoom godoc
// @Summary Delete a room
// @Tags rooms
// @Param   id path int true "Room ID"
// @Success 204 "Room deleted"
// @Failure 404 {object} map[string]string "Room not found"
// @Failure 500 {object} map[string]string "Failed to delete room"
// @Router /rooms/{id} [delete]
func (h *roomHandler) deleteRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), roomID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete room")
		return
	}

	c.Status(http.StatusNoContent)
}
