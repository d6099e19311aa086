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

// residentHandler handles HTTP requests related to residents.
type residentHandler struct {
	residentService portssvc.ResidentSvcFacade
}

func newResidentHandler(rs portssvc.ResidentSvcFacade) *residentHandler {
	return &residentHandler{
		residentService: rs,
	}
}

// registerResidentRoutes registers routes related to residents.
func registerResidentRoutes(rg *gin.RouterGroup, residentService portssvc.ResidentSvcFacade) {
	h := newResidentHandler(residentService)

	residents := rg.Group("/residents")
	{
		residents.POST("", h.createResident)
		residents.GET("", h.getCurrentResidents)
		residents.GET("/all", h.listResidents)
		residents.GET("/room/:roomID", h.getResidentsByRoom)
		residents.GET("/:id", h.getResidentByID)
		residents.PUT("/:id", h.updateResident)
		residents.POST("/:id/checkout", h.checkOut)
		residents.PATCH("/:id/payment-status", h.updatePaymentStatus)
		residents.DELETE("/:id", h.deleteResident)
	}
}

// createResident godoc
// @Summary Register a new resident
// @Tags residents
// @Accept  json
// @Produce  json
// @Param   resident body dto.CreateResidentRequest true "Resident details"
// @Success 201 {object} dto.ResidentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create resident"
// @Router /residents [post]
func (h *residentHandler) createResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateResident", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resident, err := h.residentService.CreateResident(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create resident")
		return
	}

	c.JSON(http.StatusCreated, dto.ToResidentResponse(resident))
}

// getCurrentResidents godoc
// @Summary List current residents
// @Description Retrieves residents still staying today, optionally narrowed by search text and payment status
// @Tags residents
// @Produce  json
// @Param   search query string false "Substring match over name, email, phone and room id"
// @Param   status query string false "Exact payment-status filter; 'all' bypasses"
// @Success 200 {array} dto.ResidentResponse
// @Failure 500 {object} map[string]string "Failed to list residents"
// @Router /residents [get]
func (h *residentHandler) getCurrentResidents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	residents, err := h.residentService.GetCurrentResidents(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list residents")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponses(residents))
}

// listResidents godoc
// @Summary List all residents, past and present
// @Tags residents
// @Produce  json
// @Success 200 {array} dto.ResidentResponse
// @Failure 500 {object} map[string]string "Failed to list residents"
// @Router /residents/all [get]
func (h *residentHandler) listResidents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residents, err := h.residentService.ListResidents(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list residents")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponses(residents))
}

// getResidentsByRoom godoc
// @Summary List residents of a room
// @Tags residents
// @Produce  json
// @Param   roomID path int true "Room ID"
// @Success 200 {array} dto.ResidentResponse
// @Failure 500 {object} map[string]string "Failed to list residents"
// @Router /residents/room/{roomID} [get]
func (h *residentHandler) getResidentsByRoom(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	roomID, ok := parseIDParam(c, "roomID")
	if !ok {
		return
	}

	residents, err := h.residentService.GetResidentsByRoom(c.Request.Context(), roomID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list residents")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponses(residents))
}

// getResidentByID godoc
// @Summary Get a resident by ID
// @Tags residents
// @Produce  json
// @Param   id path int true "Resident ID"
// @Success 200 {object} dto.ResidentResponse
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to retrieve resident"
// @Router /residents/{id} [get]
func (h *residentHandler) getResidentByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resident, err := h.residentService.GetResidentByID(c.Request.Context(), residentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve resident")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// updateResident godoc
// @Summary Update a resident
// @Tags residents
// @Accept  json
// @Produce  json
// @Param   id path int true "Resident ID"
// @Param   resident body dto.UpdateResidentRequest true "Fields to update"
// @Success 200 {object} dto.ResidentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to update resident"
// @Router /residents/{id} [put]
func (h *residentHandler) updateResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateResident", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resident, err := h.residentService.UpdateResident(c.Request.Context(), residentID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update resident")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// checkOut godoc
// @Summary Check out a resident
// @Description Sets the resident's check-out date to today, ending their stay
// @Tags residents
// @Produce  json
// @Param   id path int true "Resident ID"
// @Success 200 {object} dto.ResidentResponse
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to check out resident"
// @Router /residents/{id}/checkout [post]
func (h *residentHandler) checkOut(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resident, err := h.residentService.CheckOut(c.Request.Context(), residentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to check out resident")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// updatePaymentStatus godoc
// @Summary Update a resident's payment status
// @Tags residents
// @Accept  json
// @Produce  json
// @Param   id path int true "Resident ID"
// @Param   status body dto.UpdatePaymentStatusRequest true "New payment status"
// @Success 200 {object} dto.ResidentResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to update payment status"
// @Router /residents/{id}/payment-status [patch]
func (h *residentHandler) updatePaymentStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePaymentStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resident, err := h.residentService.UpdatePaymentStatus(c.Request.Context(), residentID, domain.PaymentStatus(req.Status))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update payment status")
		return
	}

	c.JSON(http.StatusOK, dto.ToResidentResponse(resident))
}

// deleteResident godoc
// @Summary Delete a resident
// @Tags residents
// @Param   id path int true "Resident ID"
// @Success 204 "Resident deleted"
// @Failure 404 {object} map[string]string "Resident not found"
// @Failure 500 {object} map[string]string "Failed to delete resident"
// @Router /residents/{id} [delete]
func (h *residentHandler) deleteResident(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	residentID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.residentService.DeleteResident(c.Request.Context(), residentID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete resident")
		return
	}

	c.Status(http.StatusNoContent)
}
