package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
	"github.com/hostelhub/hostelhub_backend/internal/middleware"
)

// bookingHandler handles HTTP requests related to bookings.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// registerBookingRoutes registers routes related to bookings.
func registerBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.POST("", h.createBooking)
		bookings.GET("", h.listBookings)
		bookings.GET("/upcoming", h.getUpcomingBookings)
		bookings.GET("/today-check-ins", h.getTodayCheckIns)
		bookings.GET("/today-check-outs", h.getTodayCheckOuts)
		bookings.GET("/alerts", h.getNotificationAlerts)
		bookings.GET("/:id", h.getBookingByID)
		bookings.PUT("/:id", h.updateBooking)
		bookings.DELETE("/:id", h.deleteBooking)
	}
}

// createBooking godoc
// @Summary Create a new booking
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create booking"
// @Router /bookings [post]
func (h *bookingHandler) createBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Description Retrieves bookings, optionally narrowed by search text and status
// @Tags bookings
// @Produce  json
// @Param   search query string false "Substring match over booking id, room id and guest name"
// @Param   status query string false "Exact status filter; 'all' bypasses"
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list bookings"
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var filter dto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// getUpcomingBookings godoc
// @Summary List upcoming bookings
// @Description Retrieves confirmed bookings checking in today or later
// @Tags bookings
// @Produce  json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list upcoming bookings"
// @Router /bookings/upcoming [get]
func (h *bookingHandler) getUpcomingBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookings, err := h.bookingService.GetUpcomingBookings(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list upcoming bookings")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// getTodayCheckIns godoc
// @Summary List today's check-ins
// @Tags bookings
// @Produce  json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list today's check-ins"
// @Router /bookings/today-check-ins [get]
func (h *bookingHandler) getTodayCheckIns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookings, err := h.bookingService.GetTodayCheckIns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list today's check-ins")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// getTodayCheckOuts godoc
// @Summary List today's check-outs
// @Tags bookings
// @Produce  json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list today's check-outs"
// @Router /bookings/today-check-outs [get]
func (h *bookingHandler) getTodayCheckOuts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookings, err := h.bookingService.GetTodayCheckOuts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list today's check-outs")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// getNotificationAlerts godoc
// @Summary List booking alerts
// @Description Retrieves confirmed bookings checking in or out today or tomorrow
// @Tags bookings
// @Produce  json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} map[string]string "Failed to list booking alerts"
// @Router /bookings/alerts [get]
func (h *bookingHandler) getNotificationAlerts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookings, err := h.bookingService.GetNotificationAlerts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list booking alerts")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

// getBookingByID godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce  json
// @Param   id path int true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to retrieve booking"
// @Router /bookings/{id} [get]
func (h *bookingHandler) getBookingByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve booking")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// updateBooking godoc
// @Summary Update a booking
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   id path int true "Booking ID"
// @Param   booking body dto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to update booking"
// @Router /bookings/{id} [put]
func (h *bookingHandler) updateBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateBooking(c.Request.Context(), bookingID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// deleteBooking godoc
// @Summary Delete a booking
// @Tags bookings
// @Param   id path int true "Booking ID"
// @Success 204 "Booking deleted"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to delete booking"
// @Router /bookings/{id} [delete]
func (h *bookingHandler) deleteBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), bookingID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}
