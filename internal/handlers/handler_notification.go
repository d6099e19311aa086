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

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{
		notificationService: ns,
	}
}

// registerNotificationRoutes registers routes related to notifications.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("", h.createNotification)
		notifications.GET("/unread-count", h.getUnreadCount)
		notifications.GET("/type/:type", h.getByType)
		notifications.PATCH("/read-all", h.markAllAsRead)
		notifications.GET("/:id", h.getNotificationByID)
		notifications.PATCH("/:id/read", h.markAsRead)
		notifications.DELETE("/:id", h.deleteNotification)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Generates any due system notifications, then returns the full list
// @Tags notifications
// @Produce  json
// @Success 200 {array} dto.NotificationResponse
// @Failure 500 {object} map[string]string "Failed to list notifications"
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notifications, err := h.notificationService.GenerateSystemNotifications(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// createNotification godoc
// @Summary Create a notification
// @Description Persists a manually authored notification
// @Tags notifications
// @Accept  json
// @Produce  json
// @Param   notification body dto.CreateNotificationRequest true "Notification details"
// @Success 201 {object} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create notification"
// @Router /notifications [post]
func (h *notificationHandler) createNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateNotification", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	notification, err := h.notificationService.CreateNotification(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create notification")
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotificationResponse(notification))
}

// getUnreadCount godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce  json
// @Success 200 {object} dto.UnreadCountResponse
// @Failure 500 {object} map[string]string "Failed to count notifications"
// @Router /notifications/unread-count [get]
func (h *notificationHandler) getUnreadCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	count, err := h.notificationService.GetUnreadCount(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to count notifications")
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{UnreadCount: count})
}

// getByType godoc
// @Summary List notifications of one type
// @Tags notifications
// @Produce  json
// @Param   type path string true "Notification type"
// @Success 200 {array} dto.NotificationResponse
// @Failure 400 {object} map[string]string "Unknown type"
// @Failure 500 {object} map[string]string "Failed to list notifications"
// @Router /notifications/type/{type} [get]
func (h *notificationHandler) getByType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationType := domain.NotificationType(c.Param("type"))
	if !domain.ValidNotificationType(notificationType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown notification type"})
		return
	}

	notifications, err := h.notificationService.GetByType(c.Request.Context(), notificationType)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponses(notifications))
}

// getNotificationByID godoc
// @Summary Get a notification by ID
// @Tags notifications
// @Produce  json
// @Param   id path int true "Notification ID"
// @Success 200 {object} dto.NotificationResponse
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to retrieve notification"
// @Router /notifications/{id} [get]
func (h *notificationHandler) getNotificationByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.GetNotificationByID(c.Request.Context(), notificationID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve notification")
		return
	}

	c.JSON(http.StatusOK, dto.ToNotificationResponse(notification))
}

// markAsRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Param   id path int true "Notification ID"
// @Success 204 "Marked read"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to mark notification read"
// @Router /notifications/{id}/read [patch]
func (h *notificationHandler) markAsRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.MarkAsRead(c.Request.Context(), notificationID); err != nil {
		respondServiceError(c, logger, err, "Failed to mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}

// markAllAsRead godoc
// @Summary Mark every notification read
// @Tags notifications
// @Success 204 "All marked read"
// @Failure 500 {object} map[string]string "Failed to mark notifications read"
// @Router /notifications/read-all [patch]
func (h *notificationHandler) markAllAsRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.notificationService.MarkAllAsRead(c.Request.Context()); err != nil {
		respondServiceError(c, logger, err, "Failed to mark notifications read")
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteNotification godoc
// @Summary Delete a notification
// @Tags notifications
// @Param   id path int true "Notification ID"
// @Success 204 "Notification deleted"
// @Failure 404 {object} map[string]string "Notification not found"
// @Failure 500 {object} map[string]string "Failed to delete notification"
// @Router /notifications/{id} [delete]
func (h *notificationHandler) deleteNotification(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), notificationID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete notification")
		return
	}

	c.Status(http.StatusNoContent)
}
