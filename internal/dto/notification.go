package dto

import (
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// CreateNotificationRequest defines the data needed to create a notification
// manually (system notifications are produced by the generator instead).
type CreateNotificationRequest struct {
	Type      string `json:"type" binding:"required,oneof=check-in check-out maintenance payment system"`
	Priority  string `json:"priority" binding:"required,oneof=high medium low"`
	Title     string `json:"title" binding:"required"`
	Message   string `json:"message" binding:"required"`
	RelatedID int64  `json:"relatedId"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	RelatedID int64     `json:"relatedId"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// UnreadCountResponse carries the number of unread notifications.
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

// ToNotificationResponse converts a domain.Notification to NotificationResponse DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		Title:     n.Title,
		Message:   n.Message,
		RelatedID: n.RelatedID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of domain.Notification to []NotificationResponse
func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		res[i] = ToNotificationResponse(&n)
	}
	return res
}
