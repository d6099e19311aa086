package domain

import "time"

// NotificationType identifies what triggered a notification.
type NotificationType string

const (
	NotificationCheckIn     NotificationType = "check-in"
	NotificationCheckOut    NotificationType = "check-out"
	NotificationMaintenance NotificationType = "maintenance"
	NotificationPayment     NotificationType = "payment"
	NotificationSystem      NotificationType = "system"
)

// ValidNotificationType reports whether t is a known notification type.
func ValidNotificationType(t NotificationType) bool {
	switch t {
	case NotificationCheckIn, NotificationCheckOut, NotificationMaintenance, NotificationPayment, NotificationSystem:
		return true
	}
	return false
}

// NotificationPriority orders notifications by urgency.
type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// Notification is an actionable alert shown on the dashboard.
// RelatedID is a weak reference to the triggering booking or room; it is
// used for lookup only and implies no ownership. At most one notification
// exists per (Type, RelatedID) pair.
type Notification struct {
	ID        int64                `json:"id"`
	Type      NotificationType     `json:"type"`
	Priority  NotificationPriority `json:"priority"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	RelatedID int64                `json:"relatedId"`
	IsRead    bool                 `json:"isRead"`
	CreatedAt time.Time            `json:"createdAt"`
}
