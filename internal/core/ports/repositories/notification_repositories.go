package repositories

import (
	"context"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
)

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	// FindNotificationByID retrieves a specific notification by its ID.
	FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error)

	// ListNotifications retrieves all notifications in insertion order.
	ListNotifications(ctx context.Context) ([]domain.Notification, error)

	// ListNotificationsByType retrieves notifications of one type.
	ListNotificationsByType(ctx context.Context, notificationType domain.NotificationType) ([]domain.Notification, error)

	// CountUnreadNotifications returns the number of unread notifications.
	CountUnreadNotifications(ctx context.Context) (int, error)
}

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	// SaveNotification persists a new notification and returns the generated ID.
	SaveNotification(ctx context.Context, notification domain.Notification) (int64, error)

	// MarkNotificationRead sets a notification's read flag.
	MarkNotificationRead(ctx context.Context, notificationID int64, readAt time.Time) error

	// MarkAllNotificationsRead sets the read flag on every notification.
	MarkAllNotificationsRead(ctx context.Context, readAt time.Time) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, notificationID int64) error
}

// NotificationRepositoryFacade combines all notification-related repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}

// NotificationRepositoryWithTx extends NotificationRepositoryFacade with transaction capabilities
type NotificationRepositoryWithTx interface {
	NotificationRepositoryFacade
	TransactionManager
}
