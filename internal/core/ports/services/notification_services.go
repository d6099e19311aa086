package services

import (
	"context"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
)

// NotificationReaderSvc defines read operations for notification data
type NotificationReaderSvc interface {
	// GetNotificationByID retrieves a specific notification by its ID.
	GetNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error)

	// ListNotifications retrieves all notifications in insertion order.
	ListNotifications(ctx context.Context) ([]domain.Notification, error)

	// GetByType retrieves notifications of one type.
	GetByType(ctx context.Context, notificationType domain.NotificationType) ([]domain.Notification, error)

	// GetUnreadCount returns the number of unread notifications.
	GetUnreadCount(ctx context.Context) (int, error)
}

// NotificationWriterSvc defines write operations for notification data
type NotificationWriterSvc interface {
	// CreateNotification persists a manually created notification.
	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error)

	// MarkAsRead sets a notification's read flag.
	MarkAsRead(ctx context.Context, notificationID int64) error

	// MarkAllAsRead sets the read flag on every notification.
	MarkAllAsRead(ctx context.Context) error

	// DeleteNotification removes a notification.
	DeleteNotification(ctx context.Context, notificationID int64) error
}

// NotificationGeneratorSvc derives system notifications from booking and
// room conditions.
type NotificationGeneratorSvc interface {
	// GenerateSystemNotifications materializes new notifications for same-day
	// confirmed check-ins and rooms under maintenance or cleaning,
	// deduplicated by (type, relatedId), and returns the full updated list.
	// An internal failure degrades to returning the previously existing list.
	GenerateSystemNotifications(ctx context.Context) ([]domain.Notification, error)
}

// NotificationSvcFacade combines all notification-related service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
	NotificationGeneratorSvc
}
