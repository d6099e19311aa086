package mapping

import (
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	"github.com/hostelhub/hostelhub_backend/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		ID:        d.ID,
		Type:      string(d.Type),
		Priority:  string(d.Priority),
		Title:     d.Title,
		Message:   d.Message,
		RelatedID: d.RelatedID,
		IsRead:    d.IsRead,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		ID:        m.ID,
		Type:      domain.NotificationType(m.Type),
		Priority:  domain.NotificationPriority(m.Priority),
		Title:     m.Title,
		Message:   m.Message,
		RelatedID: m.RelatedID,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to a slice of domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
