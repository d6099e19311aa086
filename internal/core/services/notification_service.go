package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	portssvc "github.com/hostelhub/hostelhub_backend/internal/core/ports/services"
	"github.com/hostelhub/hostelhub_backend/internal/dto"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	bookingRepo      portsrepo.BookingRepositoryFacade
	roomRepo         portsrepo.RoomRepositoryFacade
}

// NewNotificationService creates a new notification service.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, bookingRepo portsrepo.BookingRepositoryFacade, roomRepo portsrepo.RoomRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// GenerateSystemNotifications materializes notifications for same-day
// confirmed check-ins and rooms under maintenance or cleaning. At most one
// notification exists per (type, relatedId) pair; repeated runs on unchanged
// data add nothing. A failure while deriving or persisting degrades to
// returning the list as it stood, never an error, so the dashboard still
// renders.
func (s *notificationService) GenerateSystemNotifications(ctx context.Context) ([]domain.Notification, error) {
	existing, err := s.notificationRepo.ListNotifications(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load existing notifications")
		return nil, err
	}

	seen := make(map[string]struct{}, len(existing))
	for _, n := range existing {
		seen[dedupKey(n.Type, n.RelatedID)] = struct{}{}
	}

	candidates, err := s.deriveCandidates(ctx)
	if err != nil {
		s.LogError(ctx, err, "notification generation degraded, returning existing list")
		return existing, nil
	}

	created := 0
	for _, candidate := range candidates {
		if _, dup := seen[dedupKey(candidate.Type, candidate.RelatedID)]; dup {
			continue
		}
		if _, err := s.notificationRepo.SaveNotification(ctx, candidate); err != nil {
			s.LogError(ctx, err, "failed to persist generated notification", "type", candidate.Type, "relatedID", candidate.RelatedID)
			return existing, nil
		}
		seen[dedupKey(candidate.Type, candidate.RelatedID)] = struct{}{}
		created++
	}

	if created > 0 {
		s.LogInfo(ctx, "system notifications generated", "count", created)
	}

	updated, err := s.notificationRepo.ListNotifications(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to reload notifications after generation")
		return existing, nil
	}
	return updated, nil
}

func dedupKey(t domain.NotificationType, relatedID int64) string {
	return fmt.Sprintf("%s:%d", t, relatedID)
}

// deriveCandidates builds the notifications the current booking and room
// state calls for, before deduplication.
func (s *notificationService) deriveCandidates(ctx context.Context) ([]domain.Notification, error) {
	today := domain.Today()
	now := time.Now()

	checkIns, err := s.bookingRepo.ListCheckInsOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's check-ins: %w", err)
	}

	attention, err := s.roomRepo.ListMaintenanceAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms needing attention: %w", err)
	}

	candidates := make([]domain.Notification, 0, len(checkIns)+len(attention))
	for _, booking := range checkIns {
		candidates = append(candidates, domain.Notification{
			Type:      domain.NotificationCheckIn,
			Priority:  domain.PriorityHigh,
			Title:     "Check-in Today",
			Message:   fmt.Sprintf("%s checks in to room %d today", booking.GuestName, booking.RoomID),
			RelatedID: booking.ID,
			CreatedAt: now,
		})
	}
	for _, room := range attention {
		candidates = append(candidates, domain.Notification{
			Type:      domain.NotificationMaintenance,
			Priority:  domain.PriorityMedium,
			Title:     "Room Needs Attention",
			Message:   fmt.Sprintf("Room %s is under %s", room.RoomNumber, room.Status),
			RelatedID: room.ID,
			CreatedAt: now,
		})
	}
	return candidates, nil
}

// CreateNotification persists a manually created notification.
func (s *notificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest) (*domain.Notification, error) {
	notification := domain.Notification{
		Type:      domain.NotificationType(req.Type),
		Priority:  domain.NotificationPriority(req.Priority),
		Title:     req.Title,
		Message:   req.Message,
		RelatedID: req.RelatedID,
		CreatedAt: time.Now(),
	}

	id, err := s.notificationRepo.SaveNotification(ctx, notification)
	if err != nil {
		s.LogError(ctx, err, "failed to create notification", "title", req.Title)
		return nil, err
	}
	notification.ID = id

	s.LogInfo(ctx, "notification created", "notificationID", id)
	return &notification, nil
}

// GetNotificationByID retrieves a specific notification by its ID.
func (s *notificationService) GetNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	return s.notificationRepo.FindNotificationByID(ctx, notificationID)
}

// ListNotifications retrieves all notifications in insertion order.
func (s *notificationService) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	return s.notificationRepo.ListNotifications(ctx)
}

// GetByType retrieves notifications of one type.
func (s *notificationService) GetByType(ctx context.Context, notificationType domain.NotificationType) ([]domain.Notification, error) {
	return s.notificationRepo.ListNotificationsByType(ctx, notificationType)
}

// GetUnreadCount returns the number of unread notifications.
func (s *notificationService) GetUnreadCount(ctx context.Context) (int, error) {
	return s.notificationRepo.CountUnreadNotifications(ctx)
}

// MarkAsRead sets a notification's read flag.
func (s *notificationService) MarkAsRead(ctx context.Context, notificationID int64) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to mark notification read", "notificationID", notificationID)
		return err
	}
	return nil
}

// MarkAllAsRead sets the read flag on every notification.
func (s *notificationService) MarkAllAsRead(ctx context.Context) error {
	if err := s.notificationRepo.MarkAllNotificationsRead(ctx, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to mark all notifications read")
		return err
	}
	return nil
}

// DeleteNotification removes a notification.
func (s *notificationService) DeleteNotification(ctx context.Context, notificationID int64) error {
	if err := s.notificationRepo.DeleteNotification(ctx, notificationID); err != nil {
		s.LogError(ctx, err, "failed to delete notification", "notificationID", notificationID)
		return err
	}
	return nil
}
