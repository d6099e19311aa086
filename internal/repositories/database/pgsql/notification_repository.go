package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hostelhub/hostelhub_backend/internal/apperrors"
	"github.com/hostelhub/hostelhub_backend/internal/core/domain"
	portsrepo "github.com/hostelhub/hostelhub_backend/internal/core/ports/repositories"
	"github.com/hostelhub/hostelhub_backend/internal/models"
	"github.com/hostelhub/hostelhub_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notification data.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryWithTx {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.NotificationRepositoryWithTx = (*PgxNotificationRepository)(nil)

const notificationColumns = `id, type, priority, title, message, related_id, is_read, created_at`

func scanNotification(row pgx.CollectableRow) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.Type,
		&n.Priority,
		&n.Title,
		&n.Message,
		&n.RelatedID,
		&n.IsRead,
		&n.CreatedAt,
	)
	return n, err
}

// SaveNotification inserts a new notification and returns the generated ID.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) (int64, error) {
	modelNotif := mapping.ToModelNotification(notification)

	query := `
		INSERT INTO notifications (type, priority, title, message, related_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`

	var id int64
	err := r.Pool.QueryRow(ctx, query,
		modelNotif.Type,
		modelNotif.Priority,
		modelNotif.Title,
		modelNotif.Message,
		modelNotif.RelatedID,
		modelNotif.IsRead,
		modelNotif.CreatedAt,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("failed to save notification %q: %w", modelNotif.Title, err)
	}
	return id, nil
}

// FindNotificationByID retrieves a specific notification by its ID.
func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID int64) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1;`

	rows, err := r.Pool.Query(ctx, query, notificationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notification %d: %w", notificationID, err)
	}

	modelNotif, err := pgx.CollectOneRow(rows, scanNotification)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification by id %d: %w", notificationID, err)
	}

	domainNotif := mapping.ToDomainNotification(modelNotif)
	return &domainNotif, nil
}

// ListNotifications retrieves all notifications in insertion order.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	modelNotifs, err := pgx.CollectRows(rows, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications: %w", err)
	}

	return mapping.ToDomainNotificationSlice(modelNotifs), nil
}

// ListNotificationsByType retrieves notifications of one type in insertion order.
func (r *PgxNotificationRepository) ListNotificationsByType(ctx context.Context, notificationType domain.NotificationType) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE type = $1 ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query, string(notificationType))
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications of type %s: %w", notificationType, err)
	}
	defer rows.Close()

	modelNotifs, err := pgx.CollectRows(rows, scanNotification)
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications of type %s: %w", notificationType, err)
	}

	return mapping.ToDomainNotificationSlice(modelNotifs), nil
}

// CountUnreadNotifications returns the number of unread notifications.
func (r *PgxNotificationRepository) CountUnreadNotifications(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE is_read = FALSE;`

	var count int
	if err := r.Pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkNotificationRead sets a notification's read flag.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID int64, readAt time.Time) error {
	query := `UPDATE notifications SET is_read = TRUE, read_at = $2 WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, notificationID, readAt)
	if err != nil {
		return fmt.Errorf("failed to mark notification %d read: %w", notificationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllNotificationsRead sets the read flag on every unread notification.
func (r *PgxNotificationRepository) MarkAllNotificationsRead(ctx context.Context, readAt time.Time) error {
	query := `UPDATE notifications SET is_read = TRUE, read_at = $1 WHERE is_read = FALSE;`

	if _, err := r.Pool.Exec(ctx, query, readAt); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

// DeleteNotification removes a notification.
func (r *PgxNotificationRepository) DeleteNotification(ctx context.Context, notificationID int64) error {
	query := `DELETE FROM notifications WHERE id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, notificationID)
	if err != nil {
		return fmt.Errorf("failed to delete notification %d: %w", notificationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
