package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fasttrackLogistics/internal/ids"
	"fasttrackLogistics/models"
)

// NotificationRepository is the SQLite repository for Notification entities.
type NotificationRepository struct {
	db *sql.DB
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

const notificationColumns = `notification_id, recipient_type, recipient_id, message, timestamp, status, is_urgent`

// Insert logs a new notification. A NOT- id is generated when empty, the
// status defaults to 'SENT' and the timestamp to now.
func (r *NotificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	if n == nil {
		return errors.New("notification is nil")
	}
	if n.NotificationID == "" {
		n.NotificationID = ids.NewNotificationID()
	}
	if n.Status == "" {
		n.Status = models.NotificationStatusSent
	}
	if n.Timestamp == "" {
		n.Timestamp = time.Now().Format("2006-01-02 15:04:05")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO notifications
(notification_id, recipient_type, recipient_id, message, timestamp, status, is_urgent)
VALUES (?,?,?,?,?,?,?)`,
		n.NotificationID, string(n.RecipientType), n.RecipientID, n.Message, n.Timestamp, n.Status, n.IsUrgent)
	return err
}

// FindAll returns all notifications, newest first.
func (r *NotificationRepository) FindAll(ctx context.Context) ([]models.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications ORDER BY timestamp DESC, notification_id DESC`)
}

// FindByRecipientType returns notifications for one recipient class, newest first.
func (r *NotificationRepository) FindByRecipientType(ctx context.Context, recipientType models.RecipientType) ([]models.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE recipient_type = ? ORDER BY timestamp DESC, notification_id DESC`, string(recipientType))
}

// FindByUrgency returns notifications filtered by the urgent flag, newest first.
func (r *NotificationRepository) FindByUrgency(ctx context.Context, urgent bool) ([]models.Notification, error) {
	return r.list(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE is_urgent = ? ORDER BY timestamp DESC, notification_id DESC`, urgent)
}

func (r *NotificationRepository) list(ctx context.Context, query string, args ...any) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		var recipientType string
		if err := rows.Scan(&n.NotificationID, &recipientType, &n.RecipientID, &n.Message, &n.Timestamp, &n.Status, &n.IsUrgent); err != nil {
			return nil, err
		}
		n.RecipientType = models.RecipientType(recipientType)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
