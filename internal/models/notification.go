package models

import "time"

// Notification represents a notification row in the notifications table.
type Notification struct {
	ID        int64     `db:"id"`
	Type      string    `db:"type"`
	Priority  string    `db:"priority"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	RelatedID int64     `db:"related_id"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}
