// internal/domain/reminder.go
package domain

import "time"

// Reminder is a user-scheduled note (e.g. "pay rent"). Reminders are plain
// CRUD records; they do not participate in balance or budget bookkeeping.
type Reminder struct {
	ID        int64     `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	UserID    int64     `db:"user_id" json:"user_id"`       // Foreign key to User
	Title     string    `db:"title" json:"title"`           // Short reminder title
	Note      *string   `db:"note" json:"note"`             // Optional longer note
	RemindAt  time.Time `db:"remind_at" json:"remind_at"`   // When the reminder is due, DATE in DB
	CreatedAt time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewReminder creates a new Reminder instance.
func NewReminder(userID int64, title string, note *string, remindAt time.Time) *Reminder {
	now := time.Now().UTC()
	return &Reminder{
		UserID:    userID,
		Title:     title,
		Note:      note,
		RemindAt:  remindAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
