// internal/repository/reminder_repo.go
package repository

import (
	"context"

	"fintrack-ledger/internal/domain"
)

// ReminderRepository defines the interface for reminder data operations.
type ReminderRepository interface {
	// CreateReminder adds a new reminder.
	CreateReminder(ctx context.Context, q DBExecutor, reminder *domain.Reminder) error
	// GetReminderByID retrieves a reminder scoped to its owner.
	GetReminderByID(ctx context.Context, q DBExecutor, id, userID int64) (*domain.Reminder, error)
	// ListReminders retrieves all reminders of a user ordered by due date.
	ListReminders(ctx context.Context, q DBExecutor, userID int64) ([]domain.Reminder, error)
	// UpdateReminder persists changes to a reminder.
	UpdateReminder(ctx context.Context, q DBExecutor, reminder *domain.Reminder) error
	// DeleteReminder removes a reminder scoped to its owner.
	DeleteReminder(ctx context.Context, q DBExecutor, id, userID int64) error
}
