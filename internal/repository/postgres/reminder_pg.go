// internal/repository/postgres/reminder_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/repository"
	"fintrack-ledger/internal/util"

	"github.com/jmoiron/sqlx"
)

// ReminderRepository implements repository.ReminderRepository for PostgreSQL.
type ReminderRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewReminderRepository creates a new ReminderRepository.
func NewReminderRepository(db *sqlx.DB) repository.ReminderRepository {
	return &ReminderRepository{}
}

// CreateReminder inserts a new reminder using the provided DBExecutor.
func (r *ReminderRepository) CreateReminder(ctx context.Context, q repository.DBExecutor, reminder *domain.Reminder) error {
	query := `INSERT INTO reminders (user_id, title, note, remind_at, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		reminder.UserID, reminder.Title, reminder.Note, reminder.RemindAt,
		reminder.CreatedAt, reminder.UpdatedAt,
	).Scan(&reminder.ID)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// GetReminderByID retrieves a reminder scoped to its owner.
func (r *ReminderRepository) GetReminderByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Reminder, error) {
	var reminder domain.Reminder
	query := `SELECT id, user_id, title, note, remind_at, created_at, updated_at
              FROM reminders WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &reminder, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reminder %d: %w", id, err)
	}
	return &reminder, nil
}

// ListReminders retrieves all reminders of a user ordered by due date.
func (r *ReminderRepository) ListReminders(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Reminder, error) {
	reminders := []domain.Reminder{}
	query := `SELECT id, user_id, title, note, remind_at, created_at, updated_at
              FROM reminders WHERE user_id = $1 ORDER BY remind_at ASC, id ASC`
	if err := q.SelectContext(ctx, &reminders, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reminders for user %d: %w", userID, err)
	}
	return reminders, nil
}

// UpdateReminder persists changes to a reminder.
func (r *ReminderRepository) UpdateReminder(ctx context.Context, q repository.DBExecutor, reminder *domain.Reminder) error {
	query := `UPDATE reminders SET title = $1, note = $2, remind_at = $3, updated_at = $4
              WHERE id = $5 AND user_id = $6`
	result, err := q.ExecContext(ctx, query,
		reminder.Title, reminder.Note, reminder.RemindAt,
		time.Now().UTC(), reminder.ID, reminder.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder %d: %w", reminder.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating reminder %d: %w", reminder.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteReminder removes a reminder scoped to its owner.
func (r *ReminderRepository) DeleteReminder(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	query := `DELETE FROM reminders WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting reminder %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
