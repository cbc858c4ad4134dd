// internal/service/reminder_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/repository"
	"fintrack-ledger/internal/util"
)

// ReminderService manages reminder CRUD.
type ReminderService interface {
	CreateReminder(ctx context.Context, userID int64, title string, note *string, remindAt time.Time) (*domain.Reminder, error)
	GetReminder(ctx context.Context, userID, reminderID int64) (*domain.Reminder, error)
	ListReminders(ctx context.Context, userID int64) ([]domain.Reminder, error)
	UpdateReminder(ctx context.Context, userID int64, reminder *domain.Reminder) (*domain.Reminder, error)
	DeleteReminder(ctx context.Context, userID, reminderID int64) error
}

// reminderService implements the ReminderService interface.
type reminderService struct {
	dbExecutor   repository.DBExecutor
	reminderRepo repository.ReminderRepository
}

// NewReminderService creates a new instance of ReminderService.
func NewReminderService(dbExecutor repository.DBExecutor, reminderRepo repository.ReminderRepository) ReminderService {
	return &reminderService{
		dbExecutor:   dbExecutor,
		reminderRepo: reminderRepo,
	}
}

// CreateReminder validates and persists a new reminder.
func (s *reminderService) CreateReminder(ctx context.Context, userID int64, title string, note *string, remindAt time.Time) (*domain.Reminder, error) {
	if title == "" {
		return nil, util.ErrInvalidInput
	}
	reminder := domain.NewReminder(userID, title, note, remindAt)
	if err := s.reminderRepo.CreateReminder(ctx, s.dbExecutor, reminder); err != nil {
		return nil, fmt.Errorf("create reminder: %w", err)
	}
	return reminder, nil
}

// GetReminder retrieves a reminder scoped to its owner.
func (s *reminderService) GetReminder(ctx context.Context, userID, reminderID int64) (*domain.Reminder, error) {
	return s.reminderRepo.GetReminderByID(ctx, s.dbExecutor, reminderID, userID)
}

// ListReminders retrieves all reminders of a user.
func (s *reminderService) ListReminders(ctx context.Context, userID int64) ([]domain.Reminder, error) {
	return s.reminderRepo.ListReminders(ctx, s.dbExecutor, userID)
}

// UpdateReminder persists changes to a reminder.
func (s *reminderService) UpdateReminder(ctx context.Context, userID int64, reminder *domain.Reminder) (*domain.Reminder, error) {
	if reminder.Title == "" {
		return nil, util.ErrInvalidInput
	}
	reminder.UserID = userID
	if err := s.reminderRepo.UpdateReminder(ctx, s.dbExecutor, reminder); err != nil {
		return nil, err
	}
	return s.reminderRepo.GetReminderByID(ctx, s.dbExecutor, reminder.ID, userID)
}

// DeleteReminder removes a reminder scoped to its owner.
func (s *reminderService) DeleteReminder(ctx context.Context, userID, reminderID int64) error {
	return s.reminderRepo.DeleteReminder(ctx, s.dbExecutor, reminderID, userID)
}
