// internal/service/goal_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

// GoalService manages savings-goal CRUD. Achievement itself is decided by
// the ledger service after balance changes; is_achieved is read-only here.
type GoalService interface {
	CreateGoal(ctx context.Context, userID int64, name string, targetAmount decimal.Decimal, startDate, endDate time.Time) (*domain.Goal, error)
	GetGoal(ctx context.Context, userID, goalID int64) (*domain.Goal, error)
	ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, userID int64, goal *domain.Goal) (*domain.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID int64) error
}

// goalService implements the GoalService interface.
type goalService struct {
	dbExecutor repository.DBExecutor
	goalRepo   repository.GoalRepository
}

// NewGoalService creates a new instance of GoalService.
func NewGoalService(dbExecutor repository.DBExecutor, goalRepo repository.GoalRepository) GoalService {
	return &goalService{
		dbExecutor: dbExecutor,
		goalRepo:   goalRepo,
	}
}

// CreateGoal validates and persists a new, unachieved goal.
func (s *goalService) CreateGoal(ctx context.Context, userID int64, name string, targetAmount decimal.Decimal, startDate, endDate time.Time) (*domain.Goal, error) {
	goal := domain.NewGoal(userID, name, targetAmount, startDate, endDate)
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.goalRepo.CreateGoal(ctx, s.dbExecutor, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return goal, nil
}

// GetGoal retrieves a goal scoped to its owner.
func (s *goalService) GetGoal(ctx context.Context, userID, goalID int64) (*domain.Goal, error) {
	return s.goalRepo.GetGoalByID(ctx, s.dbExecutor, goalID, userID)
}

// ListGoals retrieves all goals of a user.
func (s *goalService) ListGoals(ctx context.Context, userID int64) ([]domain.Goal, error) {
	return s.goalRepo.ListGoals(ctx, s.dbExecutor, userID)
}

// UpdateGoal validates and persists changes to a goal. The is_achieved flag
// cannot be edited through this path.
func (s *goalService) UpdateGoal(ctx context.Context, userID int64, goal *domain.Goal) (*domain.Goal, error) {
	goal.UserID = userID
	if err := goal.Validate(); err != nil {
		return nil, err
	}

	if err := s.goalRepo.UpdateGoal(ctx, s.dbExecutor, goal); err != nil {
		return nil, err
	}
	return s.goalRepo.GetGoalByID(ctx, s.dbExecutor, goal.ID, userID)
}

// DeleteGoal removes a goal scoped to its owner.
func (s *goalService) DeleteGoal(ctx context.Context, userID, goalID int64) error {
	return s.goalRepo.DeleteGoal(ctx, s.dbExecutor, goalID, userID)
}
