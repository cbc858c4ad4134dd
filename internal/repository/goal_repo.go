// internal/repository/goal_repo.go
package repository

import (
	"context"

	"fintrack-ledger/internal/domain"
)

// GoalRepository defines the interface for savings-goal data operations.
type GoalRepository interface {
	// CreateGoal adds a new goal.
	CreateGoal(ctx context.Context, q DBExecutor, goal *domain.Goal) error
	// GetGoalByID retrieves a goal scoped to its owner.
	GetGoalByID(ctx context.Context, q DBExecutor, id, userID int64) (*domain.Goal, error)
	// ListGoals retrieves all goals of a user.
	ListGoals(ctx context.Context, q DBExecutor, userID int64) ([]domain.Goal, error)
	// ListUnachievedGoals retrieves the user's goals with is_achieved =
	// false, in creation order.
	ListUnachievedGoals(ctx context.Context, q DBExecutor, userID int64) ([]domain.Goal, error)
	// UpdateGoal persists changes to a goal. is_achieved is never written by
	// this method; use MarkGoalAchieved.
	UpdateGoal(ctx context.Context, q DBExecutor, goal *domain.Goal) error
	// MarkGoalAchieved flips is_achieved to true. The flag is monotonic and
	// is never reset.
	MarkGoalAchieved(ctx context.Context, q DBExecutor, id int64) error
	// DeleteGoal removes a goal scoped to its owner.
	DeleteGoal(ctx context.Context, q DBExecutor, id, userID int64) error
}
