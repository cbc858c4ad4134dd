// internal/repository/budget_repo.go
package repository

import (
	"context"
	"time"

	"fintrack-ledger/internal/domain"
)

// BudgetRepository defines the interface for budget data operations.
type BudgetRepository interface {
	// CreateBudget adds a new budget.
	CreateBudget(ctx context.Context, q DBExecutor, budget *domain.Budget) error
	// GetBudgetByID retrieves a budget scoped to its owner.
	GetBudgetByID(ctx context.Context, q DBExecutor, id, userID int64) (*domain.Budget, error)
	// ListBudgets retrieves all budgets of a user.
	ListBudgets(ctx context.Context, q DBExecutor, userID int64) ([]domain.Budget, error)
	// UpdateBudget persists changes to a budget.
	UpdateBudget(ctx context.Context, q DBExecutor, budget *domain.Budget) error
	// DeleteBudget removes a budget scoped to its owner.
	DeleteBudget(ctx context.Context, q DBExecutor, id, userID int64) error
	// FindBudgetForDate retrieves the budget covering (user, category, date).
	// When several budgets overlap, the one with the earliest start date wins
	// (ties broken by lowest id) so the lookup is deterministic. Returns
	// util.ErrNotFound when no budget covers the date.
	FindBudgetForDate(ctx context.Context, q DBExecutor, userID, categoryID int64, date time.Time) (*domain.Budget, error)
}
