// internal/service/budget_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

// BudgetService manages budget CRUD. The date invariant (start before or
// equal to end) is validated here, before anything reaches the store; the
// ledger service consumes budgets read-only.
type BudgetService interface {
	CreateBudget(ctx context.Context, userID, categoryID int64, amount decimal.Decimal, startDate, endDate time.Time) (*domain.Budget, error)
	GetBudget(ctx context.Context, userID, budgetID int64) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID int64) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, userID int64, budget *domain.Budget) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID int64) error
}

// budgetService implements the BudgetService interface.
type budgetService struct {
	dbExecutor   repository.DBExecutor
	budgetRepo   repository.BudgetRepository
	categoryRepo repository.CategoryRepository
}

// NewBudgetService creates a new instance of BudgetService.
func NewBudgetService(dbExecutor repository.DBExecutor, budgetRepo repository.BudgetRepository, categoryRepo repository.CategoryRepository) BudgetService {
	return &budgetService{
		dbExecutor:   dbExecutor,
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateBudget validates and persists a new budget.
func (s *budgetService) CreateBudget(ctx context.Context, userID, categoryID int64, amount decimal.Decimal, startDate, endDate time.Time) (*domain.Budget, error) {
	if _, err := s.categoryRepo.GetVisibleCategory(ctx, s.dbExecutor, categoryID, userID); err != nil {
		return nil, err
	}

	budget := domain.NewBudget(userID, categoryID, amount, startDate, endDate)
	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.CreateBudget(ctx, s.dbExecutor, budget); err != nil {
		return nil, fmt.Errorf("create budget: %w", err)
	}
	return budget, nil
}

// GetBudget retrieves a budget scoped to its owner.
func (s *budgetService) GetBudget(ctx context.Context, userID, budgetID int64) (*domain.Budget, error) {
	return s.budgetRepo.GetBudgetByID(ctx, s.dbExecutor, budgetID, userID)
}

// ListBudgets retrieves all budgets of a user.
func (s *budgetService) ListBudgets(ctx context.Context, userID int64) ([]domain.Budget, error) {
	return s.budgetRepo.ListBudgets(ctx, s.dbExecutor, userID)
}

// UpdateBudget validates and persists changes to an existing budget.
func (s *budgetService) UpdateBudget(ctx context.Context, userID int64, budget *domain.Budget) (*domain.Budget, error) {
	budget.UserID = userID
	if err := budget.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetVisibleCategory(ctx, s.dbExecutor, budget.CategoryID, userID); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.UpdateBudget(ctx, s.dbExecutor, budget); err != nil {
		return nil, err
	}
	return s.budgetRepo.GetBudgetByID(ctx, s.dbExecutor, budget.ID, userID)
}

// DeleteBudget removes a budget scoped to its owner.
func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID int64) error {
	return s.budgetRepo.DeleteBudget(ctx, s.dbExecutor, budgetID, userID)
}
