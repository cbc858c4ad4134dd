// internal/repository/postgres/budget_pg.go
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

// BudgetRepository implements repository.BudgetRepository for PostgreSQL.
type BudgetRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewBudgetRepository creates a new BudgetRepository.
func NewBudgetRepository(db *sqlx.DB) repository.BudgetRepository {
	return &BudgetRepository{}
}

// CreateBudget inserts a new budget using the provided DBExecutor.
func (r *BudgetRepository) CreateBudget(ctx context.Context, q repository.DBExecutor, budget *domain.Budget) error {
	query := `INSERT INTO budgets (user_id, category_id, amount, start_date, end_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		budget.UserID, budget.CategoryID, budget.Amount,
		budget.StartDate, budget.EndDate, budget.CreatedAt, budget.UpdatedAt,
	).Scan(&budget.ID)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetBudgetByID retrieves a budget scoped to its owner.
func (r *BudgetRepository) GetBudgetByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Budget, error) {
	var budget domain.Budget
	query := `SELECT id, user_id, category_id, amount, start_date, end_date, created_at, updated_at
              FROM budgets WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &budget, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get budget %d: %w", id, err)
	}
	return &budget, nil
}

// ListBudgets retrieves all budgets of a user ordered by period start.
func (r *BudgetRepository) ListBudgets(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Budget, error) {
	budgets := []domain.Budget{}
	query := `SELECT id, user_id, category_id, amount, start_date, end_date, created_at, updated_at
              FROM budgets WHERE user_id = $1 ORDER BY start_date ASC, id ASC`
	if err := q.SelectContext(ctx, &budgets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list budgets for user %d: %w", userID, err)
	}
	return budgets, nil
}

// UpdateBudget persists changes to a budget.
func (r *BudgetRepository) UpdateBudget(ctx context.Context, q repository.DBExecutor, budget *domain.Budget) error {
	query := `UPDATE budgets SET category_id = $1, amount = $2, start_date = $3, end_date = $4, updated_at = $5
              WHERE id = $6 AND user_id = $7`
	result, err := q.ExecContext(ctx, query,
		budget.CategoryID, budget.Amount, budget.StartDate, budget.EndDate,
		time.Now().UTC(), budget.ID, budget.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update budget %d: %w", budget.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating budget %d: %w", budget.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteBudget removes a budget scoped to its owner.
func (r *BudgetRepository) DeleteBudget(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	query := `DELETE FROM budgets WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting budget %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// FindBudgetForDate retrieves the budget covering (user, category, date).
// When several budgets overlap, the earliest start date wins, ties broken by
// lowest id, so the lookup is deterministic.
func (r *BudgetRepository) FindBudgetForDate(ctx context.Context, q repository.DBExecutor, userID, categoryID int64, date time.Time) (*domain.Budget, error) {
	var budget domain.Budget
	query := `SELECT id, user_id, category_id, amount, start_date, end_date, created_at, updated_at
              FROM budgets
              WHERE user_id = $1 AND category_id = $2 AND $3 BETWEEN start_date AND end_date
              ORDER BY start_date ASC, id ASC
              LIMIT 1`
	err := q.GetContext(ctx, &budget, query, userID, categoryID, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find budget for user %d category %d: %w", userID, categoryID, err)
	}
	return &budget, nil
}
