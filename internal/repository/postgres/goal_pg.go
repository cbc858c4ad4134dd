// internal/repository/postgres/goal_pg.go
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

// GoalRepository implements repository.GoalRepository for PostgreSQL.
type GoalRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(db *sqlx.DB) repository.GoalRepository {
	return &GoalRepository{}
}

// CreateGoal inserts a new goal using the provided DBExecutor.
func (r *GoalRepository) CreateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.Goal) error {
	query := `INSERT INTO goals (user_id, name, target_amount, start_date, end_date, is_achieved, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		goal.UserID, goal.Name, goal.TargetAmount,
		goal.StartDate, goal.EndDate, goal.IsAchieved, goal.CreatedAt, goal.UpdatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetGoalByID retrieves a goal scoped to its owner.
func (r *GoalRepository) GetGoalByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Goal, error) {
	var goal domain.Goal
	query := `SELECT id, user_id, name, target_amount, start_date, end_date, is_achieved, created_at, updated_at
              FROM goals WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &goal, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal %d: %w", id, err)
	}
	return &goal, nil
}

// ListGoals retrieves all goals of a user in creation order.
func (r *GoalRepository) ListGoals(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	query := `SELECT id, user_id, name, target_amount, start_date, end_date, is_achieved, created_at, updated_at
              FROM goals WHERE user_id = $1 ORDER BY id ASC`
	if err := q.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list goals for user %d: %w", userID, err)
	}
	return goals, nil
}

// ListUnachievedGoals retrieves the user's goals with is_achieved = false.
func (r *GoalRepository) ListUnachievedGoals(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Goal, error) {
	goals := []domain.Goal{}
	query := `SELECT id, user_id, name, target_amount, start_date, end_date, is_achieved, created_at, updated_at
              FROM goals WHERE user_id = $1 AND is_achieved = FALSE ORDER BY id ASC`
	if err := q.SelectContext(ctx, &goals, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list unachieved goals for user %d: %w", userID, err)
	}
	return goals, nil
}

// UpdateGoal persists changes to a goal. is_achieved is deliberately not
// part of the update set; it only moves through MarkGoalAchieved.
func (r *GoalRepository) UpdateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.Goal) error {
	query := `UPDATE goals SET name = $1, target_amount = $2, start_date = $3, end_date = $4, updated_at = $5
              WHERE id = $6 AND user_id = $7`
	result, err := q.ExecContext(ctx, query,
		goal.Name, goal.TargetAmount, goal.StartDate, goal.EndDate,
		time.Now().UTC(), goal.ID, goal.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update goal %d: %w", goal.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating goal %d: %w", goal.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// MarkGoalAchieved flips is_achieved to true. The WHERE clause keeps the
// write idempotent for already-achieved goals.
func (r *GoalRepository) MarkGoalAchieved(ctx context.Context, q repository.DBExecutor, id int64) error {
	query := `UPDATE goals SET is_achieved = TRUE, updated_at = $1 WHERE id = $2 AND is_achieved = FALSE`
	if _, err := q.ExecContext(ctx, query, time.Now().UTC(), id); err != nil {
		return fmt.Errorf("failed to mark goal %d achieved: %w", id, err)
	}
	return nil
}

// DeleteGoal removes a goal scoped to its owner.
func (r *GoalRepository) DeleteGoal(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete goal %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting goal %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
