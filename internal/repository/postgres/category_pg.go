// internal/repository/postgres/category_pg.go
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

// CategoryRepository implements repository.CategoryRepository for PostgreSQL.
type CategoryRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &CategoryRepository{}
}

// CreateCategory inserts a new category using the provided DBExecutor.
func (r *CategoryRepository) CreateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `INSERT INTO categories (user_id, name, created_at, updated_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query, category.UserID, category.Name, category.CreatedAt, category.UpdatedAt).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetVisibleCategory retrieves a category the user may reference: either
// their own or a global default (user_id IS NULL).
func (r *CategoryRepository) GetVisibleCategory(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT id, user_id, name, created_at, updated_at FROM categories
              WHERE id = $1 AND (user_id = $2 OR user_id IS NULL)`
	err := q.GetContext(ctx, &category, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}
	return &category, nil
}

// ListCategories retrieves all categories visible to the user, global
// defaults first.
func (r *CategoryRepository) ListCategories(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Category, error) {
	categories := []domain.Category{}
	query := `SELECT id, user_id, name, created_at, updated_at FROM categories
              WHERE user_id = $1 OR user_id IS NULL
              ORDER BY user_id NULLS FIRST, name ASC`
	if err := q.SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list categories for user %d: %w", userID, err)
	}
	return categories, nil
}

// UpdateCategory renames a user-owned category. Global defaults cannot be
// edited through this path.
func (r *CategoryRepository) UpdateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	result, err := q.ExecContext(ctx, query, category.Name, time.Now().UTC(), category.ID, category.UserID)
	if err != nil {
		return fmt.Errorf("failed to update category %d: %w", category.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating category %d: %w", category.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrCategoryNotFound
	}
	return nil
}

// DeleteCategory removes a user-owned category.
func (r *CategoryRepository) DeleteCategory(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting category %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrCategoryNotFound
	}
	return nil
}

// EnsureGlobalCategory inserts a global default category if it does not
// exist yet. Safe to call repeatedly at startup.
func (r *CategoryRepository) EnsureGlobalCategory(ctx context.Context, q repository.DBExecutor, name string) error {
	query := `INSERT INTO categories (user_id, name, created_at, updated_at)
              VALUES (NULL, $1, $2, $2)
              ON CONFLICT (name) WHERE user_id IS NULL DO NOTHING`
	if _, err := q.ExecContext(ctx, query, name, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to seed global category %q: %w", name, err)
	}
	return nil
}
