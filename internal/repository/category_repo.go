// internal/repository/category_repo.go
package repository

import (
	"context"

	"fintrack-ledger/internal/domain"
)

// CategoryRepository defines the interface for category data operations.
type CategoryRepository interface {
	// CreateCategory adds a new category.
	CreateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	// GetVisibleCategory retrieves a category the user may reference:
	// either owned by the user or a global default.
	GetVisibleCategory(ctx context.Context, q DBExecutor, id, userID int64) (*domain.Category, error)
	// ListCategories retrieves all categories visible to the user.
	ListCategories(ctx context.Context, q DBExecutor, userID int64) ([]domain.Category, error)
	// UpdateCategory renames a user-owned category.
	UpdateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	// DeleteCategory removes a user-owned category.
	DeleteCategory(ctx context.Context, q DBExecutor, id, userID int64) error
	// EnsureGlobalCategory inserts a global default category if it does not
	// exist yet. Idempotent; used by the startup seeding routine.
	EnsureGlobalCategory(ctx context.Context, q DBExecutor, name string) error
}
