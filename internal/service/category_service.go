// internal/service/category_service.go
package service

import (
	"context"
	"fmt"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/repository"
	"fintrack-ledger/internal/util"
)

// Default global categories, seeded once at startup. Users see these
// alongside their own categories.
var defaultCategories = []string{
	"Groceries",
	"Transport",
	"Housing",
	"Health",
	"Entertainment",
	"Salary",
	"Other",
}

// CategoryService manages expense/income categories.
type CategoryService interface {
	CreateCategory(ctx context.Context, userID int64, name string) (*domain.Category, error)
	GetCategory(ctx context.Context, userID, categoryID int64) (*domain.Category, error)
	ListCategories(ctx context.Context, userID int64) ([]domain.Category, error)
	RenameCategory(ctx context.Context, userID, categoryID int64, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID int64) error
	// SeedDefaults inserts the global default categories. Idempotent; called
	// once during application startup.
	SeedDefaults(ctx context.Context) error
}

// categoryService implements the CategoryService interface.
type categoryService struct {
	dbExecutor   repository.DBExecutor
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(dbExecutor repository.DBExecutor, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		dbExecutor:   dbExecutor,
		categoryRepo: categoryRepo,
	}
}

// CreateCategory adds a user-owned category.
func (s *categoryService) CreateCategory(ctx context.Context, userID int64, name string) (*domain.Category, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}
	category := domain.NewCategory(userID, name)
	if err := s.categoryRepo.CreateCategory(ctx, s.dbExecutor, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

// GetCategory retrieves a category visible to the user.
func (s *categoryService) GetCategory(ctx context.Context, userID, categoryID int64) (*domain.Category, error) {
	return s.categoryRepo.GetVisibleCategory(ctx, s.dbExecutor, categoryID, userID)
}

// ListCategories retrieves all categories visible to the user.
func (s *categoryService) ListCategories(ctx context.Context, userID int64) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, s.dbExecutor, userID)
}

// RenameCategory renames a user-owned category.
func (s *categoryService) RenameCategory(ctx context.Context, userID, categoryID int64, name string) (*domain.Category, error) {
	if name == "" {
		return nil, util.ErrInvalidInput
	}
	category := &domain.Category{ID: categoryID, UserID: &userID, Name: name}
	if err := s.categoryRepo.UpdateCategory(ctx, s.dbExecutor, category); err != nil {
		return nil, err
	}
	return s.categoryRepo.GetVisibleCategory(ctx, s.dbExecutor, categoryID, userID)
}

// DeleteCategory removes a user-owned category.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	return s.categoryRepo.DeleteCategory(ctx, s.dbExecutor, categoryID, userID)
}

// SeedDefaults inserts the global default categories if missing.
func (s *categoryService) SeedDefaults(ctx context.Context) error {
	for _, name := range defaultCategories {
		if err := s.categoryRepo.EnsureGlobalCategory(ctx, s.dbExecutor, name); err != nil {
			return fmt.Errorf("seed default categories: %w", err)
		}
	}
	return nil
}
