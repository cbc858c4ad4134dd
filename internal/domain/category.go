// internal/domain/category.go
package domain

import "time"

// Category labels expenses and incomes. A category either belongs to one
// user or is a global default (UserID nil), seeded at startup and visible to
// everyone.
type Category struct {
	ID        int64     `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	UserID    *int64    `db:"user_id" json:"user_id"`       // Owner; nil for global defaults
	Name      string    `db:"name" json:"name"`             // Category name, unique per owner
	CreatedAt time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewCategory creates a new user-owned Category instance.
func NewCategory(userID int64, name string) *Category {
	now := time.Now().UTC()
	return &Category{
		UserID:    &userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
