// internal/domain/user.go
package domain

import "time"

// User represents an account holder in the bookkeeping system.
type User struct {
	ID        int64     `db:"id" json:"id"`                 // Primary key, BIGSERIAL in DB
	Email     string    `db:"email" json:"email"`           // Unique email
	Username  string    `db:"username" json:"username"`     // Display name
	LastName  *string   `db:"last_name" json:"last_name"`   // Optional last name
	CreatedAt time.Time `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewUser creates a new User instance.
func NewUser(email, username string, lastName *string) *User {
	now := time.Now().UTC()
	return &User{
		Email:     email,
		Username:  username,
		LastName:  lastName,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
