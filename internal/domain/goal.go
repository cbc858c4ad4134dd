// internal/domain/goal.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack-ledger/internal/util"
)

// Goal is a savings target evaluated against the wallet balance after every
// balance change. IsAchieved flips from false to true at most once and never
// reverts, even if the balance later drops below the target.
type Goal struct {
	ID           int64           `db:"id" json:"id"`                       // Primary key, BIGSERIAL in DB
	UserID       int64           `db:"user_id" json:"user_id"`             // Foreign key to User
	Name         string          `db:"name" json:"name"`                   // Goal name, used in notifications
	TargetAmount decimal.Decimal `db:"target_amount" json:"target_amount"` // Balance target, NUMERIC(12, 2) in DB
	StartDate    time.Time       `db:"start_date" json:"start_date"`       // Period start, DATE in DB
	EndDate      time.Time       `db:"end_date" json:"end_date"`           // Deadline (inclusive), DATE in DB
	IsAchieved   bool            `db:"is_achieved" json:"is_achieved"`     // Monotonic: false -> true once
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`       // Timestamp of creation
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`       // Timestamp of last update
}

// NewGoal creates a new, unachieved Goal instance.
func NewGoal(userID int64, name string, targetAmount decimal.Decimal, startDate, endDate time.Time) *Goal {
	now := time.Now().UTC()
	return &Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: targetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
		IsAchieved:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate checks the goal invariants before persistence.
func (g *Goal) Validate() error {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidInput
	}
	if g.StartDate.After(g.EndDate) {
		return util.ErrInvalidPeriod
	}
	return nil
}
