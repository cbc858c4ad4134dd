// internal/domain/budget.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"fintrack-ledger/internal/util"
)

// Budget is a spending limit for one category over an inclusive date period.
// A new expense whose category-period total would push past Amount is
// rejected by the ledger service.
type Budget struct {
	ID         int64           `db:"id" json:"id"`                   // Primary key, BIGSERIAL in DB
	UserID     int64           `db:"user_id" json:"user_id"`         // Foreign key to User
	CategoryID int64           `db:"category_id" json:"category_id"` // Foreign key to Category
	Amount     decimal.Decimal `db:"amount" json:"amount"`           // Spending limit, NUMERIC(12, 2) in DB
	StartDate  time.Time       `db:"start_date" json:"start_date"`   // Period start, DATE in DB
	EndDate    time.Time       `db:"end_date" json:"end_date"`       // Period end (inclusive), DATE in DB
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`   // Timestamp of creation
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`   // Timestamp of last update
}

// NewBudget creates a new Budget instance.
func NewBudget(userID, categoryID int64, amount decimal.Decimal, startDate, endDate time.Time) *Budget {
	now := time.Now().UTC()
	return &Budget{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     amount,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Validate checks the budget invariants before persistence.
func (b *Budget) Validate() error {
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return util.ErrInvalidInput
	}
	if b.StartDate.After(b.EndDate) {
		return util.ErrInvalidPeriod
	}
	return nil
}

// Covers reports whether the given date falls within the budget period,
// boundaries included.
func (b *Budget) Covers(date time.Time) bool {
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}
