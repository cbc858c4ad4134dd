// internal/util/errors.go
package util

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Common application-specific errors.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input provided")
	ErrInvalidPeriod    = errors.New("start date must not be after end date")
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateEntry   = errors.New("duplicate entry") // For cases like creating a user with existing email
	ErrBudgetExceeded   = errors.New("budget exceeded")
	ErrUnauthorized     = errors.New("missing or invalid user identity")
)

// BudgetExceededError reports a rejected expense create: the category's
// period total (existing expenses plus the candidate amount) would exceed
// the budget limit. It unwraps to ErrBudgetExceeded so callers can match it
// with errors.Is and extract details with errors.As.
type BudgetExceededError struct {
	Category     string
	CurrentTotal decimal.Decimal
	BudgetLimit  decimal.Decimal
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("budget exceeded for category %q: total %s over limit %s",
		e.Category, e.CurrentTotal.StringFixed(2), e.BudgetLimit.StringFixed(2))
}

func (e *BudgetExceededError) Unwrap() error { return ErrBudgetExceeded }

// IsError reports whether err matches the target sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
