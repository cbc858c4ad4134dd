// internal/repository/transaction_repo.go
package repository

import (
	"context"
	"time"

	"fintrack-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

// TransactionRepository defines the interface for expense/income data
// operations.
type TransactionRepository interface {
	// CreateTransaction adds a new transaction record.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionByID retrieves one transaction scoped to its owner.
	GetTransactionByID(ctx context.Context, q DBExecutor, id, userID int64) (*domain.Transaction, error)
	// UpdateTransaction persists amount/category/date/comments changes.
	UpdateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// DeleteTransaction removes a transaction scoped to its owner.
	DeleteTransaction(ctx context.Context, q DBExecutor, id, userID int64) error
	// ListTransactions retrieves a user's transactions of the given type,
	// newest first, paginated. It returns the rows and the total count.
	ListTransactions(ctx context.Context, q DBExecutor, userID int64, txType domain.TransactionType, limit, offset int) ([]domain.Transaction, int64, error)
	// ListAllTransactions retrieves all of a user's transactions (both
	// types), newest first. Used by the report exporter.
	ListAllTransactions(ctx context.Context, q DBExecutor, userID int64) ([]domain.Transaction, error)
	// SumExpenses totals the user's expenses for one category within an
	// inclusive date period.
	SumExpenses(ctx context.Context, q DBExecutor, userID, categoryID int64, from, to time.Time) (decimal.Decimal, error)
}
