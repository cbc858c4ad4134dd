// internal/repository/postgres/transaction_pg.go
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
	"github.com/shopspring/decimal"
)

// TransactionRepository implements repository.TransactionRepository for
// PostgreSQL. Expenses and incomes share one table discriminated by type.
type TransactionRepository struct {
	// Stateless; methods receive a DBExecutor directly
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction inserts a new transaction record using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, wallet_id, category_id, type, amount, date, comments, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.WalletID,
		transaction.CategoryID,
		transaction.Type,
		transaction.Amount,
		transaction.Date,
		transaction.Comments,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	).Scan(&transaction.ID)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves one transaction scoped to its owner.
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	query := `SELECT id, user_id, wallet_id, category_id, type, amount, date, comments, created_at, updated_at
              FROM transactions WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &transaction, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction %d: %w", id, err)
	}
	return &transaction, nil
}

// UpdateTransaction persists amount/category/date/comments changes. Type,
// user and wallet are immutable after creation.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `UPDATE transactions SET category_id = $1, amount = $2, date = $3, comments = $4, updated_at = $5
              WHERE id = $6 AND user_id = $7`
	result, err := q.ExecContext(ctx, query,
		transaction.CategoryID,
		transaction.Amount,
		transaction.Date,
		transaction.Comments,
		time.Now().UTC(),
		transaction.ID,
		transaction.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", transaction.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating transaction %d: %w", transaction.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction scoped to its owner.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting transaction %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// ListTransactions retrieves a user's transactions of the given type,
// newest first, paginated, together with the total count.
func (r *TransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor, userID int64, txType domain.TransactionType, limit, offset int) ([]domain.Transaction, int64, error) {
	transactions := []domain.Transaction{}

	query := `
		SELECT id, user_id, wallet_id, category_id, type, amount, date, comments, created_at, updated_at
		FROM transactions
		WHERE user_id = $1 AND type = $2
		ORDER BY date DESC, id DESC
		LIMIT $3 OFFSET $4`
	err := q.SelectContext(ctx, &transactions, query, userID, txType, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch %s transactions for user %d: %w", txType, userID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND type = $2`
	err = q.GetContext(ctx, &totalCount, countQuery, userID, txType)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count %s transactions for user %d: %w", txType, userID, err)
	}

	return transactions, totalCount, nil
}

// ListAllTransactions retrieves all of a user's transactions, newest first.
func (r *TransactionRepository) ListAllTransactions(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `
		SELECT id, user_id, wallet_id, category_id, type, amount, date, comments, created_at, updated_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC, id DESC`
	if err := q.SelectContext(ctx, &transactions, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %d: %w", userID, err)
	}
	return transactions, nil
}

// SumExpenses totals the user's expenses for one category within an
// inclusive date period.
func (r *TransactionRepository) SumExpenses(ctx context.Context, q repository.DBExecutor, userID, categoryID int64, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = $3 AND date BETWEEN $4 AND $5`
	err := q.GetContext(ctx, &total, query, userID, categoryID, domain.TransactionTypeExpense, from, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses for user %d category %d: %w", userID, categoryID, err)
	}
	return total, nil
}
