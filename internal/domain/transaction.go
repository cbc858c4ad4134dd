// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the type of a financial transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "EXPENSE"
	TransactionTypeIncome  TransactionType = "INCOME"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single expense or income record. The amount is
// always positive; the type decides the sign of its effect on the wallet
// balance.
type Transaction struct {
	ID         int64           `db:"id" json:"id"`                   // Primary key, BIGSERIAL in DB
	UserID     int64           `db:"user_id" json:"user_id"`         // Foreign key to User
	WalletID   int64           `db:"wallet_id" json:"wallet_id"`     // Foreign key to Wallet
	CategoryID int64           `db:"category_id" json:"category_id"` // Foreign key to Category
	Type       TransactionType `db:"type" json:"type"`               // EXPENSE or INCOME
	Amount     decimal.Decimal `db:"amount" json:"amount"`           // Positive amount, NUMERIC(12, 2) in DB
	Date       time.Time       `db:"date" json:"date"`               // Booking date, DATE in DB
	Comments   *string         `db:"comments" json:"comments"`       // Optional free-form note
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`   // Timestamp of record creation
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`   // Timestamp of last update
}

// NewTransaction creates a new Transaction instance.
func NewTransaction(userID, walletID, categoryID int64, txType TransactionType, amount decimal.Decimal, date time.Time, comments *string) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		UserID:     userID,
		WalletID:   walletID,
		CategoryID: categoryID,
		Type:       txType,
		Amount:     amount,
		Date:       date,
		Comments:   comments,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// BalanceDelta returns the signed effect this transaction has on the wallet
// balance: positive for income, negative for expense.
func (t *Transaction) BalanceDelta() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
