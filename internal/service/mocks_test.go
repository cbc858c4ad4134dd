// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"
	"time"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/notify"
	"fintrack-ledger/internal/repository"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlx.Tx), args.Error(1)
}

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockTxController mocks db.TxController and, via the embedded
// MockDBExecutor, satisfies repository.DBExecutor so it can stand in for an
// *sqlx.Tx inside services.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockUserRepository is a mock implementation of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	args := m.Called(ctx, q, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	args := m.Called(ctx, q, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockWalletRepository is a mock implementation of repository.WalletRepository.
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) CreateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	args := m.Called(ctx, q, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetWalletByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wallet, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetWalletByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetWalletByIDForUpdate(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Wallet, error) {
	args := m.Called(ctx, q, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateWalletBalance(ctx context.Context, q repository.DBExecutor, walletID int64, delta decimal.Decimal) error {
	args := m.Called(ctx, q, walletID, delta)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	args := m.Called(ctx, q, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	args := m.Called(ctx, q, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor, userID int64, txType domain.TransactionType, limit, offset int) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, q, userID, txType, limit, offset)
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) ListAllTransactions(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SumExpenses(ctx context.Context, q repository.DBExecutor, userID, categoryID int64, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, q, userID, categoryID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	args := m.Called(ctx, q, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetVisibleCategory(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Category, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Category, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	args := m.Called(ctx, q, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

func (m *MockCategoryRepository) EnsureGlobalCategory(ctx context.Context, q repository.DBExecutor, name string) error {
	args := m.Called(ctx, q, name)
	return args.Error(0)
}

// MockBudgetRepository is a mock implementation of repository.BudgetRepository.
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) CreateBudget(ctx context.Context, q repository.DBExecutor, budget *domain.Budget) error {
	args := m.Called(ctx, q, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) GetBudgetByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Budget, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Budget, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, q repository.DBExecutor, budget *domain.Budget) error {
	args := m.Called(ctx, q, budget)
	return args.Error(0)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

func (m *MockBudgetRepository) FindBudgetForDate(ctx context.Context, q repository.DBExecutor, userID, categoryID int64, date time.Time) (*domain.Budget, error) {
	args := m.Called(ctx, q, userID, categoryID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

// MockGoalRepository is a mock implementation of repository.GoalRepository.
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) CreateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.Goal) error {
	args := m.Called(ctx, q, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) GetGoalByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Goal, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListGoals(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Goal, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) ListUnachievedGoals(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Goal, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).([]domain.Goal), args.Error(1)
}

func (m *MockGoalRepository) UpdateGoal(ctx context.Context, q repository.DBExecutor, goal *domain.Goal) error {
	args := m.Called(ctx, q, goal)
	return args.Error(0)
}

func (m *MockGoalRepository) MarkGoalAchieved(ctx context.Context, q repository.DBExecutor, id int64) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockGoalRepository) DeleteGoal(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

// MockReminderRepository is a mock implementation of repository.ReminderRepository.
type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) CreateReminder(ctx context.Context, q repository.DBExecutor, reminder *domain.Reminder) error {
	args := m.Called(ctx, q, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) GetReminderByID(ctx context.Context, q repository.DBExecutor, id, userID int64) (*domain.Reminder, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reminder), args.Error(1)
}

func (m *MockReminderRepository) ListReminders(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Reminder, error) {
	args := m.Called(ctx, q, userID)
	return args.Get(0).([]domain.Reminder), args.Error(1)
}

func (m *MockReminderRepository) UpdateReminder(ctx context.Context, q repository.DBExecutor, reminder *domain.Reminder) error {
	args := m.Called(ctx, q, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) DeleteReminder(ctx context.Context, q repository.DBExecutor, id, userID int64) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

// MockNotifier is a mock implementation of notify.Notifier.
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, event notify.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
