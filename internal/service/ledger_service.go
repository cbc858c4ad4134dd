// internal/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/notify"
	"fintrack-ledger/internal/repository"
	"fintrack-ledger/internal/util"
	"fintrack-ledger/pkg/db"

	"github.com/shopspring/decimal"
)

// LedgerService owns the consistency rules that tie transactions, wallet
// balance, budgets and goals together. Every expense/income write runs
// through it: the balance delta, the budget-cap check and goal evaluation
// all happen inside one database transaction, so the wallet can never drift
// from the sum of its transactions.
type LedgerService interface {
	// CreateTransaction records a new expense or income, adjusts the wallet
	// balance and evaluates goals. Expense creates are rejected with a
	// *util.BudgetExceededError when they would push the category's period
	// total over an active budget; nothing is persisted in that case.
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Wallet, error)
	// UpdateTransaction applies amount/category/date/comment changes to an
	// existing transaction. The wallet moves by the signed amount delta only;
	// metadata edits move no money. The budget cap is not re-checked on
	// update; an advisory threshold warning is emitted instead when the edit
	// pushes a budget over its limit.
	UpdateTransaction(ctx context.Context, userID int64, changes *domain.Transaction) (*domain.Wallet, error)
	// DeleteTransaction removes a transaction and reverses its balance
	// contribution.
	DeleteTransaction(ctx context.Context, userID, transactionID int64) (*domain.Wallet, error)
	// GetTransaction retrieves one transaction scoped to its owner.
	GetTransaction(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error)
	// ListTransactions retrieves a user's transactions of one type, paginated.
	ListTransactions(ctx context.Context, userID int64, txType domain.TransactionType, limit, offset int) ([]domain.Transaction, int64, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	dbBeginner   db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor   repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	walletRepo   repository.WalletRepository
	txRepo       repository.TransactionRepository
	categoryRepo repository.CategoryRepository
	budgetRepo   repository.BudgetRepository
	goalRepo     repository.GoalRepository
	notifier     notify.Notifier
	logger       *slog.Logger
	beginTx      db.BeginTxFunc    // Injected dependency for beginning transactions
	commitTx     db.CommitTxFunc   // Injected dependency for committing transactions
	rollbackTx   db.RollbackTxFunc // Injected dependency for rolling back transactions
	now          func() time.Time
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	txRepo repository.TransactionRepository,
	categoryRepo repository.CategoryRepository,
	budgetRepo repository.BudgetRepository,
	goalRepo repository.GoalRepository,
	notifier notify.Notifier,
	logger *slog.Logger,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) LedgerService {
	return &ledgerService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
		budgetRepo:   budgetRepo,
		goalRepo:     goalRepo,
		notifier:     notifier,
		logger:       logger,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateTransaction records a new expense or income.
func (s *ledgerService) CreateTransaction(ctx context.Context, transaction *domain.Transaction) (*domain.Wallet, error) {
	if !transaction.Type.Valid() {
		return nil, util.ErrInvalidInput
	}
	if transaction.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create transaction: transaction controller does not implement DBExecutor")
	}

	// Lock the wallet row first; all balance writers for this wallet
	// serialize here.
	wallet, err := s.walletRepo.GetWalletByIDForUpdate(ctx, txExecutor, transaction.WalletID)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, util.ErrWalletNotFound
		}
		return nil, fmt.Errorf("create transaction: failed to lock wallet %d: %w", transaction.WalletID, err)
	}
	if wallet.UserID != transaction.UserID {
		return nil, util.ErrWalletNotFound
	}

	category, err := s.categoryRepo.GetVisibleCategory(ctx, txExecutor, transaction.CategoryID, transaction.UserID)
	if err != nil {
		return nil, err
	}

	// Blocking budget-cap check, expense creates only.
	if transaction.Type == domain.TransactionTypeExpense {
		if err := s.checkBudgetCap(ctx, txExecutor, transaction, category); err != nil {
			return nil, err
		}
	}

	if err := s.txRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: failed to persist transaction: %w", err)
	}

	delta := transaction.BalanceDelta()
	if err := s.walletRepo.UpdateWalletBalance(ctx, txExecutor, wallet.ID, delta); err != nil {
		return nil, fmt.Errorf("create transaction: failed to update wallet balance: %w", err)
	}
	newBalance := wallet.Balance.Add(delta)

	events, err := s.evaluateGoals(ctx, txExecutor, transaction.UserID, newBalance)
	if err != nil {
		return nil, fmt.Errorf("create transaction: failed to evaluate goals: %w", err)
	}

	if transaction.Type == domain.TransactionTypeExpense {
		warnings, err := s.budgetThresholdWarnings(ctx, txExecutor, transaction, category)
		if err != nil {
			return nil, fmt.Errorf("create transaction: failed to check budget threshold: %w", err)
		}
		events = append(events, warnings...)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create transaction: failed to commit transaction: %w", err)
	}

	s.publish(ctx, events)

	wallet.Balance = newBalance
	return wallet, nil
}

// UpdateTransaction applies changes to an existing transaction and moves the
// wallet by the signed amount delta.
func (s *ledgerService) UpdateTransaction(ctx context.Context, userID int64, changes *domain.Transaction) (*domain.Wallet, error) {
	if changes.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("update transaction: transaction controller does not implement DBExecutor")
	}

	old, err := s.txRepo.GetTransactionByID(ctx, txExecutor, changes.ID, userID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletByIDForUpdate(ctx, txExecutor, old.WalletID)
	if err != nil {
		return nil, fmt.Errorf("update transaction: failed to lock wallet %d: %w", old.WalletID, err)
	}

	// The first read only located the wallet. A concurrent writer may have
	// committed while we waited for the row lock; re-read so the delta is
	// computed against the current row, not a stale snapshot.
	old, err = s.txRepo.GetTransactionByID(ctx, txExecutor, changes.ID, userID)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetVisibleCategory(ctx, txExecutor, changes.CategoryID, userID)
	if err != nil {
		return nil, err
	}

	// User, wallet and type are immutable; carry them over from the stored row.
	updated := *old
	updated.CategoryID = changes.CategoryID
	updated.Amount = changes.Amount
	updated.Date = changes.Date
	updated.Comments = changes.Comments

	if err := s.txRepo.UpdateTransaction(ctx, txExecutor, &updated); err != nil {
		return nil, fmt.Errorf("update transaction: failed to persist changes: %w", err)
	}

	// Income moves by (new - old), expense by (old - new). Category and date
	// edits on their own move no money.
	delta := updated.BalanceDelta().Sub(old.BalanceDelta())
	if !delta.IsZero() {
		if err := s.walletRepo.UpdateWalletBalance(ctx, txExecutor, wallet.ID, delta); err != nil {
			return nil, fmt.Errorf("update transaction: failed to update wallet balance: %w", err)
		}
	}
	newBalance := wallet.Balance.Add(delta)

	events, err := s.evaluateGoals(ctx, txExecutor, userID, newBalance)
	if err != nil {
		return nil, fmt.Errorf("update transaction: failed to evaluate goals: %w", err)
	}

	if updated.Type == domain.TransactionTypeExpense {
		warnings, err := s.budgetThresholdWarnings(ctx, txExecutor, &updated, category)
		if err != nil {
			return nil, fmt.Errorf("update transaction: failed to check budget threshold: %w", err)
		}
		events = append(events, warnings...)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update transaction: failed to commit transaction: %w", err)
	}

	s.publish(ctx, events)

	wallet.Balance = newBalance
	return wallet, nil
}

// DeleteTransaction removes a transaction and reverses its effect on the
// wallet balance.
func (s *ledgerService) DeleteTransaction(ctx context.Context, userID, transactionID int64) (*domain.Wallet, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("delete transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("delete transaction: transaction controller does not implement DBExecutor")
	}

	old, err := s.txRepo.GetTransactionByID(ctx, txExecutor, transactionID, userID)
	if err != nil {
		return nil, err
	}

	wallet, err := s.walletRepo.GetWalletByIDForUpdate(ctx, txExecutor, old.WalletID)
	if err != nil {
		return nil, fmt.Errorf("delete transaction: failed to lock wallet %d: %w", old.WalletID, err)
	}

	// Re-read under the wallet lock; the reversal must undo what is
	// committed now, not what was committed when we first looked.
	old, err = s.txRepo.GetTransactionByID(ctx, txExecutor, transactionID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.DeleteTransaction(ctx, txExecutor, transactionID, userID); err != nil {
		return nil, fmt.Errorf("delete transaction: failed to delete transaction %d: %w", transactionID, err)
	}

	delta := old.BalanceDelta().Neg()
	if err := s.walletRepo.UpdateWalletBalance(ctx, txExecutor, wallet.ID, delta); err != nil {
		return nil, fmt.Errorf("delete transaction: failed to update wallet balance: %w", err)
	}
	newBalance := wallet.Balance.Add(delta)

	events, err := s.evaluateGoals(ctx, txExecutor, userID, newBalance)
	if err != nil {
		return nil, fmt.Errorf("delete transaction: failed to evaluate goals: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("delete transaction: failed to commit transaction: %w", err)
	}

	s.publish(ctx, events)

	wallet.Balance = newBalance
	return wallet, nil
}

// GetTransaction retrieves one transaction scoped to its owner.
func (s *ledgerService) GetTransaction(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error) {
	return s.txRepo.GetTransactionByID(ctx, s.dbExecutor, transactionID, userID)
}

// ListTransactions retrieves a user's transactions of one type, paginated.
func (s *ledgerService) ListTransactions(ctx context.Context, userID int64, txType domain.TransactionType, limit, offset int) ([]domain.Transaction, int64, error) {
	if !txType.Valid() {
		return nil, 0, util.ErrInvalidInput
	}
	return s.txRepo.ListTransactions(ctx, s.dbExecutor, userID, txType, limit, offset)
}

// checkBudgetCap rejects a candidate expense whose category-period total
// would exceed the matching budget. No matching budget means no constraint.
func (s *ledgerService) checkBudgetCap(ctx context.Context, q repository.DBExecutor, expense *domain.Transaction, category *domain.Category) error {
	budget, err := s.budgetRepo.FindBudgetForDate(ctx, q, expense.UserID, expense.CategoryID, expense.Date)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("budget lookup failed: %w", err)
	}

	existing, err := s.txRepo.SumExpenses(ctx, q, expense.UserID, expense.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		return fmt.Errorf("expense sum failed: %w", err)
	}

	total := existing.Add(expense.Amount)
	if total.GreaterThan(budget.Amount) {
		return &util.BudgetExceededError{
			Category:     category.Name,
			CurrentTotal: total,
			BudgetLimit:  budget.Amount,
		}
	}
	return nil
}

// budgetThresholdWarnings produces the advisory BudgetThresholdWarning event
// when the expense's category-period total (including the row just written)
// exceeds the matching budget. Unlike checkBudgetCap this never blocks the
// write; updates that push a budget over its limit warn instead of failing.
func (s *ledgerService) budgetThresholdWarnings(ctx context.Context, q repository.DBExecutor, expense *domain.Transaction, category *domain.Category) ([]notify.Event, error) {
	budget, err := s.budgetRepo.FindBudgetForDate(ctx, q, expense.UserID, expense.CategoryID, expense.Date)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("budget lookup failed: %w", err)
	}

	total, err := s.txRepo.SumExpenses(ctx, q, expense.UserID, expense.CategoryID, budget.StartDate, budget.EndDate)
	if err != nil {
		return nil, fmt.Errorf("expense sum failed: %w", err)
	}

	if total.GreaterThan(budget.Amount) {
		return []notify.Event{
			notify.BudgetThresholdWarning(expense.UserID, category.Name, total, budget.Amount),
		}, nil
	}
	return nil, nil
}

// evaluateGoals marks every unachieved goal whose target the new balance
// reaches as achieved, and collects the events to emit after commit. Goals
// past their deadline and still unachieved produce a non-mutating reminder
// event. Achievement is monotonic: achieved goals are never re-evaluated.
func (s *ledgerService) evaluateGoals(ctx context.Context, q repository.DBExecutor, userID int64, balance decimal.Decimal) ([]notify.Event, error) {
	goals, err := s.goalRepo.ListUnachievedGoals(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list unachieved goals: %w", err)
	}

	var events []notify.Event
	// EndDate comes back from a DATE column as midnight UTC. Compare dates,
	// not instants: the deadline is inclusive through the whole end date and
	// only counts as passed from the following day.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := range goals {
		goal := &goals[i]
		if balance.GreaterThanOrEqual(goal.TargetAmount) {
			if err := s.goalRepo.MarkGoalAchieved(ctx, q, goal.ID); err != nil {
				return nil, fmt.Errorf("failed to mark goal %d achieved: %w", goal.ID, err)
			}
			events = append(events, notify.GoalAchieved(userID, goal.Name, goal.TargetAmount))
			continue
		}
		if today.After(goal.EndDate) {
			events = append(events, notify.GoalDeadlinePassed(userID, goal.Name))
		}
	}
	return events, nil
}

// publish delivers advisory events after the unit of work has committed.
// Delivery failures are logged and never surfaced to the caller.
func (s *ledgerService) publish(ctx context.Context, events []notify.Event) {
	for _, event := range events {
		if err := s.notifier.Notify(ctx, event); err != nil {
			s.logger.Error("notification delivery failed", "type", string(event.Type), "user_id", event.UserID, "error", err)
		}
	}
}
