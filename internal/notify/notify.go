// internal/notify/notify.go
package notify

import (
	"context"

	"github.com/shopspring/decimal"
)

// EventType identifies the kind of advisory event emitted by the ledger
// service after a committed write.
type EventType string

const (
	EventGoalAchieved           EventType = "GOAL_ACHIEVED"
	EventGoalDeadlinePassed     EventType = "GOAL_DEADLINE_PASSED"
	EventBudgetThresholdWarning EventType = "BUDGET_THRESHOLD_WARNING"
)

// Event is a fire-and-forget notification. Events are observational only:
// delivery failures must never affect the transaction that produced them.
type Event struct {
	Type         EventType       `json:"type"`
	UserID       int64           `json:"user_id"`
	GoalName     string          `json:"goal_name,omitempty"` // GoalAchieved, GoalDeadlinePassed
	TargetAmount decimal.Decimal `json:"target_amount"`       // GoalAchieved; zero otherwise
	Category     string          `json:"category,omitempty"`  // BudgetThresholdWarning
	CurrentTotal decimal.Decimal `json:"current_total"`       // BudgetThresholdWarning; zero otherwise
	BudgetLimit  decimal.Decimal `json:"budget_limit"`        // BudgetThresholdWarning; zero otherwise
}

// GoalAchieved builds the event emitted when a goal's target is first reached.
func GoalAchieved(userID int64, goalName string, targetAmount decimal.Decimal) Event {
	return Event{Type: EventGoalAchieved, UserID: userID, GoalName: goalName, TargetAmount: targetAmount}
}

// GoalDeadlinePassed builds the reminder event for a goal past its end date
// and still unachieved.
func GoalDeadlinePassed(userID int64, goalName string) Event {
	return Event{Type: EventGoalDeadlinePassed, UserID: userID, GoalName: goalName}
}

// BudgetThresholdWarning builds the advisory event emitted when a category's
// period total exceeds its budget after a successful write.
func BudgetThresholdWarning(userID int64, category string, currentTotal, budgetLimit decimal.Decimal) Event {
	return Event{Type: EventBudgetThresholdWarning, UserID: userID, Category: category, CurrentTotal: currentTotal, BudgetLimit: budgetLimit}
}

// Notifier delivers advisory events to an external collaborator (log, email
// gateway, message broker). Implementations must be safe for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, event Event) error
}
