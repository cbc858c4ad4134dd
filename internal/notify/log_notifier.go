// internal/notify/log_notifier.go
package notify

import (
	"context"
	"log/slog"
)

// LogNotifier writes events to the structured log. It is the default sink
// when no message broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the event at info level. It never fails.
func (n *LogNotifier) Notify(ctx context.Context, event Event) error {
	attrs := []any{
		"type", string(event.Type),
		"user_id", event.UserID,
	}
	switch event.Type {
	case EventGoalAchieved:
		attrs = append(attrs, "goal", event.GoalName, "target_amount", event.TargetAmount.StringFixed(2))
	case EventGoalDeadlinePassed:
		attrs = append(attrs, "goal", event.GoalName)
	case EventBudgetThresholdWarning:
		attrs = append(attrs,
			"category", event.Category,
			"current_total", event.CurrentTotal.StringFixed(2),
			"budget_limit", event.BudgetLimit.StringFixed(2))
	}
	n.logger.InfoContext(ctx, "ledger notification", attrs...)
	return nil
}
