// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fintrack-ledger/internal/api/handler"
)

// Handlers bundles the per-resource handlers the router mounts.
type Handlers struct {
	Account  *handler.AccountHandler
	Expense  *handler.TransactionHandler
	Income   *handler.TransactionHandler
	Category *handler.CategoryHandler
	Budget   *handler.BudgetHandler
	Goal     *handler.GoalHandler
	Reminder *handler.ReminderHandler
	Report   *handler.ReportHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Registration is the only unauthenticated endpoint.
	r.Post("/users", h.Account.CreateUser)

	// Everything else requires the upstream-provided user identity.
	r.Group(func(r chi.Router) {
		r.Use(handler.RequireUser(logger))

		r.Get("/wallet", h.Account.GetWallet)

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", h.Expense.List)
			r.Post("/", h.Expense.Create)
			r.Get("/{id}", h.Expense.Get)
			r.Put("/{id}", h.Expense.Update)
			r.Delete("/{id}", h.Expense.Delete)
		})

		r.Route("/incomes", func(r chi.Router) {
			r.Get("/", h.Income.List)
			r.Post("/", h.Income.Create)
			r.Get("/{id}", h.Income.Get)
			r.Put("/{id}", h.Income.Update)
			r.Delete("/{id}", h.Income.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Category.List)
			r.Post("/", h.Category.Create)
			r.Get("/{id}", h.Category.Get)
			r.Put("/{id}", h.Category.Update)
			r.Delete("/{id}", h.Category.Delete)
		})

		r.Route("/budgets", func(r chi.Router) {
			r.Get("/", h.Budget.List)
			r.Post("/", h.Budget.Create)
			r.Get("/{id}", h.Budget.Get)
			r.Put("/{id}", h.Budget.Update)
			r.Delete("/{id}", h.Budget.Delete)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Get("/", h.Goal.List)
			r.Post("/", h.Goal.Create)
			r.Get("/{id}", h.Goal.Get)
			r.Put("/{id}", h.Goal.Update)
			r.Delete("/{id}", h.Goal.Delete)
		})

		r.Route("/reminders", func(r chi.Router) {
			r.Get("/", h.Reminder.List)
			r.Post("/", h.Reminder.Create)
			r.Get("/{id}", h.Reminder.Get)
			r.Put("/{id}", h.Reminder.Update)
			r.Delete("/{id}", h.Reminder.Delete)
		})

		r.Get("/report", h.Report.Get)
		r.Get("/report/csv", h.Report.GetCSV)
	})

	return r
}
