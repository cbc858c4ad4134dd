// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "fintrack-ledger/internal/api"
	"fintrack-ledger/internal/api/handler"
	"fintrack-ledger/internal/config"
	"fintrack-ledger/internal/notify"
	"fintrack-ledger/internal/repository"
	"fintrack-ledger/internal/repository/postgres"
	"fintrack-ledger/internal/service"
	"fintrack-ledger/internal/util"
	"fintrack-ledger/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository        repository.UserRepository
	WalletRepository      repository.WalletRepository
	TransactionRepository repository.TransactionRepository
	CategoryRepository    repository.CategoryRepository
	BudgetRepository      repository.BudgetRepository
	GoalRepository        repository.GoalRepository
	ReminderRepository    repository.ReminderRepository

	// Notifications
	Notifier     notify.Notifier
	amqpNotifier *notify.AMQPNotifier

	// Services
	AccountService  service.AccountService
	LedgerService   service.LedgerService
	CategoryService service.CategoryService
	BudgetService   service.BudgetService
	GoalService     service.GoalService
	ReminderService service.ReminderService
	ReportService   service.ReportService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.WalletRepository = postgres.NewWalletRepository(app.DB)
	app.TransactionRepository = postgres.NewTransactionRepository(app.DB)
	app.CategoryRepository = postgres.NewCategoryRepository(app.DB)
	app.BudgetRepository = postgres.NewBudgetRepository(app.DB)
	app.GoalRepository = postgres.NewGoalRepository(app.DB)
	app.ReminderRepository = postgres.NewReminderRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Notifier (AMQP when configured, log otherwise)
	if app.Config.AMQPURL != "" {
		amqpNotifier, err := notify.NewAMQPNotifier(app.Config.AMQPURL)
		if err != nil {
			return fmt.Errorf("failed to initialize AMQP notifier: %w", err)
		}
		app.amqpNotifier = amqpNotifier
		app.Notifier = amqpNotifier
		app.Logger.Info("AMQP notifier initialized.")
	} else {
		app.Notifier = notify.NewLogNotifier(app.Logger)
		app.Logger.Info("Log notifier initialized.")
	}

	// 6. Initialize Services
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.AccountService = service.NewAccountService(
		app.DB,
		app.DB,
		app.UserRepository,
		app.WalletRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.LedgerService = service.NewLedgerService(
		app.DB,
		app.DB,
		app.WalletRepository,
		app.TransactionRepository,
		app.CategoryRepository,
		app.BudgetRepository,
		app.GoalRepository,
		app.Notifier,
		app.Logger,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.CategoryService = service.NewCategoryService(app.DB, app.CategoryRepository)
	app.BudgetService = service.NewBudgetService(app.DB, app.BudgetRepository, app.CategoryRepository)
	app.GoalService = service.NewGoalService(app.DB, app.GoalRepository)
	app.ReminderService = service.NewReminderService(app.DB, app.ReminderRepository)
	app.ReportService = service.NewReportService(app.DB, app.UserRepository, app.WalletRepository, app.TransactionRepository, app.CategoryRepository)
	app.Logger.Info("Services initialized.")

	// 7. Seed global default categories (idempotent)
	if err := app.CategoryService.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed default categories: %w", err)
	}
	app.Logger.Info("Default categories seeded.")

	// 8. Initialize HTTP Handlers and Router
	handlers := router.Handlers{
		Account:  handler.NewAccountHandler(app.AccountService, app.Logger),
		Expense:  handler.NewExpenseHandler(app.LedgerService, app.Logger),
		Income:   handler.NewIncomeHandler(app.LedgerService, app.Logger),
		Category: handler.NewCategoryHandler(app.CategoryService, app.Logger),
		Budget:   handler.NewBudgetHandler(app.BudgetService, app.Logger),
		Goal:     handler.NewGoalHandler(app.GoalService, app.Logger),
		Reminder: handler.NewReminderHandler(app.ReminderService, app.Logger),
		Report:   handler.NewReportHandler(app.ReportService, app.Logger),
	}
	app.HTTPHandler = router.NewRouter(handlers, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.amqpNotifier != nil {
		if err := app.amqpNotifier.Close(); err != nil {
			app.Logger.Error("Failed to close AMQP notifier", "error", err)
		} else {
			app.Logger.Info("AMQP notifier closed.")
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
