// internal/service/report_service.go
package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"fintrack-ledger/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportRow is one line of the combined income/expense report: the
// transaction enriched with the owner's username, current wallet balance and
// category name.
type ReportRow struct {
	ID              int64           `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	Date            time.Time       `json:"date"`
	Comments        *string         `json:"comments"`
	Username        string          `json:"username"`
	Balance         decimal.Decimal `json:"balance"`
	Category        string          `json:"category"`
	TransactionType string          `json:"transaction_type"`
}

// ReportService assembles the combined transaction report and its CSV
// export. It reads engine results only and never mutates state.
type ReportService interface {
	BuildReport(ctx context.Context, userID int64) ([]ReportRow, error)
	WriteCSV(ctx context.Context, userID int64, w io.Writer) error
}

// reportService implements the ReportService interface.
type reportService struct {
	dbExecutor   repository.DBExecutor
	userRepo     repository.UserRepository
	walletRepo   repository.WalletRepository
	txRepo       repository.TransactionRepository
	categoryRepo repository.CategoryRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	walletRepo repository.WalletRepository,
	txRepo repository.TransactionRepository,
	categoryRepo repository.CategoryRepository,
) ReportService {
	return &reportService{
		dbExecutor:   dbExecutor,
		userRepo:     userRepo,
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		categoryRepo: categoryRepo,
	}
}

// BuildReport assembles all of a user's transactions as type-tagged rows.
func (s *reportService) BuildReport(ctx context.Context, userID int64) ([]ReportRow, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("build report: failed to get user %d: %w", userID, err)
	}

	wallet, err := s.walletRepo.GetWalletByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("build report: failed to get wallet for user %d: %w", userID, err)
	}

	categories, err := s.categoryRepo.ListCategories(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("build report: failed to list categories: %w", err)
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	transactions, err := s.txRepo.ListAllTransactions(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("build report: failed to list transactions: %w", err)
	}

	rows := make([]ReportRow, 0, len(transactions))
	for _, transaction := range transactions {
		rows = append(rows, ReportRow{
			ID:              transaction.ID,
			Amount:          transaction.Amount,
			Date:            transaction.Date,
			Comments:        transaction.Comments,
			Username:        user.Username,
			Balance:         wallet.Balance,
			Category:        categoryNames[transaction.CategoryID],
			TransactionType: strings.ToLower(string(transaction.Type)),
		})
	}
	return rows, nil
}

// WriteCSV streams the report to w as CSV.
func (s *reportService) WriteCSV(ctx context.Context, userID int64, w io.Writer) error {
	rows, err := s.BuildReport(ctx, userID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"id", "type", "amount", "date", "category", "comments", "username", "balance"}); err != nil {
		return fmt.Errorf("write csv: failed to write header: %w", err)
	}

	for _, row := range rows {
		comments := ""
		if row.Comments != nil {
			comments = *row.Comments
		}
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.TransactionType,
			row.Amount.StringFixed(2),
			row.Date.Format("2006-01-02"),
			row.Category,
			comments,
			row.Username,
			row.Balance.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv: failed to write row %d: %w", row.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("write csv: failed to flush: %w", err)
	}
	return nil
}
