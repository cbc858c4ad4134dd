// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack-ledger/internal/api/types"
	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/service"
	"fintrack-ledger/internal/util"
)

// TransactionHandler handles expense and income endpoints. Both resources
// share the same shape and route through the ledger service; the bound
// transaction type picks the variant.
type TransactionHandler struct {
	service service.LedgerService
	txType  domain.TransactionType
	logger  *slog.Logger
}

// NewExpenseHandler creates a TransactionHandler bound to expenses.
func NewExpenseHandler(svc service.LedgerService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{service: svc, txType: domain.TransactionTypeExpense, logger: logger}
}

// NewIncomeHandler creates a TransactionHandler bound to incomes.
func NewIncomeHandler(svc service.LedgerService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{service: svc, txType: domain.TransactionTypeIncome, logger: logger}
}

// TransactionRequest represents the request body for creating or updating
// an expense/income.
type TransactionRequest struct {
	WalletID   int64           `json:"wallet_id"`
	CategoryID int64           `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"` // YYYY-MM-DD
	Comments   *string         `json:"comments"`
}

// Create records a new expense or income.
// POST /expenses | POST /incomes
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	transaction := domain.NewTransaction(userID, req.WalletID, req.CategoryID, h.txType, req.Amount, date, req.Comments)
	wallet, err := h.service.CreateTransaction(r.Context(), transaction)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"transaction": transaction,
		"balance":     wallet.Balance,
	})
}

// List returns the user's transactions of the bound type, paginated.
// GET /expenses | GET /incomes
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	limit, offset := paginationParams(r)

	transactions, totalCount, err := h.service.ListTransactions(r.Context(), userID, h.txType, limit, offset)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.PaginatedResponse[domain.Transaction]{
		Data:       transactions,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}

// Get returns one transaction.
// GET /expenses/{id} | GET /incomes/{id}
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	transaction, err := h.service.GetTransaction(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if transaction.Type != h.txType {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, transaction)
}

// Update edits a transaction's amount, category, date or comments. The
// wallet balance moves by the signed amount delta.
// PUT /expenses/{id} | PUT /incomes/{id}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	// An expense route must not edit an income, and vice versa.
	existing, err := h.service.GetTransaction(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if existing.Type != h.txType {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	changes := &domain.Transaction{
		ID:         id,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		Date:       date,
		Comments:   req.Comments,
	}
	wallet, err := h.service.UpdateTransaction(r.Context(), userID, changes)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"transaction_id": id,
		"balance":        wallet.Balance,
	})
}

// Delete removes a transaction and reverses its balance contribution.
// DELETE /expenses/{id} | DELETE /incomes/{id}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	// Same route/type guard as Get and Update.
	existing, err := h.service.GetTransaction(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if existing.Type != h.txType {
		respondWithError(w, h.logger, util.ErrNotFound)
		return
	}

	wallet, err := h.service.DeleteTransaction(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, map[string]interface{}{
		"transaction_id": id,
		"balance":        wallet.Balance,
	})
}
