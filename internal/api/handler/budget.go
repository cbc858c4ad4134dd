// internal/api/handler/budget.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/service"
	"fintrack-ledger/internal/util"
)

// BudgetHandler handles budget CRUD endpoints.
type BudgetHandler struct {
	service service.BudgetService
	logger  *slog.Logger
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(svc service.BudgetService, logger *slog.Logger) *BudgetHandler {
	return &BudgetHandler{service: svc, logger: logger}
}

// BudgetRequest represents the request body for creating or updating a
// budget.
type BudgetRequest struct {
	CategoryID int64           `json:"category_id"`
	Amount     decimal.Decimal `json:"amount"`
	StartDate  string          `json:"start_date"` // YYYY-MM-DD
	EndDate    string          `json:"end_date"`   // YYYY-MM-DD
}

// Create validates and adds a budget.
// POST /budgets
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	budget, err := h.service.CreateBudget(r.Context(), userID, req.CategoryID, req.Amount, startDate, endDate)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, budget)
}

// List returns all budgets of the user.
// GET /budgets
func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	budgets, err := h.service.ListBudgets(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, budgets)
}

// Get returns one budget.
// GET /budgets/{id}
func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	budget, err := h.service.GetBudget(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, budget)
}

// Update validates and persists changes to a budget.
// PUT /budgets/{id}
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req BudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	budget := &domain.Budget{
		ID:         id,
		CategoryID: req.CategoryID,
		Amount:     req.Amount,
		StartDate:  startDate,
		EndDate:    endDate,
	}
	updated, err := h.service.UpdateBudget(r.Context(), userID, budget)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, updated)
}

// Delete removes a budget.
// DELETE /budgets/{id}
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteBudget(r.Context(), userID, id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
