// internal/api/handler/goal.go
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

// GoalHandler handles savings-goal CRUD endpoints.
type GoalHandler struct {
	service service.GoalService
	logger  *slog.Logger
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(svc service.GoalService, logger *slog.Logger) *GoalHandler {
	return &GoalHandler{service: svc, logger: logger}
}

// GoalRequest represents the request body for creating or updating a goal.
// is_achieved is deliberately absent: the ledger service owns that flag.
type GoalRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	StartDate    string          `json:"start_date"` // YYYY-MM-DD
	EndDate      string          `json:"end_date"`   // YYYY-MM-DD
}

// Create validates and adds a goal.
// POST /goals
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Name == "" {
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

	goal, err := h.service.CreateGoal(r.Context(), userID, req.Name, req.TargetAmount, startDate, endDate)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, goal)
}

// List returns all goals of the user.
// GET /goals
func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	goals, err := h.service.ListGoals(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, goals)
}

// Get returns one goal.
// GET /goals/{id}
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	goal, err := h.service.GetGoal(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, goal)
}

// Update validates and persists changes to a goal.
// PUT /goals/{id}
func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req GoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Name == "" {
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

	goal := &domain.Goal{
		ID:           id,
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
	}
	updated, err := h.service.UpdateGoal(r.Context(), userID, goal)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, updated)
}

// Delete removes a goal.
// DELETE /goals/{id}
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteGoal(r.Context(), userID, id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
