// internal/api/handler/reminder.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fintrack-ledger/internal/domain"
	"fintrack-ledger/internal/service"
	"fintrack-ledger/internal/util"
)

// ReminderHandler handles reminder CRUD endpoints.
type ReminderHandler struct {
	service service.ReminderService
	logger  *slog.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(svc service.ReminderService, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{service: svc, logger: logger}
}

// ReminderRequest represents the request body for creating or updating a
// reminder.
type ReminderRequest struct {
	Title    string  `json:"title"`
	Note     *string `json:"note"`
	RemindAt string  `json:"remind_at"` // YYYY-MM-DD
}

// Create adds a reminder.
// POST /reminders
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	remindAt, err := parseDate(req.RemindAt)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	reminder, err := h.service.CreateReminder(r.Context(), userID, req.Title, req.Note, remindAt)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, reminder)
}

// List returns all reminders of the user.
// GET /reminders
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	reminders, err := h.service.ListReminders(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, reminders)
}

// Get returns one reminder.
// GET /reminders/{id}
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	reminder, err := h.service.GetReminder(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, reminder)
}

// Update persists changes to a reminder.
// PUT /reminders/{id}
func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req ReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	remindAt, err := parseDate(req.RemindAt)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	reminder := &domain.Reminder{
		ID:       id,
		Title:    req.Title,
		Note:     req.Note,
		RemindAt: remindAt,
	}
	updated, err := h.service.UpdateReminder(r.Context(), userID, reminder)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, updated)
}

// Delete removes a reminder.
// DELETE /reminders/{id}
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteReminder(r.Context(), userID, id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
