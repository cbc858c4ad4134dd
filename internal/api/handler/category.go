// internal/api/handler/category.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fintrack-ledger/internal/service"
	"fintrack-ledger/internal/util"
)

// CategoryHandler handles category CRUD endpoints.
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{service: svc, logger: logger}
}

// CategoryRequest represents the request body for creating or renaming a
// category.
type CategoryRequest struct {
	Name string `json:"name"`
}

// Create adds a user-owned category.
// POST /categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), userID, req.Name)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, category)
}

// List returns all categories visible to the user.
// GET /categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	categories, err := h.service.ListCategories(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, categories)
}

// Get returns one category.
// GET /categories/{id}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	category, err := h.service.GetCategory(r.Context(), userID, id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, category)
}

// Update renames a user-owned category.
// PUT /categories/{id}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	category, err := h.service.RenameCategory(r.Context(), userID, id, req.Name)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, category)
}

// Delete removes a user-owned category.
// DELETE /categories/{id}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	id, err := urlParamID(r, "id")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), userID, id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
