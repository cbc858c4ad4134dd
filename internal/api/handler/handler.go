// internal/api/handler/handler.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"fintrack-ledger/internal/api/types"
	"fintrack-ledger/internal/util"
)

// DefaultTimeout bounds request handling; applied by router middleware.
const DefaultTimeout = 30 * time.Second

// dateLayout is the wire format for booking dates.
const dateLayout = "2006-01-02"

// respondWithJSON writes a JSON response with the given status code.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors onto HTTP statuses. The budget-cap
// rejection keeps its full message (category, total, limit) so the caller
// can show it to the user.
func respondWithError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	var budgetErr *util.BudgetExceededError
	switch {
	case errors.As(err, &budgetErr):
		statusCode = http.StatusUnprocessableEntity
		message = budgetErr.Error()
	case util.IsError(err, util.ErrInvalidInput), util.IsError(err, util.ErrInvalidPeriod):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = "Missing or invalid user identity"
	case util.IsError(err, util.ErrNotFound), util.IsError(err, util.ErrWalletNotFound),
		util.IsError(err, util.ErrUserNotFound), util.IsError(err, util.ErrCategoryNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrDuplicateEntry):
		statusCode = http.StatusConflict
		message = "Duplicate entry"
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(w, logger, statusCode, types.ErrorResponse{Error: message})
}

// urlParamID parses a numeric URL parameter.
func urlParamID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, util.ErrInvalidInput
	}
	return id, nil
}

// parseDate parses a YYYY-MM-DD request field.
func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, util.ErrInvalidInput
	}
	return date, nil
}

// paginationParams extracts limit/offset query params with sane defaults.
func paginationParams(r *http.Request) (limit, offset int) {
	limit = 20
	offset = 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
