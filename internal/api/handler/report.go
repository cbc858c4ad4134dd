// internal/api/handler/report.go
package handler

import (
	"log/slog"
	"net/http"

	"fintrack-ledger/internal/service"
)

// ReportHandler serves the combined income/expense report and its CSV
// export.
type ReportHandler struct {
	service service.ReportService
	logger  *slog.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(svc service.ReportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{service: svc, logger: logger}
}

// Get returns the report as JSON rows.
// GET /report
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	rows, err := h.service.BuildReport(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, rows)
}

// GetCSV streams the report as a CSV attachment.
// GET /report/csv
func (h *ReportHandler) GetCSV(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="report.csv"`)
	if err := h.service.WriteCSV(r.Context(), userID, w); err != nil {
		// Headers may already be out; log instead of re-writing the status.
		h.logger.Error("Failed to stream CSV report", "user_id", userID, "error", err)
	}
}
