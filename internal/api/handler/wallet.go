// internal/api/handler/wallet.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fintrack-ledger/internal/service"
	"fintrack-ledger/internal/util"
)

// AccountHandler handles user registration and wallet reads.
type AccountHandler struct {
	service service.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(svc service.AccountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateUserRequest represents the request body for user registration.
type CreateUserRequest struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	LastName *string `json:"last_name"`
}

// CreateUser registers a user together with their zero-balance wallet.
// POST /users
func (h *AccountHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	if req.Email == "" || req.Username == "" {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	user, wallet, err := h.service.CreateUserAndWallet(r.Context(), req.Email, req.Username, req.LastName)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, map[string]interface{}{
		"user":   user,
		"wallet": wallet,
	})
}

// GetWallet returns the authenticated user's wallet.
// GET /wallet
func (h *AccountHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	wallet, err := h.service.GetWallet(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, wallet)
}
