// internal/api/handler/auth.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"fintrack-ledger/internal/util"
)

type contextKey string

// userIDKey carries the authenticated user's id through the request context.
const userIDKey contextKey = "userID"

// RequireUser resolves the authenticated user id from the X-User-ID header.
// Authentication itself is delegated to an upstream identity provider; by
// the time a request reaches this service the header is trusted.
func RequireUser(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
			if err != nil || userID <= 0 {
				respondWithError(w, logger, util.ErrUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// userIDFromContext returns the authenticated user id set by RequireUser.
func userIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey).(int64)
	return userID
}
