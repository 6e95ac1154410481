// internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/foodyhq/backend/internal/domain"
	"github.com/foodyhq/backend/internal/model"
	"github.com/foodyhq/backend/internal/service"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type userContextKey string

const currentUserKey userContextKey = "foody_current_user"

// CurrentUser returns the authenticated user stored by AuthMiddleware.
func CurrentUser(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*model.User)
	return user, ok
}

// LegacyKeyHeader is the header the old merchant client replays its stored
// api_key in. The key is a session token, so it verifies like any other.
const LegacyKeyHeader = "X-Foody-Key"

// AuthMiddleware resolves the acting user from the session cookie, a bearer
// header, or the legacy key header, and stores it in the request context.
// Every failure mode the guard collapses surfaces as the same generic 401.
func AuthMiddleware(authz *service.AuthzService, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authz.ResolveCurrentUser(r.Context(), extractToken(r, cookieName))
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					respondWithError(w, http.StatusUnauthorized, "unauthenticated")
					return
				}
				slog.ErrorContext(r.Context(), "resolving current user", "error", err,
					"requestID", chimw.GetReqID(r.Context()))
				respondWithError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return r.Header.Get(LegacyKeyHeader)
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
