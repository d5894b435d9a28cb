package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/httputil"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// userKey is the context key for the authenticated user.
const userKey contextKey = "user"

// Authenticate reads the X-User-ID and X-User-Role headers (injected by the
// edge gateway after session validation) and stores the resolved user in the
// request context. Requests without an identity are rejected with 401.
//
// The user store is consulted so downstream handlers get the display name and
// the authoritative role; the header role is only a fallback for identities
// the store does not know.
func Authenticate(users repository.UserRepository, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := r.Header.Get("X-User-ID")
			if uid == "" {
				httputil.WriteJSON(w, http.StatusUnauthorized, httputil.Response{
					Error: &httputil.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
				})
				return
			}

			user, err := users.GetByID(r.Context(), uid)
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					httputil.WriteError(w, r, err, logger)
					return
				}
				role := r.Header.Get("X-User-Role")
				if role != domain.RoleAdmin {
					role = domain.RoleCustomer
				}
				user = &domain.User{ID: uid, Role: role}
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose authenticated user does not hold the
// admin role. It must be mounted after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok || !user.IsAdmin() {
			httputil.WriteJSON(w, http.StatusForbidden, httputil.Response{
				Error: &httputil.ErrorResponse{Code: "FORBIDDEN", Message: "admin access required"},
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// userFromContext extracts the authenticated user from the request context.
func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userKey).(*domain.User)
	return user, ok && user != nil
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnsupportedMediaType)
				_, _ = w.Write([]byte(`{"error":{"code":"UNSUPPORTED_MEDIA_TYPE","message":"Content-Type must be application/json"}}`))
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
