package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/auth"
)

// Context keys for storing caller identity
type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware enforces bearer-token authentication for protected routes
type AuthMiddleware struct {
	tokens *auth.TokenService
}

// NewAuthMiddleware creates an auth middleware backed by the token service
func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth ensures the request carries a valid bearer token.
// On success the caller's user ID is injected into the request context;
// otherwise the request is rejected with 401.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			handlers.WriteError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] method=%s path=%s error=%v", r.Method, r.URL.Path, err)
			handlers.WriteError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

// OptionalAuth loads the caller's identity when a valid token is present
// but lets anonymous or invalid-token requests through unauthenticated
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

// GetUserID returns the authenticated caller's user ID, or "" for an
// anonymous request
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}

func withUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}
