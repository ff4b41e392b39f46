package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const adminKey contextKey = "is_admin"

// AdminSource records how a request was granted admin rights.
type AdminSource string

const (
	AdminByToken   AdminSource = "token"
	AdminByDevMode AdminSource = "dev"
)

// WithAdmin marks the context as carrying admin rights granted by src.
func WithAdmin(ctx context.Context, src AdminSource) context.Context {
	return context.WithValue(ctx, adminKey, src)
}

// AdminFromContext returns how the request was granted admin rights. ok is
// false when it passed no admin middleware.
func AdminFromContext(ctx context.Context) (src AdminSource, ok bool) {
	src, ok = ctx.Value(adminKey).(AdminSource)
	return src, ok
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme is matched case-insensitively.
func BearerToken(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// RequireAdmin rejects requests whose bearer token does not match token.
// The comparison runs in constant time.
func RequireAdmin(token string) func(http.Handler) http.Handler {
	want := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := BearerToken(r)
			if !ok || subtle.ConstantTimeCompare([]byte(got), want) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), AdminByToken)))
		})
	}
}

// DevAdmin grants admin rights to every request. Used when no admin token is
// configured.
func DevAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), AdminByDevMode)))
	})
}

// AdminMiddleware returns RequireAdmin(token), or DevAdmin when token is empty.
func AdminMiddleware(token string) func(http.Handler) http.Handler {
	if token == "" {
		return DevAdmin
	}
	return RequireAdmin(token)
}
