package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/eduliv/eduliv-go/internal/crypto"
	"github.com/eduliv/eduliv-go/internal/session"
)

type contextKey string

const userIDKey contextKey = "userID"

// SessionAuth returns middleware that validates the session token carried in
// the session cookie and stores the user ID in the request context.
func SessionAuth(cookieName, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := session.NewJar(w, r).Get(cookieName)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := crypto.VerifySession(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, kind string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{"success": false, "error": kind})
}
