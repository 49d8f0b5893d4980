package main

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

// demoSessionMiddleware extracts and validates the Bearer demo token and
// injects the session id into context. Expired sessions get a 401 so the UI
// can show its session-expired prompt.
func (a *App) demoSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(authz, "Bearer ")
		sid, err := parseDemoSession(a.cfg.JWTSecret, raw)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the demo session id from context or "" if missing.
func sessionID(r *http.Request) string {
	val := r.Context().Value(sessionIDKey)
	if val == nil {
		return ""
	}
	return val.(string)
}
