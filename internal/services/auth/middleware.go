// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"shopfront/internal/logging"
)

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Credentials holds the single admin account.
type Credentials struct {
	Username     string
	PasswordHash string // bcrypt
}

// Verify checks a username/password pair against the stored hash.
func (c Credentials) Verify(username, password string) error {
	if username != c.Username {
		return fmt.Errorf("user '%s' not found", username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("password comparison failed for user '%s'", username)
	}
	return nil
}

// Middleware provides authentication middleware for the admin routes.
type Middleware struct {
	Creds Credentials
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(creds Credentials, token TokenService) *Middleware {
	return &Middleware{
		Creds: creds,
		Token: token,
	}
}

// AuthMiddleware checks for a valid JWT Bearer token OR Basic Auth.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			// Tell the client we accept both
			w.Header().Set("WWW-Authenticate", `Basic realm="restricted", Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		var username string

		// 1. Check for Bearer Token (JWT)
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			var err error
			username, err = m.Token.ValidateToken(tokenString)
			if err != nil {
				logging.Log.Warnf("AuthMiddleware: Invalid Bearer token: %v", err)
				if strings.Contains(err.Error(), "expired") {
					writeError(w, http.StatusUnauthorized, "Token expired")
				} else {
					writeError(w, http.StatusUnauthorized, "Invalid token")
				}
				return
			}
		} else if strings.HasPrefix(authHeader, "Basic ") {
			// 2. Fallback to Basic Auth
			user, password, ok := r.BasicAuth()
			if !ok {
				writeError(w, http.StatusUnauthorized, "Invalid Basic Auth header")
				return
			}
			if err := m.Creds.Verify(user, password); err != nil {
				logging.Log.Warnf("AuthMiddleware: Invalid Basic Auth: %v", err)
				writeError(w, http.StatusUnauthorized, "Authentication failed")
				return
			}
			username = user
		} else {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		ctx := context.WithValue(r.Context(), "user", username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
