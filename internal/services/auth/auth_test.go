// filepath: internal/services/auth/auth_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	secret, err := GenerateSecret()
	require.NoError(t, err)
	return &config.Config{JWTSecret: secret}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(testConfig(t))

	token, err := svc.GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenService(testConfig(t)).GenerateToken("admin")
	require.NoError(t, err)

	_, err = NewTokenService(testConfig(t)).ValidateToken(token)
	assert.Error(t, err)
}

func TestCredentialsVerify(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	creds := Credentials{Username: "admin", PasswordHash: hash}

	assert.NoError(t, creds.Verify("admin", "secret123"))
	assert.Error(t, creds.Verify("admin", "wrong"))
	assert.Error(t, creds.Verify("root", "secret123"))
}

func TestAuthMiddleware(t *testing.T) {
	cfg := testConfig(t)
	tokens := NewTokenService(cfg)
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	mw := NewMiddleware(Credentials{Username: "admin", PasswordHash: hash}, tokens)

	handler := mw.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// No header.
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")

	// Valid Bearer token.
	token, err := tokens.GenerateToken("admin")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Garbage Bearer token.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// Valid Basic auth.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("admin", "secret123")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Wrong password.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.SetBasicAuth("admin", "wrong")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
