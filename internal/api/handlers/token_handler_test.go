// filepath: internal/api/handlers/token_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/config"
	"shopfront/internal/services/auth"
)

func newTokenHandlers(t *testing.T) *Handlers {
	t.Helper()
	secret, err := auth.GenerateSecret()
	require.NoError(t, err)
	cfg := &config.Config{JWTSecret: secret}
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	return &Handlers{
		Token: auth.NewTokenService(cfg),
		Creds: auth.Credentials{Username: "admin", PasswordHash: hash},
		Cfg:   cfg,
	}
}

func TestGetToken(t *testing.T) {
	h := newTokenHandlers(t)

	body, _ := json.Marshal(TokenRequest{Username: "admin", Password: "secret123"})
	rr := httptest.NewRecorder()
	h.GetToken(rr, httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)

	// The issued token is accepted by the validator.
	username, err := h.Token.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", username)
}

func TestGetTokenWrongPassword(t *testing.T) {
	h := newTokenHandlers(t)

	body, _ := json.Marshal(TokenRequest{Username: "admin", Password: "wrong"})
	rr := httptest.NewRecorder()
	h.GetToken(rr, httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader(body)))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetTokenBadPayload(t *testing.T) {
	h := newTokenHandlers(t)

	rr := httptest.NewRecorder()
	h.GetToken(rr, httptest.NewRequest(http.MethodPost, "/api/token", bytes.NewReader([]byte(`{nope`))))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
