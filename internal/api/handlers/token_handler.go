// filepath: internal/api/handlers/token_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"shopfront/internal/logging"
)

// TokenRequest is the login payload for the token endpoint.
type TokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued access token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// @Summary Issue an access token
// @Description Exchanges the admin credentials for a short-lived JWT.
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials  body  TokenRequest  true  "Admin credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request payload"
// @Failure 401 {object} ErrorResponse "Authentication failed"
// @Router /api/token [post]
func (h *Handlers) GetToken(w http.ResponseWriter, r *http.Request) {
	var payload TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.Creds.Verify(payload.Username, payload.Password); err != nil {
		logging.Log.Warnf("Token request rejected: %v", err)
		respondWithError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	token, err := h.Token.GenerateToken(payload.Username)
	if err != nil {
		logging.Log.Errorf("Failed to generate token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to generate token.")
		return
	}
	respondWithJSON(w, http.StatusOK, TokenResponse{AccessToken: token})
}
