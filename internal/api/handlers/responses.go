// filepath: internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopfront/internal/logging"
	"shopfront/internal/services"
	"shopfront/internal/store"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a standard format for simple API messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// QuotaErrorResponse reports a rejected save with enough detail for the admin
// to decide what to trim.
type QuotaErrorResponse struct {
	Error          string         `json:"error"`
	AttemptedBytes int64          `json:"attemptedBytes"`
	QuotaBytes     int64          `json:"quotaBytes"`
	ItemCounts     map[string]int `json:"itemCounts"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithServiceError maps service layer errors onto HTTP status codes.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var quotaErr *store.QuotaError
	switch {
	case errors.Is(err, services.ErrValidation):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, services.ErrForbidden):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrConflict):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.As(err, &quotaErr):
		respondWithJSON(w, http.StatusInsufficientStorage, QuotaErrorResponse{
			Error:          quotaErr.Error(),
			AttemptedBytes: quotaErr.AttemptedBytes,
			QuotaBytes:     quotaErr.QuotaBytes,
			ItemCounts:     quotaErr.ItemCounts,
		})
	default:
		logging.Log.Errorf("Unhandled service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error.")
	}
}
