// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"net/http"
)

// @Summary Health check
// @Description Reports whether the service is up.
// @Tags info
// @Produce  json
// @Success 200 {object} MessageResponse
// @Router /health [get]
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}

// @Summary Service info
// @Description Returns the version, uptime and active storage backend.
// @Tags info
// @Produce  json
// @Success 200 {object} models.Info
// @Failure 500 {object} ErrorResponse
// @Router /api/info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Info.GetInfo()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}
