// filepath: internal/api/handlers/bridge_handler.go
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
)

// ImportRequest carries a config.js snippet to merge into the document.
type ImportRequest struct {
	Snippet string `json:"snippet"`
}

// @Summary Export the document as config.js
// @Description Renders the current document as a self-contained config.js snippet.
// @Tags bridge
// @Produce  plain
// @Success 200 {string} string
// @Security BasicAuth
// @Router /api/admin/export [get]
func (h *Handlers) ExportConfig(w http.ResponseWriter, r *http.Request) {
	snippet, err := h.Bridge.Export()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Content-Disposition", `attachment; filename="config.js"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(snippet))
}

// @Summary Import a config.js snippet
// @Description Extracts the CONFIG object from the snippet and merges it over the current document, field by field at the top level. A snippet that cannot be parsed changes nothing.
// @Tags bridge
// @Accept  json
// @Produce  json
// @Param   snippet  body  ImportRequest  true  "config.js content"
// @Success 200 {object} models.Document
// @Failure 400 {object} ErrorResponse "No CONFIG object or invalid JSON"
// @Failure 507 {object} QuotaErrorResponse "Storage quota exceeded"
// @Security BasicAuth
// @Router /api/admin/import [post]
func (h *Handlers) ImportConfig(w http.ResponseWriter, r *http.Request) {
	var payload ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	doc, err := h.Bridge.Import(payload.Snippet)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// @Summary Download a backup
// @Tags bridge
// @Produce  json
// @Success 200 {object} bridge.BackupPayload
// @Security BasicAuth
// @Router /api/admin/backup [get]
func (h *Handlers) DownloadBackup(w http.ResponseWriter, r *http.Request) {
	payload, err := h.Bridge.Backup()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="backup.json"`)
	respondWithJSON(w, http.StatusOK, payload)
}

// @Summary Restore from a backup
// @Description Replaces the whole document with the config block of an uploaded backup file.
// @Tags bridge
// @Accept  json
// @Produce  json
// @Success 200 {object} models.Document
// @Failure 400 {object} ErrorResponse "Invalid backup file"
// @Security BasicAuth
// @Router /api/admin/backup [post]
func (h *Handlers) RestoreBackup(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	doc, err := h.Bridge.Restore(raw)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}
