// filepath: internal/api/handlers/settings_handler.go
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"shopfront/internal/models"
)

// @Summary Get the full config document
// @Tags settings
// @Produce  json
// @Success 200 {object} models.Document
// @Security BasicAuth
// @Router /api/admin/settings [get]
func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := h.Settings.Get()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// @Summary Save the settings tab
// @Description Applies logo, site metadata, navigation, banners and contact info as one unit. Omitted blocks are left unchanged.
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   settings  body  models.SettingsPayload  true  "Settings blocks"
// @Success 200 {object} models.Document
// @Failure 507 {object} QuotaErrorResponse "Storage quota exceeded"
// @Security BasicAuth
// @Router /api/admin/settings [put]
func (h *Handlers) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload models.SettingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	doc, err := h.Settings.Update(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, doc)
}

// languageRequest is the payload for the default language endpoint.
type languageRequest struct {
	Language string `json:"language"`
}

// @Summary Set the default language
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   language  body  languageRequest  true  "en or km"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Unsupported language"
// @Security BasicAuth
// @Router /api/admin/settings/language [put]
func (h *Handlers) SetDefaultLanguage(w http.ResponseWriter, r *http.Request) {
	var payload languageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := h.Settings.SetDefaultLanguage(payload.Language); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Default language updated"})
}

// flagRequest is the payload for the language flag endpoint.
type flagRequest struct {
	Icon string `json:"icon"`
}

// @Summary Set a language flag icon
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   lang  path  string       true  "Language code"
// @Param   flag  body  flagRequest  true  "Flag icon (emoji, URL or data URI)"
// @Success 200 {object} MessageResponse
// @Security BasicAuth
// @Router /api/admin/settings/flags/{lang} [put]
func (h *Handlers) SetLanguageFlag(w http.ResponseWriter, r *http.Request) {
	var payload flagRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := h.Settings.SetLanguageFlag(mux.Vars(r)["lang"], payload.Icon); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Flag updated"})
}

// @Summary Remove a language flag icon
// @Tags settings
// @Produce  json
// @Param   lang  path  string  true  "Language code"
// @Success 200 {object} MessageResponse
// @Security BasicAuth
// @Router /api/admin/settings/flags/{lang} [delete]
func (h *Handlers) DeleteLanguageFlag(w http.ResponseWriter, r *http.Request) {
	if err := h.Settings.DeleteLanguageFlag(mux.Vars(r)["lang"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Flag removed"})
}

// @Summary Reset all language flag icons
// @Tags settings
// @Produce  json
// @Success 200 {object} MessageResponse
// @Security BasicAuth
// @Router /api/admin/settings/flags [delete]
func (h *Handlers) ResetLanguageFlags(w http.ResponseWriter, r *http.Request) {
	if err := h.Settings.ResetLanguageFlags(); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Flags reset"})
}

// @Summary Upload a translation file
// @Description Replaces the translation table. A file with any malformed entry is rejected wholesale.
// @Tags settings
// @Accept  json
// @Produce  json
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid language file"
// @Security BasicAuth
// @Router /api/admin/settings/translations [put]
func (h *Handlers) UploadTranslations(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := h.Settings.UploadTranslations(raw); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Translations updated"})
}

// @Summary Reset translations to the built-in strings
// @Tags settings
// @Produce  json
// @Success 200 {object} MessageResponse
// @Security BasicAuth
// @Router /api/admin/settings/translations [delete]
func (h *Handlers) ResetTranslations(w http.ResponseWriter, r *http.Request) {
	if err := h.Settings.ResetTranslations(); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Translations reset"})
}
