// filepath: internal/api/handlers/section_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shopfront/internal/models"
)

// @Summary List custom sections
// @Tags section
// @Produce  json
// @Success 200 {array} models.CustomSection
// @Security BasicAuth
// @Router /api/admin/sections [get]
func (h *Handlers) GetSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Section.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sections)
}

// @Summary Create a custom section
// @Tags section
// @Accept  json
// @Produce  json
// @Param   section  body  models.SectionPayload  true  "Section fields"
// @Success 201 {object} models.CustomSection
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BasicAuth
// @Router /api/admin/sections [post]
func (h *Handlers) CreateSection(w http.ResponseWriter, r *http.Request) {
	var payload models.SectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	section, err := h.Section.Create(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, section)
}

// @Summary Update a custom section
// @Description Edits a section's settings. Its items are kept as they are.
// @Tags section
// @Accept  json
// @Produce  json
// @Param   id       path  int                    true  "Section ID"
// @Param   section  body  models.SectionPayload  true  "Section fields"
// @Success 200 {object} models.CustomSection
// @Failure 404 {object} ErrorResponse "Section not found"
// @Security BasicAuth
// @Router /api/admin/sections/{id} [put]
func (h *Handlers) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section ID")
		return
	}
	var payload models.SectionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	section, err := h.Section.Update(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, section)
}

// @Summary Show or hide a custom section
// @Tags section
// @Produce  json
// @Param   id  path  int  true  "Section ID"
// @Success 200 {object} models.CustomSection
// @Failure 404 {object} ErrorResponse "Section not found"
// @Security BasicAuth
// @Router /api/admin/sections/{id}/toggle [post]
func (h *Handlers) ToggleSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section ID")
		return
	}
	section, err := h.Section.Toggle(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, section)
}

// @Summary Delete a custom section
// @Tags section
// @Produce  json
// @Param   id  path  int  true  "Section ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Section not found"
// @Security BasicAuth
// @Router /api/admin/sections/{id} [delete]
func (h *Handlers) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section ID")
		return
	}
	if err := h.Section.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Section deleted"})
}

// sectionItemIDs extracts the {id} and {itemId} path variables.
func sectionItemIDs(r *http.Request) (int, int, bool) {
	vars := mux.Vars(r)
	sectionID, err := strconv.Atoi(vars["id"])
	if err != nil {
		return 0, 0, false
	}
	itemID, err := strconv.Atoi(vars["itemId"])
	if err != nil {
		return 0, 0, false
	}
	return sectionID, itemID, true
}

// @Summary Add a section item
// @Tags section
// @Accept  json
// @Produce  json
// @Param   id    path  int                        true  "Section ID"
// @Param   item  body  models.SectionItemPayload  true  "Item fields"
// @Success 201 {object} models.SectionItem
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Section not found"
// @Security BasicAuth
// @Router /api/admin/sections/{id}/items [post]
func (h *Handlers) CreateSectionItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section ID")
		return
	}
	var payload models.SectionItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := h.Section.AddItem(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

// @Summary Update a section item
// @Tags section
// @Accept  json
// @Produce  json
// @Param   id      path  int                        true  "Section ID"
// @Param   itemId  path  int                        true  "Item ID"
// @Param   item    body  models.SectionItemPayload  true  "Item fields"
// @Success 200 {object} models.SectionItem
// @Failure 404 {object} ErrorResponse "Section or item not found"
// @Security BasicAuth
// @Router /api/admin/sections/{id}/items/{itemId} [put]
func (h *Handlers) UpdateSectionItem(w http.ResponseWriter, r *http.Request) {
	sectionID, itemID, ok := sectionItemIDs(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section or item ID")
		return
	}
	var payload models.SectionItemPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	item, err := h.Section.UpdateItem(sectionID, itemID, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// @Summary Show or hide a section item
// @Tags section
// @Produce  json
// @Param   id      path  int  true  "Section ID"
// @Param   itemId  path  int  true  "Item ID"
// @Success 200 {object} models.SectionItem
// @Failure 404 {object} ErrorResponse "Section or item not found"
// @Security BasicAuth
// @Router /api/admin/sections/{id}/items/{itemId}/toggle [post]
func (h *Handlers) ToggleSectionItem(w http.ResponseWriter, r *http.Request) {
	sectionID, itemID, ok := sectionItemIDs(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section or item ID")
		return
	}
	item, err := h.Section.ToggleItem(sectionID, itemID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// @Summary Delete a section item
// @Tags section
// @Produce  json
// @Param   id      path  int  true  "Section ID"
// @Param   itemId  path  int  true  "Item ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Section or item not found"
// @Security BasicAuth
// @Router /api/admin/sections/{id}/items/{itemId} [delete]
func (h *Handlers) DeleteSectionItem(w http.ResponseWriter, r *http.Request) {
	sectionID, itemID, ok := sectionItemIDs(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid section or item ID")
		return
	}
	if err := h.Section.DeleteItem(sectionID, itemID); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Item deleted"})
}

// @Summary Update a built-in section's settings
// @Description Patches one of the built-in storefront sections (promotion, event, products, problem).
// @Tags section
// @Accept  json
// @Produce  json
// @Param   key      path  string                        true  "Section key"
// @Param   setting  body  models.SectionSettingPayload  true  "Fields to change"
// @Success 200 {object} models.SectionSetting
// @Security BasicAuth
// @Router /api/admin/section-settings/{key} [patch]
func (h *Handlers) UpdateSectionSetting(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	var payload models.SectionSettingPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	setting, err := h.Section.UpdateSetting(key, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, setting)
}
