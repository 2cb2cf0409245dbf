// filepath: internal/api/handlers/banner_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"shopfront/internal/models"
)

// @Summary List banners
// @Tags banner
// @Produce  json
// @Success 200 {array} models.Banner
// @Security BasicAuth
// @Router /api/admin/banners [get]
func (h *Handlers) GetBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.Banner.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, banners)
}

// @Summary Get a banner
// @Tags banner
// @Produce  json
// @Param   id  path  int  true  "Banner ID"
// @Success 200 {object} models.Banner
// @Failure 404 {object} ErrorResponse "Banner not found"
// @Security BasicAuth
// @Router /api/admin/banners/{id} [get]
func (h *Handlers) GetBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid banner ID")
		return
	}
	banner, err := h.Banner.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, banner)
}

// @Summary Create a banner
// @Description Creates a rotating banner. At least one image and one display option are required.
// @Tags banner
// @Accept  json
// @Produce  json
// @Param   banner  body  models.BannerPayload  true  "Banner fields"
// @Success 201 {object} models.Banner
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 507 {object} QuotaErrorResponse "Storage quota exceeded"
// @Security BasicAuth
// @Router /api/admin/banners [post]
func (h *Handlers) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var payload models.BannerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	banner, err := h.Banner.Create(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, banner)
}

// @Summary Update a banner
// @Tags banner
// @Accept  json
// @Produce  json
// @Param   id      path  int                   true  "Banner ID"
// @Param   banner  body  models.BannerPayload  true  "Banner fields"
// @Success 200 {object} models.Banner
// @Failure 404 {object} ErrorResponse "Banner not found"
// @Security BasicAuth
// @Router /api/admin/banners/{id} [put]
func (h *Handlers) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid banner ID")
		return
	}
	var payload models.BannerPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	banner, err := h.Banner.Update(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, banner)
}

// @Summary Delete a banner
// @Tags banner
// @Produce  json
// @Param   id  path  int  true  "Banner ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Banner not found"
// @Security BasicAuth
// @Router /api/admin/banners/{id} [delete]
func (h *Handlers) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid banner ID")
		return
	}
	if err := h.Banner.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Banner deleted"})
}
