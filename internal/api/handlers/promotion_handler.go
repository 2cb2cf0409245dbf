// filepath: internal/api/handlers/promotion_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"shopfront/internal/models"
)

// @Summary List promotions
// @Tags promotion
// @Produce  json
// @Success 200 {array} models.Promotion
// @Security BasicAuth
// @Router /api/admin/promotions [get]
func (h *Handlers) GetPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := h.Promotion.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, promotions)
}

// @Summary Get a promotion
// @Tags promotion
// @Produce  json
// @Param   id  path  int  true  "Promotion ID"
// @Success 200 {object} models.Promotion
// @Failure 404 {object} ErrorResponse "Promotion not found"
// @Security BasicAuth
// @Router /api/admin/promotions/{id} [get]
func (h *Handlers) GetPromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid promotion ID")
		return
	}
	promotion, err := h.Promotion.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, promotion)
}

// @Summary Create a promotion
// @Description Creates a promotion. The display price is derived from the original price and the discount percentage.
// @Tags promotion
// @Accept  json
// @Produce  json
// @Param   promotion  body  models.PromotionPayload  true  "Promotion fields"
// @Success 201 {object} models.Promotion
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 507 {object} QuotaErrorResponse "Storage quota exceeded"
// @Security BasicAuth
// @Router /api/admin/promotions [post]
func (h *Handlers) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var payload models.PromotionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	promotion, err := h.Promotion.Create(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, promotion)
}

// @Summary Update a promotion
// @Tags promotion
// @Accept  json
// @Produce  json
// @Param   id         path  int                      true  "Promotion ID"
// @Param   promotion  body  models.PromotionPayload  true  "Promotion fields"
// @Success 200 {object} models.Promotion
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Promotion not found"
// @Security BasicAuth
// @Router /api/admin/promotions/{id} [put]
func (h *Handlers) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid promotion ID")
		return
	}
	var payload models.PromotionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	promotion, err := h.Promotion.Update(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, promotion)
}

// @Summary Delete a promotion
// @Tags promotion
// @Produce  json
// @Param   id  path  int  true  "Promotion ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Promotion not found"
// @Security BasicAuth
// @Router /api/admin/promotions/{id} [delete]
func (h *Handlers) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid promotion ID")
		return
	}
	if err := h.Promotion.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Promotion deleted"})
}
