// filepath: internal/api/handlers/category_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"shopfront/internal/models"
)

// @Summary List categories
// @Tags category
// @Produce  json
// @Success 200 {array} models.Category
// @Security BasicAuth
// @Router /api/admin/categories [get]
func (h *Handlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Category.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, categories)
}

// @Summary Create a category
// @Description Creates a category. The ID is normalized to a lowercase slug.
// @Tags category
// @Accept  json
// @Produce  json
// @Param   category  body  models.CategoryPayload  true  "Category fields"
// @Success 201 {object} models.Category
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Category ID already exists"
// @Security BasicAuth
// @Router /api/admin/categories [post]
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload models.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := h.Category.Create(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, category)
}

// @Summary Update a category
// @Description Edits a category, including renaming its ID. The built-in "all" category is immutable.
// @Tags category
// @Accept  json
// @Produce  json
// @Param   id        path  string                  true  "Category ID"
// @Param   category  body  models.CategoryPayload  true  "Category fields"
// @Success 200 {object} models.Category
// @Failure 403 {object} ErrorResponse "Built-in category"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BasicAuth
// @Router /api/admin/categories/{id} [put]
func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var payload models.CategoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	category, err := h.Category.Update(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, category)
}

// @Summary Delete a category
// @Tags category
// @Produce  json
// @Param   id  path  string  true  "Category ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse "Built-in category"
// @Failure 404 {object} ErrorResponse "Category not found"
// @Security BasicAuth
// @Router /api/admin/categories/{id} [delete]
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.Category.Delete(mux.Vars(r)["id"]); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Category deleted"})
}
