// filepath: internal/api/handlers/product_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shopfront/internal/logging"
	"shopfront/internal/models"
)

// pathID extracts the numeric {id} path variable.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

// @Summary List products
// @Tags product
// @Produce  json
// @Success 200 {array} models.Product
// @Security BasicAuth
// @Router /api/admin/products [get]
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Product.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, products)
}

// @Summary Get a product
// @Tags product
// @Produce  json
// @Param   id  path  int  true  "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BasicAuth
// @Router /api/admin/products/{id} [get]
func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	product, err := h.Product.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

// @Summary Create a product
// @Description Creates a product. Missing bilingual fields borrow the other language.
// @Tags product
// @Accept  json
// @Produce  json
// @Param   product  body  models.ProductPayload  true  "Product fields"
// @Success 201 {object} models.Product
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 507 {object} QuotaErrorResponse "Storage quota exceeded"
// @Security BasicAuth
// @Router /api/admin/products [post]
func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var payload models.ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.Log.Warnf("Failed to decode request body: %v", err)
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := h.Product.Create(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, product)
}

// @Summary Update a product
// @Tags product
// @Accept  json
// @Produce  json
// @Param   id       path  int                    true  "Product ID"
// @Param   product  body  models.ProductPayload  true  "Product fields"
// @Success 200 {object} models.Product
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BasicAuth
// @Router /api/admin/products/{id} [put]
func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	var payload models.ProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := h.Product.Update(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

// @Summary Delete a product
// @Tags product
// @Produce  json
// @Param   id  path  int  true  "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Product not found"
// @Security BasicAuth
// @Router /api/admin/products/{id} [delete]
func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	if err := h.Product.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Product deleted"})
}
