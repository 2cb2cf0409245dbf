// filepath: internal/api/handlers/storefront_handler.go
package handlers

import (
	"net/http"
)

// @Summary Render the storefront
// @Description Returns the storefront view for one language: enabled sections in display order with resolved labels, plus the visible content.
// @Tags storefront
// @Produce  json
// @Param   lang  query  string  false  "Language code (en or km)"
// @Success 200 {object} storefront.View
// @Router /api/storefront [get]
func (h *Handlers) GetStorefront(w http.ResponseWriter, r *http.Request) {
	view, err := h.Renderer.Render(r.URL.Query().Get("lang"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// @Summary Open a product detail
// @Description Marks a detail as open. Published document updates are deferred until it is closed, so open details never have content swapped out under them.
// @Tags storefront
// @Produce  json
// @Success 200 {object} MessageResponse
// @Router /api/storefront/detail/open [post]
func (h *Handlers) OpenDetail(w http.ResponseWriter, r *http.Request) {
	h.Renderer.HoldDetail()
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Detail opened"})
}

// @Summary Close a product detail
// @Tags storefront
// @Produce  json
// @Success 200 {object} MessageResponse
// @Router /api/storefront/detail/close [post]
func (h *Handlers) CloseDetail(w http.ResponseWriter, r *http.Request) {
	h.Renderer.ReleaseDetail()
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Detail closed"})
}
