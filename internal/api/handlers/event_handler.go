// filepath: internal/api/handlers/event_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"shopfront/internal/models"
)

// @Summary List events
// @Tags event
// @Produce  json
// @Success 200 {array} models.Event
// @Security BasicAuth
// @Router /api/admin/events [get]
func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Event.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, events)
}

// @Summary Get an event
// @Tags event
// @Produce  json
// @Param   id  path  int  true  "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BasicAuth
// @Router /api/admin/events/{id} [get]
func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}
	event, err := h.Event.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, event)
}

// @Summary Create an event
// @Tags event
// @Accept  json
// @Produce  json
// @Param   event  body  models.EventPayload  true  "Event fields"
// @Success 201 {object} models.Event
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BasicAuth
// @Router /api/admin/events [post]
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var payload models.EventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	event, err := h.Event.Create(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, event)
}

// @Summary Update an event
// @Tags event
// @Accept  json
// @Produce  json
// @Param   id     path  int                  true  "Event ID"
// @Param   event  body  models.EventPayload  true  "Event fields"
// @Success 200 {object} models.Event
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BasicAuth
// @Router /api/admin/events/{id} [put]
func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}
	var payload models.EventPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	event, err := h.Event.Update(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, event)
}

// @Summary Delete an event
// @Tags event
// @Produce  json
// @Param   id  path  int  true  "Event ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Security BasicAuth
// @Router /api/admin/events/{id} [delete]
func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}
	if err := h.Event.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Event deleted"})
}
