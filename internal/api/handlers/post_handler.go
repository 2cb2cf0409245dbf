// filepath: internal/api/handlers/post_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"shopfront/internal/models"
)

// @Summary List posts
// @Tags post
// @Produce  json
// @Success 200 {array} models.Post
// @Security BasicAuth
// @Router /api/admin/posts [get]
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Post.List()
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, posts)
}

// @Summary Get a post
// @Tags post
// @Produce  json
// @Param   id  path  int  true  "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} ErrorResponse "Post not found"
// @Security BasicAuth
// @Router /api/admin/posts/{id} [get]
func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}
	post, err := h.Post.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, post)
}

// @Summary Create a post
// @Tags post
// @Accept  json
// @Produce  json
// @Param   post  body  models.PostPayload  true  "Post fields"
// @Success 201 {object} models.Post
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Security BasicAuth
// @Router /api/admin/posts [post]
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var payload models.PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := h.Post.Create(payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, post)
}

// @Summary Update a post
// @Tags post
// @Accept  json
// @Produce  json
// @Param   id    path  int                 true  "Post ID"
// @Param   post  body  models.PostPayload  true  "Post fields"
// @Success 200 {object} models.Post
// @Failure 404 {object} ErrorResponse "Post not found"
// @Security BasicAuth
// @Router /api/admin/posts/{id} [put]
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}
	var payload models.PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	post, err := h.Post.Update(id, payload)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, post)
}

// @Summary Publish or unpublish a post
// @Tags post
// @Produce  json
// @Param   id  path  int  true  "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} ErrorResponse "Post not found"
// @Security BasicAuth
// @Router /api/admin/posts/{id}/toggle [post]
func (h *Handlers) TogglePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}
	post, err := h.Post.Toggle(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, post)
}

// @Summary Delete a post
// @Tags post
// @Produce  json
// @Param   id  path  int  true  "Post ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Post not found"
// @Security BasicAuth
// @Router /api/admin/posts/{id} [delete]
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}
	if err := h.Post.Delete(id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Post deleted"})
}
