package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/posts"
)

// DefaultPageSize is the post listing page size when no limit is given
const DefaultPageSize = 10

// ListHandler serves paginated post listings
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new post listing handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns a page of posts, newest first, optionally filtered
// by tag
// GET /api/posts?page=1&limit=10&tag=go
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, limit := handlers.ParsePagination(r, DefaultPageSize)

	response, err := h.service.List(r.Context(), posts.ListPostsRequest{
		Tag:   r.URL.Query().Get("tag"),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}

// HandleListByUser returns a page of posts authored by the given user
// GET /api/posts/user/{userId}?page=1&limit=10
func (h *ListHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	page, limit := handlers.ParsePagination(r, DefaultPageSize)

	response, err := h.service.List(r.Context(), posts.ListPostsRequest{
		AuthorID: chi.URLParam(r, "userId"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
