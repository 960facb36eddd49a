package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/comments"
)

// ListHandler serves paginated top-level comments for a post
type ListHandler struct {
	service comments.Service
}

// NewListHandler creates a new comment listing handler
func NewListHandler(service comments.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleListByPost returns a page of a post's top-level comments, newest
// first, each carrying one level of replies
// GET /api/comments/post/{postId}?page=1&limit=20
func (h *ListHandler) HandleListByPost(w http.ResponseWriter, r *http.Request) {
	page, limit := handlers.ParsePagination(r, comments.DefaultPageSize)

	response, err := h.service.ListByPost(r.Context(), comments.ListCommentsRequest{
		PostID: chi.URLParam(r, "postId"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, response)
}
