package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"
)

// GetHandler serves a single post with its full comment thread
type GetHandler struct {
	service  posts.Service
	comments comments.Service
}

// NewGetHandler creates a new single-post handler
func NewGetHandler(service posts.Service, commentService comments.Service) *GetHandler {
	return &GetHandler{service: service, comments: commentService}
}

// postDetail is a post with its comments embedded, as returned by the
// single-post endpoint
type postDetail struct {
	*posts.Post
	Comments []*comments.Comment `json:"comments"`
}

// HandleGet fetches a post by identifier, comments included
// GET /api/posts/{id}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	thread, err := h.comments.ForPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"post": postDetail{Post: found, Comments: thread},
	})
}
