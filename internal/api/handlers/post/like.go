package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/posts"
)

// LikeHandler handles post like and unlike
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// HandleLike adds the caller to the post's likes set. Liking a post the
// caller already likes is a no-op; the returned count is authoritative
// either way.
// POST /api/posts/{id}/like
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Like(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Post liked successfully",
		"likesCount": result.LikesCount,
		"liked":      result.Liked,
	})
}

// HandleUnlike removes the caller from the post's likes set, symmetric to
// HandleLike
// DELETE /api/posts/{id}/like
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Unlike(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Post unliked successfully",
		"likesCount": result.LikesCount,
		"liked":      result.Liked,
	})
}
