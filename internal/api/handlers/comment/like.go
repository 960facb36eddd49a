package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// LikeHandler handles comment like and unlike
type LikeHandler struct {
	service comments.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service comments.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// HandleLike adds the caller to the comment's likes set; a duplicate like
// is a no-op
// POST /api/comments/{id}/like
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Like(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Comment liked successfully",
		"likesCount": result.LikesCount,
		"liked":      result.Liked,
	})
}

// HandleUnlike removes the caller from the comment's likes set
// DELETE /api/comments/{id}/like
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Unlike(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":    "Comment unliked successfully",
		"likesCount": result.LikesCount,
		"liked":      result.Liked,
	})
}
