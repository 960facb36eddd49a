package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// DeleteHandler handles comment deletion
type DeleteHandler struct {
	service comments.Service
}

// NewDeleteHandler creates a new comment deletion handler
func NewDeleteHandler(service comments.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete deletes a comment and its replies, moving the post's comment
// counter with them. Only the author may delete.
// DELETE /api/comments/{id}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment deleted successfully",
	})
}
