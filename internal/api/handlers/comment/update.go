package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// UpdateHandler handles comment edits
type UpdateHandler struct {
	service comments.Service
}

// NewUpdateHandler creates a new comment update handler
func NewUpdateHandler(service comments.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate edits a comment's content. Only the author may edit.
// PUT /api/comments/{id}
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req comments.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), middleware.GetUserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Comment updated successfully",
		"comment": updated,
	})
}
