package comment

import (
	"encoding/json"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// CreateHandler handles comment creation
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new comment creation handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate creates a comment on a post, optionally as a reply to a
// top-level comment
// POST /api/comments
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req comments.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), middleware.GetUserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Comment added successfully",
		"comment": created,
	})
}
