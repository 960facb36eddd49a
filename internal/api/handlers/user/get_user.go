package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/users"
)

// GetUserHandler serves public profiles
type GetUserHandler struct {
	service users.Service
}

// NewGetUserHandler creates a new public profile handler
func NewGetUserHandler(service users.Service) *GetUserHandler {
	return &GetUserHandler{service: service}
}

// HandleGetUser fetches a user's public profile
// GET /api/users/{id}
func (h *GetUserHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": account.Public(),
	})
}
