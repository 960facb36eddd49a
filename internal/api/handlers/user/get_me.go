package user

import (
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/users"
)

// GetMeHandler returns the authenticated caller's own record
type GetMeHandler struct {
	service users.Service
}

// NewGetMeHandler creates a new handler for the caller's own record
func NewGetMeHandler(service users.Service) *GetMeHandler {
	return &GetMeHandler{service: service}
}

// HandleGetMe fetches the caller's own record
// GET /api/users/me
func (h *GetMeHandler) HandleGetMe(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.GetByID(r.Context(), middleware.GetUserID(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": account,
	})
}
