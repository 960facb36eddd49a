package user

import (
	"encoding/json"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/users"
)

// UpdateProfileHandler handles profile updates
type UpdateProfileHandler struct {
	service users.Service
}

// NewUpdateProfileHandler creates a new profile update handler
func NewUpdateProfileHandler(service users.Service) *UpdateProfileHandler {
	return &UpdateProfileHandler{service: service}
}

// HandleUpdateProfile updates the caller's name, bio and avatar
// PUT /api/users/me
func (h *UpdateProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req users.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.UpdateProfile(r.Context(), middleware.GetUserID(r), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    account,
	})
}
