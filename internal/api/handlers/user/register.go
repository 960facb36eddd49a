package user

import (
	"encoding/json"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/auth"
	"Inkwell/internal/core/users"
)

// RegisterHandler handles account registration
type RegisterHandler struct {
	service users.Service
	tokens  *auth.TokenService
}

// NewRegisterHandler creates a new registration handler
func NewRegisterHandler(service users.Service, tokens *auth.TokenService) *RegisterHandler {
	return &RegisterHandler{service: service, tokens: tokens}
}

// HandleRegister creates a new account and returns it with an identity token
// POST /api/users/register
func (h *RegisterHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	token, err := h.tokens.Issue(account.ID)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", account.ID, err)
		handlers.WriteError(w, http.StatusInternalServerError, "Something went wrong on the server")
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"user":  account,
		"token": token,
	})
}
