package user

import (
	"encoding/json"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/auth"
	"Inkwell/internal/core/users"
)

// LoginHandler handles credential verification
type LoginHandler struct {
	service users.Service
	tokens  *auth.TokenService
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service, tokens *auth.TokenService) *LoginHandler {
	return &LoginHandler{service: service, tokens: tokens}
}

// HandleLogin verifies a credential and returns the account with a fresh
// identity token
// POST /api/users/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.service.Login(r.Context(), req)
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

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user":  account,
		"token": token,
	})
}
