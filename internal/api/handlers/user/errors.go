package user

import (
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/users"
)

// handleServiceError converts user service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *users.ValidationError

	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, users.ErrUserExists):
		handlers.WriteError(w, http.StatusConflict, "User already exists with that email or username")
	case errors.Is(err, users.ErrInvalidCredentials):
		handlers.WriteError(w, http.StatusBadRequest, "Invalid credentials")
	case errors.As(err, &valErr):
		handlers.WriteError(w, http.StatusBadRequest, valErr.Message)
	default:
		log.Printf("User handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Something went wrong on the server")
	}
}
