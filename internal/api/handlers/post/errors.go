package post

import (
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/posts"
)

// handleServiceError converts post service errors to HTTP responses.
// Not-found always wins over forbidden: the services check existence before
// ownership so an absent post reads the same for everyone.
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *posts.ValidationError

	switch {
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, posts.ErrNotAuthor):
		handlers.WriteError(w, http.StatusForbidden, "Not authorized to modify this post")
	case errors.As(err, &valErr):
		handlers.WriteError(w, http.StatusBadRequest, valErr.Message)
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Something went wrong on the server")
	}
}
