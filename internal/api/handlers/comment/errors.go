package comment

import (
	"errors"
	"log"
	"net/http"

	"Inkwell/internal/api/handlers"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"
)

// handleServiceError converts comment service errors to HTTP responses.
// Creating a comment resolves the owning post first, so post not-found
// surfaces here too.
func handleServiceError(w http.ResponseWriter, err error) {
	var valErr *comments.ValidationError

	switch {
	case errors.Is(err, comments.ErrCommentNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Comment not found")
	case errors.Is(err, posts.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "Post not found")
	case errors.Is(err, comments.ErrNotAuthor):
		handlers.WriteError(w, http.StatusForbidden, "Not authorized to modify this comment")
	case errors.As(err, &valErr):
		handlers.WriteError(w, http.StatusBadRequest, valErr.Message)
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "Something went wrong on the server")
	}
}
