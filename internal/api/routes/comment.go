package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/comment"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
)

// RegisterCommentRoutes registers comment endpoints under /comments.
// Listing uses optional auth; every write requires a valid token.
func RegisterCommentRoutes(r chi.Router, service comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateHandler(service)
	listHandler := comment.NewListHandler(service)
	updateHandler := comment.NewUpdateHandler(service)
	deleteHandler := comment.NewDeleteHandler(service)
	likeHandler := comment.NewLikeHandler(service)

	// Public route with optional auth
	r.With(authMiddleware.OptionalAuth).Get("/comments/post/{postId}", listHandler.HandleListByPost)

	// Protected routes
	r.With(authMiddleware.RequireAuth).Post("/comments", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/comments/{id}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/comments/{id}", deleteHandler.HandleDelete)
	r.With(authMiddleware.RequireAuth).Post("/comments/{id}/like", likeHandler.HandleLike)
	r.With(authMiddleware.RequireAuth).Delete("/comments/{id}/like", likeHandler.HandleUnlike)
}
