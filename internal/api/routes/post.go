package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/post"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/core/comments"
	"Inkwell/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints under /posts.
// Reads use optional auth; every write requires a valid token.
func RegisterPostRoutes(r chi.Router, service posts.Service, commentService comments.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service, commentService)
	listHandler := post.NewListHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	likeHandler := post.NewLikeHandler(service)

	// Public routes with optional auth
	r.With(authMiddleware.OptionalAuth).Get("/posts", listHandler.HandleList)
	r.With(authMiddleware.OptionalAuth).Get("/posts/user/{userId}", listHandler.HandleListByUser)
	r.With(authMiddleware.OptionalAuth).Get("/posts/{id}", getHandler.HandleGet)

	// Protected routes
	r.With(authMiddleware.RequireAuth).Post("/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Put("/posts/{id}", updateHandler.HandleUpdate)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{id}", deleteHandler.HandleDelete)
	r.With(authMiddleware.RequireAuth).Post("/posts/{id}/like", likeHandler.HandleLike)
	r.With(authMiddleware.RequireAuth).Delete("/posts/{id}/like", likeHandler.HandleUnlike)
}
