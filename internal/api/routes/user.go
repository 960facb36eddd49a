package routes

import (
	"github.com/go-chi/chi/v5"

	"Inkwell/internal/api/handlers/user"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/auth"
	"Inkwell/internal/core/users"
)

// RegisterUserRoutes registers user endpoints under /users
func RegisterUserRoutes(r chi.Router, service users.Service, tokens *auth.TokenService, authMiddleware *middleware.AuthMiddleware) {
	registerHandler := user.NewRegisterHandler(service, tokens)
	loginHandler := user.NewLoginHandler(service, tokens)
	getMeHandler := user.NewGetMeHandler(service)
	updateHandler := user.NewUpdateProfileHandler(service)
	getUserHandler := user.NewGetUserHandler(service)

	// Public routes
	r.Post("/users/register", registerHandler.HandleRegister)
	r.Post("/users/login", loginHandler.HandleLogin)

	// Protected routes. /users/me is registered before /users/{id} so the
	// literal segment wins.
	r.With(authMiddleware.RequireAuth).Get("/users/me", getMeHandler.HandleGetMe)
	r.With(authMiddleware.RequireAuth).Put("/users/me", updateHandler.HandleUpdateProfile)

	// Public profile
	r.Get("/users/{id}", getUserHandler.HandleGetUser)
}
