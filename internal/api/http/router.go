package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scholar-portal/internal/api/http/handlers"
	"github.com/spec-kit/scholar-portal/internal/auth"
	"github.com/spec-kit/scholar-portal/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Students       *handlers.StudentHandler
	Institutions   *handlers.InstitutionHandler
	Chat           *handlers.ChatHandler
	AuthMiddleware *auth.AuthMiddleware
	RateLimiter    fiber.Handler
}

// RegisterRoutes wires HTTP routes. Everything except health lives under
// /api, matching the paths the frontend already calls.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	if cfg.RateLimiter != nil {
		authGroup.Use(cfg.RateLimiter)
	}
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Get("/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	student := api.Group("/student", cfg.AuthMiddleware.Handle)
	student.Get("/profile", cfg.Students.GetProfile)
	student.Put("/update", cfg.Students.UpdateProfile)

	institutions := api.Group("/institutions")
	institutions.Get("/", cfg.Institutions.List)
	institutions.Get("/:id", cfg.Institutions.Get)
	institutions.Post("/", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Institutions.Create)
	institutions.Put("/:id", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin), cfg.Institutions.Update)

	api.Post("/gemini", cfg.Chat.Ask)
}
