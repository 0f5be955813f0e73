package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jameshwang7534/Family-Tree/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, trees *handlers.TreeHandler, health *handlers.HealthHandler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	a := api.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)
	a.Post("/logout", auth.Logout)
	a.Get("/me", auth.Me)

	t := api.Group("/trees")
	t.Get("", trees.List)
	t.Post("", trees.Create)
	t.Get("/:id", trees.Get)
}
