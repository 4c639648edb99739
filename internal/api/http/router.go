package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/worker-directory/internal/api/dto"
	"github.com/spec-kit/worker-directory/internal/api/http/handlers"
	"github.com/spec-kit/worker-directory/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Workers  *handlers.WorkersHandler
	AuthGate *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Everything under /worker sits behind the
// auth gate; per-operation permission checks live in the service layer.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	workers := app.Group("/worker", cfg.AuthGate.Handle)
	workers.Post("/", cfg.Workers.Create)
	workers.Get("/", cfg.Workers.List)
	workers.Get("/card/:cardId", cfg.Workers.GetByCardID)
	workers.Get("/:workerId", cfg.Workers.GetByID)
	workers.Patch("/:workerId", cfg.Workers.UpdateByID)
	workers.Delete("/:workerId", cfg.Workers.DeleteByID)

	// alias kept from a later route revision
	app.Get("/workers/", cfg.AuthGate.Handle, cfg.Workers.List)

	// unmatched routes get a plain 404 envelope
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorEnvelope("Not found."))
	})
}
