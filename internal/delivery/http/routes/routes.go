package routes

import (
	"resume-screen/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, deps Deps) error {
	if app == nil {
		return nil
	}

	r.registerHealth(app)
	return r.registerAPI(app, deps)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App, deps Deps) error {
	api := app.Group("/api")
	return RegisterV1(api.Group("/v1"), deps)
}
