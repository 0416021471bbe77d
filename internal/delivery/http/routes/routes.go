package routes

import (
	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/handler"
	"workwise/internal/delivery/http/middleware"
	v1 "workwise/internal/delivery/http/routes/v1"
	"workwise/internal/ws"
)

// Registry holds the wired handlers and mounts them on the app.
type Registry struct {
	health    *handler.HealthHandler
	auth      *middleware.AuthMiddleware
	handlers  v1.Handlers
	wsHandler *ws.Handler
}

func NewRegistry(health *handler.HealthHandler, auth *middleware.AuthMiddleware, handlers v1.Handlers, wsHandler *ws.Handler) *Registry {
	return &Registry{
		health:    health,
		auth:      auth,
		handlers:  handlers,
		wsHandler: wsHandler,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.auth, r.handlers, r.wsHandler)
}
