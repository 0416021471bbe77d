package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"workwise/internal/config"
	"workwise/internal/delivery/http/handler"
	"workwise/internal/delivery/http/middleware"
	"workwise/internal/delivery/http/routes"
	v1 "workwise/internal/delivery/http/routes/v1"
	"workwise/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	authMw := middleware.NewAuthMiddleware(c.JWT)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		authMw,
		v1.Handlers{
			Auth:         handler.NewAuthHandler(c.Auth),
			Jobs:         handler.NewJobsHandler(c.JobSearch),
			EmployerJobs: handler.NewEmployerJobsHandler(c.JobPost),
			Applications: handler.NewApplicationsHandler(c.Applications),
			Dashboard:    handler.NewDashboardHandler(c.Dashboard),
			Premium:      handler.NewPremiumHandler(c.Premium),
			Profile:      handler.NewProfileHandler(c.Profiles),
		},
		ws.NewHandler(c.Hub, c.Logger),
	)
	registry.Register(f)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container, wires the HTTP app, and starts the
// background pieces. The returned cleanup tears everything down.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	go c.Hub.Run()
	if err := c.Scheduler.Start(cfg.Scheduler.ExpirySweepSpec); err != nil {
		_ = c.Close()
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
