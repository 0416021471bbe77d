package v1

import (
	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/handler"
	"workwise/internal/delivery/http/middleware"
	"workwise/internal/ws"
)

// Handlers bundles everything the v1 API mounts.
type Handlers struct {
	Auth         *handler.AuthHandler
	Jobs         *handler.JobsHandler
	EmployerJobs *handler.EmployerJobsHandler
	Applications *handler.ApplicationsHandler
	Dashboard    *handler.DashboardHandler
	Premium      *handler.PremiumHandler
	Profile      *handler.ProfileHandler
}

func Register(r fiber.Router, authMw *middleware.AuthMiddleware, h Handlers, wsHandler *ws.Handler) {
	if r == nil || authMw == nil {
		return
	}

	h.Auth.RegisterRoutes(r.Group("/auth"))

	// public listings
	h.Jobs.RegisterRoutes(r.Group("/jobs"))

	candidateJobs := r.Group("/jobs", authMw.Middleware(), authMw.RequireCandidate())
	h.Applications.RegisterCandidateRoutes(candidateJobs)

	candidate := r.Group("/candidate", authMw.Middleware(), authMw.RequireCandidate())
	h.Profile.RegisterCandidateRoutes(candidate.Group("/profile"))

	employer := r.Group("/employer", authMw.Middleware(), authMw.RequireEmployer())
	h.EmployerJobs.RegisterRoutes(employer.Group("/jobs"))
	h.Applications.RegisterEmployerRoutes(employer)
	h.Dashboard.RegisterRoutes(employer.Group("/dashboard"))
	h.Premium.RegisterRoutes(employer.Group("/premium"))
	h.Profile.RegisterEmployerRoutes(employer.Group("/profile"))

	if wsHandler != nil {
		wsGroup := r.Group("/ws", authMw.Middleware(), authMw.RequireCandidate())
		wsGroup.Get("/applications", wsHandler.HandleApplicationsWS)
	}
}
