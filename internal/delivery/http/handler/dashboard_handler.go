package handler

import (
	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/middleware"
	"workwise/internal/pkg/response"
	"workwise/internal/usecase"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Overview)
}

func (h *DashboardHandler) Overview(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	d, err := h.uc.Overview(c.Context(), employerID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, d)
}
