package handler

import (
	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/middleware"
	"workwise/internal/pkg/response"
	"workwise/internal/usecase"
)

type PremiumHandler struct {
	uc usecase.PremiumUsecase
}

func NewPremiumHandler(uc usecase.PremiumUsecase) *PremiumHandler {
	return &PremiumHandler{uc: uc}
}

func (h *PremiumHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Status)
	r.Post("/subscribe", h.Subscribe)
}

func (h *PremiumHandler) Status(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	st, err := h.uc.Status(c.Context(), employerID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}

func (h *PremiumHandler) Subscribe(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	st, err := h.uc.Subscribe(c.Context(), employerID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
