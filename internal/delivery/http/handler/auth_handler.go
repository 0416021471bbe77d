package handler

import (
	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/middleware"
	"workwise/internal/pkg/response"
	"workwise/internal/usecase"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type registerEmployerRequest struct {
	CompanyName        string `json:"company_name"`
	RepresentativeName string `json:"representative_name"`
	Email              string `json:"email"`
	Password           string `json:"password"`
}

type registerCandidateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/employer/register", h.RegisterEmployer)
	r.Post("/employer/login", h.LoginEmployer)
	r.Post("/candidate/register", h.RegisterCandidate)
	r.Post("/candidate/login", h.LoginCandidate)
	r.Post("/refresh", h.Refresh)
}

func (h *AuthHandler) RegisterEmployer(c fiber.Ctx) error {
	var req registerEmployerRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pair, err := h.uc.RegisterEmployer(c.Context(), usecase.RegisterEmployerInput{
		CompanyName:        req.CompanyName,
		RepresentativeName: req.RepresentativeName,
		Email:              req.Email,
		Password:           req.Password,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, pair)
}

func (h *AuthHandler) RegisterCandidate(c fiber.Ctx) error {
	var req registerCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pair, err := h.uc.RegisterCandidate(c.Context(), usecase.RegisterCandidateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, pair)
}

func (h *AuthHandler) LoginEmployer(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pair, err := h.uc.LoginEmployer(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, pair)
}

func (h *AuthHandler) LoginCandidate(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pair, err := h.uc.LoginCandidate(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, pair)
}

func (h *AuthHandler) Refresh(c fiber.Ctx) error {
	var req refreshRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	pair, err := h.uc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, pair)
}
