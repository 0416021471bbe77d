package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/dto"
	"workwise/internal/delivery/http/middleware"
	"workwise/internal/pkg/response"
	"workwise/internal/search"
	"workwise/internal/usecase"
)

// JobsHandler serves the candidate-facing job listings.
type JobsHandler struct {
	uc usecase.JobSearchUsecase
}

func NewJobsHandler(uc usecase.JobSearchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

type searchRequest struct {
	Title      string `json:"title"`
	Industry   string `json:"industry"`
	Department string `json:"department"`
	WorkType   string `json:"work_type"`
	Location   string `json:"location"`
	Page       int    `json:"page"`
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/search", h.Search)
	r.Get("/", h.List)
	r.Get("/browse/:filter/:keyword", h.Browse)
	r.Get("/:id", h.Detail)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	var req searchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.Page < 1 {
		req.Page = 1
	}

	items, total, err := h.uc.Search(c.Context(), search.Criteria{
		Title:      req.Title,
		Industry:   req.Industry,
		Department: req.Department,
		WorkType:   req.WorkType,
		Location:   req.Location,
	}, req.Page)
	if err != nil {
		return err
	}

	return response.Paged(c, dto.FromPostings(items, time.Now()), req.Page, usecase.PageSizeSearch, total)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	page := pageParam(c)
	items, total, err := h.uc.ListNewest(c.Context(), page)
	if err != nil {
		return err
	}
	return response.Paged(c, dto.FromPostings(items, time.Now()), page, usecase.PageSizeSearch, total)
}

func (h *JobsHandler) Browse(c fiber.Ctx) error {
	page := pageParam(c)
	items, total, err := h.uc.Browse(c.Context(),
		c.Params("filter"), c.Params("keyword"), c.Query("q"), page)
	if err != nil {
		return err
	}
	return response.Paged(c, dto.FromPostings(items, time.Now()), page, usecase.PageSizeSearch, total)
}

func (h *JobsHandler) Detail(c fiber.Ctx) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetPosting(c.Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPosting(p, time.Now()))
}
