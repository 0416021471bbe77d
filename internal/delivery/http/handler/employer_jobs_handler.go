package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/dto"
	"workwise/internal/delivery/http/middleware"
	"workwise/internal/pkg/response"
	"workwise/internal/usecase"
)

type EmployerJobsHandler struct {
	uc usecase.JobPostUsecase
}

func NewEmployerJobsHandler(uc usecase.JobPostUsecase) *EmployerJobsHandler {
	return &EmployerJobsHandler{uc: uc}
}

type postJobRequest struct {
	ContactEmail        string   `json:"contact_email"`
	ApplicationDeadline string   `json:"application_deadline"`
	Title               string   `json:"title"`
	Industry            string   `json:"industry"`
	Department          string   `json:"department"`
	WorkType            string   `json:"work_type"`
	GenderRequirement   string   `json:"gender_requirement"`
	ExperienceLevel     string   `json:"experience_level"`
	ExperienceMin       int      `json:"experience_min"`
	ExperienceMax       int      `json:"experience_max"`
	SalaryType          string   `json:"salary_type"`
	SalaryFrequency     string   `json:"salary_frequency"`
	SalaryMin           float64  `json:"salary_min"`
	SalaryMax           float64  `json:"salary_max"`
	CandidatesRequired  int      `json:"candidates_required"`
	Requirements        []string `json:"requirements"`
	PreferredSkills     []string `json:"preferred_skills"`
	Languages           []string `json:"languages"`
	Benefits            []string `json:"benefits"`
	LocationType        string   `json:"location_type"`
	FullLocationAddress string   `json:"full_location_address"`
	MapLat              float64  `json:"map_lat"`
	MapLng              float64  `json:"map_lng"`
	Description         string   `json:"description"`
}

func (r postJobRequest) toInput() (usecase.PostJobInput, error) {
	deadline, err := time.Parse("2006-01-02", r.ApplicationDeadline)
	if err != nil {
		return usecase.PostJobInput{}, err
	}

	return usecase.PostJobInput{
		ContactEmail:        r.ContactEmail,
		ApplicationDeadline: deadline,
		Title:               r.Title,
		Industry:            r.Industry,
		Department:          r.Department,
		WorkType:            r.WorkType,
		GenderRequirement:   r.GenderRequirement,
		ExperienceLevel:     r.ExperienceLevel,
		ExperienceMin:       r.ExperienceMin,
		ExperienceMax:       r.ExperienceMax,
		SalaryType:          r.SalaryType,
		SalaryFrequency:     r.SalaryFrequency,
		SalaryMin:           r.SalaryMin,
		SalaryMax:           r.SalaryMax,
		CandidatesRequired:  r.CandidatesRequired,
		Requirements:        r.Requirements,
		PreferredSkills:     r.PreferredSkills,
		Languages:           r.Languages,
		Benefits:            r.Benefits,
		LocationType:        r.LocationType,
		FullLocationAddress: r.FullLocationAddress,
		MapLat:              r.MapLat,
		MapLng:              r.MapLng,
		Description:         r.Description,
	}, nil
}

func (h *EmployerJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Create)
	r.Get("/", h.Manage)
	r.Get("/:id", h.Get)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Deactivate)
}

func (h *EmployerJobsHandler) Create(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.toInput()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application deadline, expected YYYY-MM-DD", nil, err)
	}

	p, err := h.uc.Create(c.Context(), employerID, in)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromPosting(p, time.Now()))
}

func (h *EmployerJobsHandler) Manage(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page := pageParam(c)
	rows, total, err := h.uc.Manage(c.Context(), employerID, page)
	if err != nil {
		return err
	}
	return response.Paged(c, dto.FromManageRows(rows, time.Now()), page, usecase.PageSizeManage, total)
}

func (h *EmployerJobsHandler) Get(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.GetOwn(c.Context(), employerID, id)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPosting(p, time.Now()))
}

func (h *EmployerJobsHandler) Update(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	in, err := req.toInput()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application deadline, expected YYYY-MM-DD", nil, err)
	}

	if err := h.uc.Update(c.Context(), employerID, id, in); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *EmployerJobsHandler) Deactivate(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Context(), employerID, id); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
