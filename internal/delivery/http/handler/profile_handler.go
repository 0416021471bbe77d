package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/dto"
	"workwise/internal/delivery/http/middleware"
	"workwise/internal/pkg/response"
	"workwise/internal/usecase"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

type accountRequest struct {
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
}

type detailsRequest struct {
	Description string `json:"description"`
	Website     string `json:"website"`
	Facebook    string `json:"facebook"`
	LinkedIn    string `json:"linkedin"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	CompanySize string `json:"company_size"`
	FoundedDate string `json:"founded_date,omitempty"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type fileRefRequest struct {
	Ref string `json:"ref"`
}

// RegisterEmployerRoutes mounts the employer profile surface.
func (h *ProfileHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.GetEmployer)
	r.Put("/account", h.UpdateAccount)
	r.Put("/details", h.UpdateDetails)
	r.Put("/password", h.ChangePassword)
	r.Post("/notify/toggle", h.ToggleNotify)
	r.Put("/location", h.UpdateLocation)
	r.Put("/logo", h.SetLogo)
	r.Post("/certificate", h.SubmitCertificate)
}

// RegisterCandidateRoutes mounts the candidate profile surface.
func (h *ProfileHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Put("/cv", h.SetCV)
	r.Get("/saved-jobs", h.SavedJobs)
	r.Post("/saved-jobs/:id", h.SaveJob)
	r.Delete("/saved-jobs/:id", h.UnsaveJob)
}

func (h *ProfileHandler) GetEmployer(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	e, p, err := h.uc.GetEmployer(c.Context(), employerID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromEmployer(e, p))
}

func (h *ProfileHandler) UpdateAccount(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req accountRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateAccount(c.Context(), employerID, req.CompanyName, req.Email); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) UpdateDetails(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req detailsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.CompanyDetailsInput{
		Description: req.Description,
		Website:     req.Website,
		Facebook:    req.Facebook,
		LinkedIn:    req.LinkedIn,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		CompanySize: req.CompanySize,
	}
	if req.FoundedDate != "" {
		founded, err := time.Parse("2006-01-02", req.FoundedDate)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid founded date, expected YYYY-MM-DD", nil, err)
		}
		in.FoundedDate = &founded
	}

	if err := h.uc.UpdateDetails(c.Context(), employerID, in); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) ChangePassword(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req changePasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ChangePassword(c.Context(), employerID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) ToggleNotify(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	notify, err := h.uc.ToggleNotify(c.Context(), employerID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]bool{"email_notify": notify})
}

func (h *ProfileHandler) UpdateLocation(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req locationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.UpdateLocation(c.Context(), employerID, req.Lat, req.Lng); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) SetLogo(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req fileRefRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetLogo(c.Context(), employerID, req.Ref); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) SubmitCertificate(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req fileRefRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SubmitCertificate(c.Context(), employerID, req.Ref); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) SetCV(c fiber.Ctx) error {
	candidateID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req fileRefRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SetCV(c.Context(), candidateID, req.Ref); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) SavedJobs(c fiber.Ctx) error {
	candidateID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.uc.SavedJobs(c.Context(), candidateID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromPostings(items, time.Now()))
}

func (h *ProfileHandler) SaveJob(c fiber.Ctx) error {
	candidateID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	postingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.SaveJob(c.Context(), candidateID, postingID); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, nil)
}

func (h *ProfileHandler) UnsaveJob(c fiber.Ctx) error {
	candidateID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	postingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.UnsaveJob(c.Context(), candidateID, postingID); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
