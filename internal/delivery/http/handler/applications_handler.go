package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"workwise/internal/delivery/http/dto"
	"workwise/internal/delivery/http/middleware"
	"workwise/internal/pkg/response"
	"workwise/internal/usecase"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

type applyRequest struct {
	CoverLetterRef string `json:"cover_letter_ref"`
}

type actionRequest struct {
	Action      string `json:"action"`
	InterviewAt string `json:"interview_at,omitempty"`
}

type meetingRequest struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// RegisterCandidateRoutes mounts the apply endpoint under the
// candidate-guarded jobs group.
func (h *ApplicationsHandler) RegisterCandidateRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/:id/apply", h.Apply)
}

// RegisterEmployerRoutes mounts the review surface under the
// employer-guarded group.
func (h *ApplicationsHandler) RegisterEmployerRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs/:id/applications", h.ListForPosting)
	r.Post("/applications/:id/action", h.Act)
	r.Post("/applications/:id/meeting", h.SendMeeting)
	r.Get("/interviews", h.Interviews)
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	candidateID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	postingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Apply(c.Context(), candidateID, postingID, req.CoverLetterRef)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromApplication(a))
}

func (h *ApplicationsHandler) ListForPosting(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	postingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	page := pageParam(c)
	items, total, err := h.uc.ListForEmployer(c.Context(), employerID, postingID, c.Query("view"), page)
	if err != nil {
		return err
	}
	return response.Paged(c, dto.FromApplications(items), page, usecase.PageSizeApplications, total)
}

func (h *ApplicationsHandler) Act(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	applicationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req actionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var interviewAt time.Time
	if req.InterviewAt != "" {
		interviewAt, err = time.Parse(time.RFC3339, req.InterviewAt)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid interview time, expected RFC 3339", nil, err)
		}
	}

	if err := h.uc.Act(c.Context(), employerID, applicationID, req.Action, interviewAt); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ApplicationsHandler) SendMeeting(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	applicationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req meetingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.SendMeeting(c.Context(), employerID, applicationID, req.Message, req.Link); err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ApplicationsHandler) Interviews(c fiber.Ctx) error {
	employerID, ok := actorID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	page := pageParam(c)
	rows, total, err := h.uc.Interviews(c.Context(), employerID, page)
	if err != nil {
		return err
	}
	return response.Paged(c, dto.FromInterviewRows(rows), page, usecase.PageSizeInterviews, total)
}
