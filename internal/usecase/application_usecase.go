package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/application"
	"workwise/internal/domain/job"
	"workwise/internal/pkg/mail"
	"workwise/internal/ranking"
	"workwise/internal/repository"
	"workwise/internal/ws"
)

// ViewRanked orders a posting's applications by the external ranker.
// The other views are served straight from the repository.
const ViewRanked = "ranked"

// Employer actions on an application.
const (
	ActionReview    = "review"
	ActionReject    = "reject"
	ActionInterview = "interview"
	ActionOffer     = "offer"
)

var actionStatus = map[string]string{
	ActionReview:    application.StatusReviewing,
	ActionReject:    application.StatusRejected,
	ActionInterview: application.StatusInterview,
	ActionOffer:     application.StatusOffered,
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, candidateID, postingID uuid.UUID, coverLetterRef string) (application.Application, error)
	ListForEmployer(ctx context.Context, employerID, postingID uuid.UUID, view string, page int) ([]application.Application, int, error)
	// Act moves an application to the status the action implies. The
	// interview action needs a future interviewAt; other actions ignore it.
	Act(ctx context.Context, employerID, applicationID uuid.UUID, action string, interviewAt time.Time) error
	SendMeeting(ctx context.Context, employerID, applicationID uuid.UUID, message, link string) error
	Interviews(ctx context.Context, employerID uuid.UUID, page int) ([]repository.InterviewRow, int, error)
}

type Applications struct {
	apps       repository.ApplicationRepository
	postings   repository.PostingRepository
	candidates repository.CandidateRepository
	employers  repository.EmployerRepository
	ranker     ranking.Ranker
	mailer     mail.Mailer
	logger     *log.Logger
	now        func() time.Time
}

func NewApplicationUsecase(
	apps repository.ApplicationRepository,
	postings repository.PostingRepository,
	candidates repository.CandidateRepository,
	employers repository.EmployerRepository,
	ranker ranking.Ranker,
	mailer mail.Mailer,
	logger *log.Logger,
) *Applications {
	return &Applications{
		apps:       apps,
		postings:   postings,
		candidates: candidates,
		employers:  employers,
		ranker:     ranker,
		mailer:     mailer,
		logger:     logger,
		now:        time.Now,
	}
}

func (u *Applications) Apply(ctx context.Context, candidateID, postingID uuid.UUID, coverLetterRef string) (application.Application, error) {
	if strings.TrimSpace(coverLetterRef) == "" {
		return application.Application{}, ErrInvalidInput
	}

	cand, err := u.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return application.Application{}, ErrUnauthorized
		}
		return application.Application{}, ErrInternal
	}
	if !cand.HasCV() {
		return application.Application{}, ErrCVRequired
	}

	posting, err := u.postings.GetEligibleByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	a := application.Application{
		ID:             uuid.New(),
		PostingID:      posting.ID,
		CandidateID:    candidateID,
		Status:         application.StatusApplied,
		CoverLetterRef: strings.TrimSpace(coverLetterRef),
		AppliedAt:      u.now(),
	}
	if err := u.apps.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrAlreadyApplied) {
			return application.Application{}, ErrAlreadyApplied
		}
		if u.logger != nil {
			u.logger.Printf("apply: insert failed: %v", err)
		}
		return application.Application{}, ErrInternal
	}

	u.sendMail(cand.Email,
		"Application received: "+posting.Title,
		fmt.Sprintf("Hi %s,\n\nYour application for %q has been received. The employer will review it and get back to you.\n\nGood luck!", cand.FirstName, posting.Title),
	)
	return a, nil
}

func (u *Applications) ListForEmployer(ctx context.Context, employerID, postingID uuid.UUID, view string, page int) ([]application.Application, int, error) {
	posting, err := u.ownPosting(ctx, employerID, postingID)
	if err != nil {
		return nil, 0, err
	}

	if view == ViewRanked {
		return u.listRanked(ctx, employerID, posting, page)
	}

	switch view {
	case repository.ViewNewest, repository.ViewOldest, repository.ViewProcessing, repository.ViewRejected:
	default:
		return nil, 0, ErrInvalidInput
	}

	items, err := u.apps.ListByPosting(ctx, postingID, view)
	if err != nil {
		return nil, 0, ErrInternal
	}
	out, total := paginate(items, page, PageSizeApplications)
	return out, total, nil
}

// listRanked is premium-only. When the ranker fails the list falls back
// to newest first rather than erroring the whole page.
func (u *Applications) listRanked(ctx context.Context, employerID uuid.UUID, posting job.Posting, page int) ([]application.Application, int, error) {
	premium, err := u.employers.GetPremium(ctx, employerID)
	if err != nil {
		return nil, 0, ErrInternal
	}
	if !premium.Active(u.now()) {
		return nil, 0, ErrPremiumRequired
	}

	items, err := u.apps.ListByPosting(ctx, posting.ID, repository.ViewNewest)
	if err != nil {
		return nil, 0, ErrInternal
	}

	if u.ranker != nil {
		ranked, err := u.ranker.Rank(ctx, posting, items)
		if err == nil && len(ranked) == len(items) {
			items = ranked
		} else if err != nil && u.logger != nil {
			u.logger.Printf("ranker unavailable, serving newest first: %v", err)
		}
	}

	out, total := paginate(items, page, PageSizeApplications)
	return out, total, nil
}

func (u *Applications) Act(ctx context.Context, employerID, applicationID uuid.UUID, action string, interviewAt time.Time) error {
	next, ok := actionStatus[action]
	if !ok {
		return ErrInvalidInput
	}

	a, err := u.apps.GetForEmployer(ctx, applicationID, employerID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if !application.CanTransition(a.Status, next) {
		return ErrInvalidInput
	}

	posting, err := u.postings.GetByID(ctx, a.PostingID)
	if err != nil {
		return ErrInternal
	}

	switch action {
	case ActionInterview:
		if !interviewAt.After(u.now()) {
			return ErrInvalidInput
		}
		if err := u.apps.ScheduleInterview(ctx, applicationID, interviewAt); err != nil {
			return ErrInternal
		}
	default:
		if err := u.apps.UpdateStatus(ctx, applicationID, next); err != nil {
			return ErrInternal
		}
	}

	u.notifyCandidate(ctx, a, posting, next, interviewAt)
	return nil
}

func (u *Applications) SendMeeting(ctx context.Context, employerID, applicationID uuid.UUID, message, link string) error {
	message = strings.TrimSpace(message)
	link = strings.TrimSpace(link)
	if message == "" || link == "" {
		return ErrInvalidInput
	}

	a, err := u.apps.GetForEmployer(ctx, applicationID, employerID)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if a.Status != application.StatusInterview {
		return ErrInvalidInput
	}

	if err := u.apps.SetMeeting(ctx, applicationID, message, link); err != nil {
		return ErrInternal
	}

	posting, err := u.postings.GetByID(ctx, a.PostingID)
	if err != nil {
		return nil
	}
	cand, err := u.candidates.GetByID(ctx, a.CandidateID)
	if err != nil {
		return nil
	}

	u.sendMail(cand.Email,
		"Interview meeting details: "+posting.Title,
		fmt.Sprintf("Hi %s,\n\n%s\n\nJoin here: %s", cand.FirstName, message, link),
	)
	return nil
}

func (u *Applications) Interviews(ctx context.Context, employerID uuid.UUID, page int) ([]repository.InterviewRow, int, error) {
	rows, err := u.apps.ListInterviews(ctx, employerID)
	if err != nil {
		return nil, 0, ErrInternal
	}
	out, total := paginate(rows, page, PageSizeInterviews)
	return out, total, nil
}

func (u *Applications) ownPosting(ctx context.Context, employerID, postingID uuid.UUID) (job.Posting, error) {
	p, err := u.postings.GetByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}
	if p.EmployerID != employerID {
		return job.Posting{}, ErrForbidden
	}
	return p, nil
}

func (u *Applications) notifyCandidate(ctx context.Context, a application.Application, posting job.Posting, status string, interviewAt time.Time) {
	ws.NotifyApplicationUpdated(a.CandidateID, a.ID, posting.Title, status)

	cand, err := u.candidates.GetByID(ctx, a.CandidateID)
	if err != nil {
		return
	}

	var subject, body string
	switch status {
	case application.StatusReviewing:
		subject = "Your application is under review: " + posting.Title
		body = fmt.Sprintf("Hi %s,\n\nYour application for %q is now being reviewed.", cand.FirstName, posting.Title)
	case application.StatusInterview:
		subject = "Interview scheduled: " + posting.Title
		body = fmt.Sprintf("Hi %s,\n\nYou have been invited to an interview for %q on %s.",
			cand.FirstName, posting.Title, interviewAt.Format("Monday, 2 January 2006 at 15:04"))
	case application.StatusOffered:
		subject = "You have an offer: " + posting.Title
		body = fmt.Sprintf("Hi %s,\n\nCongratulations! The employer has extended you an offer for %q.", cand.FirstName, posting.Title)
	case application.StatusRejected:
		subject = "Application update: " + posting.Title
		body = fmt.Sprintf("Hi %s,\n\nThank you for applying for %q. The employer has decided not to move forward with your application.", cand.FirstName, posting.Title)
	default:
		return
	}

	u.sendMail(cand.Email, subject, body)
}

func (u *Applications) sendMail(to, subject, body string) {
	if u.mailer == nil {
		return
	}
	if err := u.mailer.Send(to, subject, body); err != nil && u.logger != nil {
		u.logger.Printf("mail send failed | to=%s: %v", to, err)
	}
}
