package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/application"
	"workwise/internal/domain/candidate"
	"workwise/internal/domain/employer"
	"workwise/internal/domain/job"
)

func testPosting(employerID uuid.UUID, now time.Time) job.Posting {
	return job.Posting{
		ID:                  uuid.New(),
		EmployerID:          employerID,
		Title:               "Backend Engineer",
		ApplicationDeadline: now.AddDate(0, 0, 14),
		PostedAt:            now,
		IsActive:            true,
	}
}

func newApplicationsForTest(apps *mockApplicationRepo, postings *mockPostingRepo, candidates *mockCandidateRepo, employers *mockEmployerRepo, ranker mockRanker, mailer *mockMailer, now time.Time) *Applications {
	uc := NewApplicationUsecase(apps, postings, candidates, employers, ranker, mailer, nil)
	uc.now = func() time.Time { return now }
	return uc
}

func TestApply_RequiresCV(t *testing.T) {
	now := time.Now()
	posting := testPosting(uuid.New(), now)
	cand := candidate.Candidate{ID: uuid.New(), Email: "jo@example.com"}

	uc := newApplicationsForTest(
		newMockApplicationRepo(), newMockPostingRepo(posting),
		&mockCandidateRepo{candidate: cand}, &mockEmployerRepo{},
		mockRanker{}, &mockMailer{}, now,
	)

	_, err := uc.Apply(context.Background(), cand.ID, posting.ID, "letters/jo.pdf")
	if !errors.Is(err, ErrCVRequired) {
		t.Fatalf("expected ErrCVRequired, got %v", err)
	}
}

func TestApply_RequiresCoverLetter(t *testing.T) {
	now := time.Now()
	posting := testPosting(uuid.New(), now)
	cand := candidate.Candidate{ID: uuid.New(), CVRef: "cvs/jo.pdf"}

	uc := newApplicationsForTest(
		newMockApplicationRepo(), newMockPostingRepo(posting),
		&mockCandidateRepo{candidate: cand}, &mockEmployerRepo{},
		mockRanker{}, &mockMailer{}, now,
	)

	_, err := uc.Apply(context.Background(), cand.ID, posting.ID, "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApply_OncePerPosting(t *testing.T) {
	now := time.Now()
	posting := testPosting(uuid.New(), now)
	cand := candidate.Candidate{ID: uuid.New(), Email: "jo@example.com", CVRef: "cvs/jo.pdf"}
	mailer := &mockMailer{}

	uc := newApplicationsForTest(
		newMockApplicationRepo(), newMockPostingRepo(posting),
		&mockCandidateRepo{candidate: cand}, &mockEmployerRepo{},
		mockRanker{}, mailer, now,
	)

	a, err := uc.Apply(context.Background(), cand.ID, posting.ID, "letters/jo.pdf")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusApplied {
		t.Fatalf("expected applied status, got %q", a.Status)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].to != cand.Email {
		t.Fatalf("expected confirmation mail to candidate, got %v", mailer.sent)
	}

	_, err = uc.Apply(context.Background(), cand.ID, posting.ID, "letters/jo.pdf")
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApply_InactivePostingNotFound(t *testing.T) {
	now := time.Now()
	posting := testPosting(uuid.New(), now)
	posting.IsActive = false
	cand := candidate.Candidate{ID: uuid.New(), CVRef: "cvs/jo.pdf"}

	uc := newApplicationsForTest(
		newMockApplicationRepo(), newMockPostingRepo(posting),
		&mockCandidateRepo{candidate: cand}, &mockEmployerRepo{},
		mockRanker{}, &mockMailer{}, now,
	)

	_, err := uc.Apply(context.Background(), cand.ID, posting.ID, "letters/jo.pdf")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAct_TransitionRules(t *testing.T) {
	cases := []struct {
		name    string
		current string
		action  string
		wantErr bool
	}{
		{"applied to review", application.StatusApplied, ActionReview, false},
		{"applied straight to offer", application.StatusApplied, ActionOffer, false},
		{"reviewing to interview", application.StatusReviewing, ActionInterview, false},
		{"interview to offer", application.StatusInterview, ActionOffer, false},
		{"offered is terminal", application.StatusOffered, ActionReject, true},
		{"rejected is terminal", application.StatusRejected, ActionReview, true},
		{"interview cannot go back to review", application.StatusInterview, ActionReview, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			now := time.Now()
			employerID := uuid.New()
			posting := testPosting(employerID, now)
			cand := candidate.Candidate{ID: uuid.New(), Email: "jo@example.com"}
			app := application.Application{
				ID:          uuid.New(),
				PostingID:   posting.ID,
				CandidateID: cand.ID,
				Status:      tc.current,
				AppliedAt:   now,
			}

			uc := newApplicationsForTest(
				newMockApplicationRepo(app), newMockPostingRepo(posting),
				&mockCandidateRepo{candidate: cand}, &mockEmployerRepo{},
				mockRanker{}, &mockMailer{}, now,
			)

			err := uc.Act(context.Background(), employerID, app.ID, tc.action, now.Add(48*time.Hour))
			if tc.wantErr && !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}

func TestAct_InterviewMustBeInFuture(t *testing.T) {
	now := time.Now()
	employerID := uuid.New()
	posting := testPosting(employerID, now)
	app := application.Application{
		ID:        uuid.New(),
		PostingID: posting.ID,
		Status:    application.StatusApplied,
	}

	uc := newApplicationsForTest(
		newMockApplicationRepo(app), newMockPostingRepo(posting),
		&mockCandidateRepo{}, &mockEmployerRepo{},
		mockRanker{}, &mockMailer{}, now,
	)

	err := uc.Act(context.Background(), employerID, app.ID, ActionInterview, now.Add(-time.Hour))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for past interview time, got %v", err)
	}
}

func TestAct_RejectSendsMail(t *testing.T) {
	now := time.Now()
	employerID := uuid.New()
	posting := testPosting(employerID, now)
	cand := candidate.Candidate{ID: uuid.New(), Email: "jo@example.com", FirstName: "Jo"}
	app := application.Application{
		ID:          uuid.New(),
		PostingID:   posting.ID,
		CandidateID: cand.ID,
		Status:      application.StatusApplied,
	}
	mailer := &mockMailer{}

	apps := newMockApplicationRepo(app)
	uc := newApplicationsForTest(
		apps, newMockPostingRepo(posting),
		&mockCandidateRepo{candidate: cand}, &mockEmployerRepo{},
		mockRanker{}, mailer, now,
	)

	if err := uc.Act(context.Background(), employerID, app.ID, ActionReject, time.Time{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got, _ := apps.GetByID(context.Background(), app.ID)
	if got.Status != application.StatusRejected {
		t.Fatalf("expected rejected, got %q", got.Status)
	}
	if len(mailer.sent) != 1 || mailer.sent[0].to != cand.Email {
		t.Fatalf("expected rejection mail, got %v", mailer.sent)
	}
}

func TestListForEmployer_RankedRequiresPremium(t *testing.T) {
	now := time.Now()
	employerID := uuid.New()
	posting := testPosting(employerID, now)

	uc := newApplicationsForTest(
		newMockApplicationRepo(), newMockPostingRepo(posting),
		&mockCandidateRepo{}, &mockEmployerRepo{},
		mockRanker{}, &mockMailer{}, now,
	)

	_, _, err := uc.ListForEmployer(context.Background(), employerID, posting.ID, ViewRanked, 1)
	if !errors.Is(err, ErrPremiumRequired) {
		t.Fatalf("expected ErrPremiumRequired, got %v", err)
	}
}

func TestListForEmployer_RankedUsesRankerOrder(t *testing.T) {
	now := time.Now()
	employerID := uuid.New()
	posting := testPosting(employerID, now)
	first := application.Application{ID: uuid.New(), PostingID: posting.ID, Status: application.StatusApplied}
	second := application.Application{ID: uuid.New(), PostingID: posting.ID, Status: application.StatusApplied}

	employers := &mockEmployerRepo{premium: activePremium(now)}
	uc := newApplicationsForTest(
		newMockApplicationRepo(first, second), newMockPostingRepo(posting),
		&mockCandidateRepo{}, employers,
		mockRanker{reverse: true}, &mockMailer{}, now,
	)

	items, total, err := uc.ListForEmployer(context.Background(), employerID, posting.ID, ViewRanked, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Fatalf("expected ranker order to win")
	}
}

func TestListForEmployer_RankerFailureFallsBack(t *testing.T) {
	now := time.Now()
	employerID := uuid.New()
	posting := testPosting(employerID, now)
	first := application.Application{ID: uuid.New(), PostingID: posting.ID, Status: application.StatusApplied}
	second := application.Application{ID: uuid.New(), PostingID: posting.ID, Status: application.StatusApplied}

	employers := &mockEmployerRepo{premium: activePremium(now)}
	uc := newApplicationsForTest(
		newMockApplicationRepo(first, second), newMockPostingRepo(posting),
		&mockCandidateRepo{}, employers,
		mockRanker{err: errors.New("ranker down")}, &mockMailer{}, now,
	)

	items, _, err := uc.ListForEmployer(context.Background(), employerID, posting.ID, ViewRanked, 1)
	if err != nil {
		t.Fatalf("expected fallback instead of error, got %v", err)
	}
	if items[0].ID != first.ID {
		t.Fatalf("expected repository order on fallback")
	}
}

func TestListForEmployer_ForeignPostingForbidden(t *testing.T) {
	now := time.Now()
	posting := testPosting(uuid.New(), now)

	uc := newApplicationsForTest(
		newMockApplicationRepo(), newMockPostingRepo(posting),
		&mockCandidateRepo{}, &mockEmployerRepo{},
		mockRanker{}, &mockMailer{}, now,
	)

	_, _, err := uc.ListForEmployer(context.Background(), uuid.New(), posting.ID, "", 1)
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSendMeeting_RequiresInterviewStage(t *testing.T) {
	now := time.Now()
	employerID := uuid.New()
	posting := testPosting(employerID, now)
	app := application.Application{
		ID:        uuid.New(),
		PostingID: posting.ID,
		Status:    application.StatusApplied,
	}

	uc := newApplicationsForTest(
		newMockApplicationRepo(app), newMockPostingRepo(posting),
		&mockCandidateRepo{}, &mockEmployerRepo{},
		mockRanker{}, &mockMailer{}, now,
	)

	err := uc.SendMeeting(context.Background(), employerID, app.ID, "See you there", "https://meet.example/x")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSendMeeting_StoresAndMails(t *testing.T) {
	now := time.Now()
	employerID := uuid.New()
	posting := testPosting(employerID, now)
	cand := candidate.Candidate{ID: uuid.New(), Email: "jo@example.com", FirstName: "Jo"}
	app := application.Application{
		ID:          uuid.New(),
		PostingID:   posting.ID,
		CandidateID: cand.ID,
		Status:      application.StatusInterview,
	}
	mailer := &mockMailer{}
	apps := newMockApplicationRepo(app)

	uc := newApplicationsForTest(
		apps, newMockPostingRepo(posting),
		&mockCandidateRepo{candidate: cand}, &mockEmployerRepo{premium: employer.Premium{}},
		mockRanker{}, mailer, now,
	)

	if err := uc.SendMeeting(context.Background(), employerID, app.ID, "See you there", "https://meet.example/x"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if apps.meeting != [2]string{"See you there", "https://meet.example/x"} {
		t.Fatalf("meeting not stored: %v", apps.meeting)
	}
	if len(mailer.sent) != 1 {
		t.Fatalf("expected meeting mail, got %d", len(mailer.sent))
	}
}
