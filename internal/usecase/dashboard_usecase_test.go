package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/application"
	"workwise/internal/domain/employer"
	"workwise/internal/repository"
)

type mockDashboardRepo struct {
	posts    repository.PostingCounts
	byStatus map[string]int
	monthly  []repository.MonthlyCount
	top      []repository.TopPosting
	upcoming []repository.InterviewRow
}

func (m mockDashboardRepo) PostingCounts(context.Context, uuid.UUID) (repository.PostingCounts, error) {
	return m.posts, nil
}

func (m mockDashboardRepo) ApplicationStatusCounts(context.Context, uuid.UUID) (map[string]int, error) {
	return m.byStatus, nil
}

func (m mockDashboardRepo) MonthlyApplicationCounts(context.Context, uuid.UUID, time.Time) ([]repository.MonthlyCount, error) {
	return m.monthly, nil
}

func (m mockDashboardRepo) TopPostingsByApplications(context.Context, uuid.UUID, int) ([]repository.TopPosting, error) {
	return m.top, nil
}

func (m mockDashboardRepo) UpcomingInterviews(context.Context, uuid.UUID, time.Time, int) ([]repository.InterviewRow, error) {
	return m.upcoming, nil
}

func TestDashboardOverview(t *testing.T) {
	now := time.Date(2026, 6, 20, 10, 0, 0, 0, time.UTC)

	stats := mockDashboardRepo{
		posts: repository.PostingCounts{Total: 7, Active: 4, Pending: 1, Closed: 2},
		byStatus: map[string]int{
			application.StatusApplied:   10,
			application.StatusInterview: 3,
			application.StatusOffered:   1,
		},
		monthly: []repository.MonthlyCount{
			{Year: 2026, Month: time.April, Count: 4},
			{Year: 2026, Month: time.June, Count: 9},
		},
		top: []repository.TopPosting{{PostingID: uuid.New(), Title: "Backend Engineer", Count: 9}},
	}
	employers := &mockEmployerRepo{profile: employer.CompanyProfile{
		Description: "We build things.",
		PhoneNumber: "0123456789",
	}}

	uc := NewDashboardUsecase(stats, employers)
	uc.now = func() time.Time { return now }

	d, err := uc.Overview(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if d.Summary.TotalPosts != 7 || d.Summary.ActivePosts != 4 {
		t.Fatalf("unexpected posting summary: %+v", d.Summary)
	}
	if d.Summary.TotalApplications != 14 {
		t.Fatalf("expected 14 applications, got %d", d.Summary.TotalApplications)
	}
	if d.Summary.InterviewsScheduled != 3 || d.Summary.OffersExtended != 1 {
		t.Fatalf("unexpected interview/offer cards: %+v", d.Summary)
	}

	// the distribution lists every status even at zero
	if len(d.ByStatus) != len(application.Statuses) {
		t.Fatalf("expected %d slices, got %d", len(application.Statuses), len(d.ByStatus))
	}

	// six months, oldest first, gaps filled with zeros
	if len(d.PerMonth) != 6 {
		t.Fatalf("expected 6 months, got %d", len(d.PerMonth))
	}
	if d.PerMonth[0].Month != "2026-01" || d.PerMonth[5].Month != "2026-06" {
		t.Fatalf("unexpected month range: %v", d.PerMonth)
	}
	if d.PerMonth[3].Count != 4 || d.PerMonth[5].Count != 9 || d.PerMonth[1].Count != 0 {
		t.Fatalf("unexpected monthly counts: %v", d.PerMonth)
	}

	checks := map[string]bool{}
	for _, c := range d.ProfileChecks {
		checks[c.Name] = c.Done
	}
	if !checks["description"] || !checks["phone"] || checks["logo"] || checks["website"] {
		t.Fatalf("unexpected profile checks: %v", d.ProfileChecks)
	}
}
