package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/application"
	"workwise/internal/repository"
)

const (
	dashboardMonths        = 6
	dashboardTopLimit      = 5
	dashboardInterviewNext = 5
)

// DashboardSummary is the card row at the top of the employer dashboard.
type DashboardSummary struct {
	TotalPosts          int `json:"total_posts"`
	ActivePosts         int `json:"active_posts"`
	PendingPosts        int `json:"pending_posts"`
	ClosedPosts         int `json:"closed_posts"`
	TotalApplications   int `json:"total_applications"`
	InterviewsScheduled int `json:"interviews_scheduled"`
	OffersExtended      int `json:"offers_extended"`
}

type StatusSlice struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MonthSlice struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// ProfileCheck is one item of the profile completeness widget.
type ProfileCheck struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

type Dashboard struct {
	Summary       DashboardSummary          `json:"summary"`
	ByStatus      []StatusSlice             `json:"by_status"`
	PerMonth      []MonthSlice              `json:"per_month"`
	TopPostings   []repository.TopPosting   `json:"top_postings"`
	Interviews    []repository.InterviewRow `json:"interviews"`
	ProfileChecks []ProfileCheck            `json:"profile_checks"`
}

type DashboardUsecase interface {
	Overview(ctx context.Context, employerID uuid.UUID) (Dashboard, error)
}

type DashboardService struct {
	stats     repository.DashboardRepository
	employers repository.EmployerRepository
	now       func() time.Time
}

func NewDashboardUsecase(stats repository.DashboardRepository, employers repository.EmployerRepository) *DashboardService {
	return &DashboardService{stats: stats, employers: employers, now: time.Now}
}

func (u *DashboardService) Overview(ctx context.Context, employerID uuid.UUID) (Dashboard, error) {
	now := u.now()
	var d Dashboard

	posts, err := u.stats.PostingCounts(ctx, employerID)
	if err != nil {
		return Dashboard{}, ErrInternal
	}
	d.Summary.TotalPosts = posts.Total
	d.Summary.ActivePosts = posts.Active
	d.Summary.PendingPosts = posts.Pending
	d.Summary.ClosedPosts = posts.Closed

	byStatus, err := u.stats.ApplicationStatusCounts(ctx, employerID)
	if err != nil {
		return Dashboard{}, ErrInternal
	}
	// every status appears in the distribution, zero or not
	for _, s := range application.Statuses {
		d.ByStatus = append(d.ByStatus, StatusSlice{Status: s, Count: byStatus[s]})
		d.Summary.TotalApplications += byStatus[s]
	}
	d.Summary.InterviewsScheduled = byStatus[application.StatusInterview]
	d.Summary.OffersExtended = byStatus[application.StatusOffered]

	d.PerMonth, err = u.monthlySeries(ctx, employerID, now)
	if err != nil {
		return Dashboard{}, ErrInternal
	}

	d.TopPostings, err = u.stats.TopPostingsByApplications(ctx, employerID, dashboardTopLimit)
	if err != nil {
		return Dashboard{}, ErrInternal
	}

	d.Interviews, err = u.stats.UpcomingInterviews(ctx, employerID, now, dashboardInterviewNext)
	if err != nil {
		return Dashboard{}, ErrInternal
	}

	profile, err := u.employers.GetProfile(ctx, employerID)
	if err != nil {
		return Dashboard{}, ErrInternal
	}
	d.ProfileChecks = []ProfileCheck{
		{Name: "description", Done: profile.Description != ""},
		{Name: "logo", Done: profile.LogoRef != ""},
		{Name: "website", Done: profile.Website != ""},
		{Name: "phone", Done: profile.PhoneNumber != ""},
	}

	return d, nil
}

// monthlySeries returns the last six months, oldest first, with zero
// counts filled in so charts do not skip empty months.
func (u *DashboardService) monthlySeries(ctx context.Context, employerID uuid.UUID, now time.Time) ([]MonthSlice, error) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(dashboardMonths - 1), 0)

	counts, err := u.stats.MonthlyApplicationCounts(ctx, employerID, start)
	if err != nil {
		return nil, err
	}

	byKey := make(map[string]int, len(counts))
	for _, c := range counts {
		byKey[monthKey(c.Year, c.Month)] = c.Count
	}

	out := make([]MonthSlice, 0, dashboardMonths)
	for i := 0; i < dashboardMonths; i++ {
		m := start.AddDate(0, i, 0)
		key := monthKey(m.Year(), m.Month())
		out = append(out, MonthSlice{Month: key, Count: byKey[key]})
	}
	return out, nil
}

func monthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
