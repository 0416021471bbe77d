package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"workwise/internal/database"
)

// PostingCounts are the dashboard summary cards for an employer's postings.
type PostingCounts struct {
	Total   int
	Active  int
	Pending int
	Closed  int
}

// MonthlyCount is one point of the applications-over-time series.
type MonthlyCount struct {
	Year  int
	Month time.Month
	Count int
}

// TopPosting is one bar of the top-jobs-by-applications chart.
type TopPosting struct {
	PostingID uuid.UUID
	Title     string
	Count     int
}

type DashboardRepository interface {
	PostingCounts(ctx context.Context, employerID uuid.UUID) (PostingCounts, error)
	ApplicationStatusCounts(ctx context.Context, employerID uuid.UUID) (map[string]int, error)
	MonthlyApplicationCounts(ctx context.Context, employerID uuid.UUID, since time.Time) ([]MonthlyCount, error)
	TopPostingsByApplications(ctx context.Context, employerID uuid.UUID, limit int) ([]TopPosting, error)
	UpcomingInterviews(ctx context.Context, employerID uuid.UUID, now time.Time, limit int) ([]InterviewRow, error)
}

type PostgresDashboardRepository struct {
	db database.DB
}

func NewPostgresDashboardRepository(db database.DB) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{db: db}
}

func (r *PostgresDashboardRepository) PostingCounts(ctx context.Context, employerID uuid.UUID) (PostingCounts, error) {
	var c PostingCounts
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE is_active AND NOT admin_review),
			COUNT(*) FILTER (WHERE admin_review),
			COUNT(*) FILTER (WHERE NOT is_active)
		 FROM job_postings WHERE employer_id=$1`,
		employerID,
	)
	err := row.Scan(&c.Total, &c.Active, &c.Pending, &c.Closed)
	return c, err
}

func (r *PostgresDashboardRepository) ApplicationStatusCounts(ctx context.Context, employerID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.status, COUNT(*)
		 FROM applications a
		 JOIN job_postings p ON p.id = a.posting_id
		 WHERE p.employer_id=$1
		 GROUP BY a.status`,
		employerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func (r *PostgresDashboardRepository) MonthlyApplicationCounts(ctx context.Context, employerID uuid.UUID, since time.Time) ([]MonthlyCount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT EXTRACT(YEAR FROM a.applied_at)::int, EXTRACT(MONTH FROM a.applied_at)::int, COUNT(*)
		 FROM applications a
		 JOIN job_postings p ON p.id = a.posting_id
		 WHERE p.employer_id=$1 AND a.applied_at >= $2
		 GROUP BY 1, 2
		 ORDER BY 1, 2`,
		employerID, since,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MonthlyCount, 0)
	for rows.Next() {
		var m MonthlyCount
		var month int
		if err := rows.Scan(&m.Year, &month, &m.Count); err != nil {
			return nil, err
		}
		m.Month = time.Month(month)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresDashboardRepository) TopPostingsByApplications(ctx context.Context, employerID uuid.UUID, limit int) ([]TopPosting, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT p.id, p.title, COUNT(a.id)
		 FROM job_postings p
		 LEFT JOIN applications a ON a.posting_id = p.id
		 WHERE p.employer_id=$1
		 GROUP BY p.id, p.title
		 ORDER BY COUNT(a.id) DESC
		 LIMIT $2`,
		employerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TopPosting, 0, limit)
	for rows.Next() {
		var t TopPosting
		if err := rows.Scan(&t.PostingID, &t.Title, &t.Count); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresDashboardRepository) UpcomingInterviews(ctx context.Context, employerID uuid.UUID, now time.Time, limit int) ([]InterviewRow, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.posting_id, a.candidate_id, a.status, a.cover_letter_ref,
			a.interview_at, a.meeting_message, a.meeting_link, a.applied_at,
			c.first_name || ' ' || c.last_name, c.email, p.title
		 FROM applications a
		 JOIN job_postings p ON p.id = a.posting_id
		 JOIN candidates c ON c.id = a.candidate_id
		 WHERE a.status='interview' AND a.interview_at >= $2 AND p.employer_id=$1
		 ORDER BY a.interview_at ASC
		 LIMIT $3`,
		employerID, now, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InterviewRow, 0, limit)
	for rows.Next() {
		var it InterviewRow
		if err := scanApplicationInto(rows, &it.Application, &it.CandidateName, &it.CandidateEmail, &it.PostingTitle); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
