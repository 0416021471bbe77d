package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"workwise/internal/database"
	"workwise/internal/domain/job"
)

var ErrPostingNotFound = errors.New("posting not found")

// BrowseFilter narrows the public browse listing. FilterType is one of
// industry, department, title; Keyword is the slug or title fragment and
// Query optionally refines by title substring.
type BrowseFilter struct {
	FilterType string
	Keyword    string
	Query      string
}

// ManageRow is a posting plus its application count for the employer's
// manage-jobs listing.
type ManageRow struct {
	Posting           job.Posting
	ApplicationsCount int
}

type PostingRepository interface {
	Create(ctx context.Context, p job.Posting) error
	Update(ctx context.Context, p job.Posting) error
	Deactivate(ctx context.Context, id, employerID uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	GetEligibleByID(ctx context.Context, id uuid.UUID) (job.Posting, error)

	// EligibleSnapshot returns every posting visible to candidates:
	// active, not pending moderation, deadline not passed. No ordering
	// guarantee; the matcher re-sorts.
	EligibleSnapshot(ctx context.Context, today time.Time) ([]job.Posting, error)
	ListNewest(ctx context.Context, today time.Time) ([]job.Posting, error)
	Browse(ctx context.Context, f BrowseFilter) ([]job.Posting, error)

	ListByEmployer(ctx context.Context, employerID uuid.UUID, today time.Time) ([]ManageRow, error)
	DeactivateExpired(ctx context.Context, today time.Time) (int64, error)
}

const postingColumns = `id, employer_id, contact_email, application_deadline, title, industry,
	department, work_type, gender_requirement, experience_level, experience_min, experience_max,
	salary_type, salary_frequency, salary_min, salary_max, candidates_required,
	requirements, preferred_skills, languages, benefits,
	location_type, full_location_address, map_lat, map_lng, description,
	posted_at, is_active, admin_review`

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

func (r *PostgresPostingRepository) Create(ctx context.Context, p job.Posting) error {
	_, err := r.db.Exec(ctx, `INSERT INTO job_postings (`+postingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28,$29)`,
		p.ID, p.EmployerID, p.ContactEmail, p.ApplicationDeadline, p.Title, p.Industry,
		p.Department, p.WorkType, p.GenderRequirement, p.ExperienceLevel, p.ExperienceMin, p.ExperienceMax,
		p.SalaryType, p.SalaryFrequency, p.SalaryMin, p.SalaryMax, p.CandidatesRequired,
		p.Requirements, p.PreferredSkills, p.Languages, p.Benefits,
		p.LocationType, p.FullLocationAddress, p.MapLat, p.MapLng, p.Description,
		p.PostedAt, p.IsActive, p.AdminReview,
	)
	return err
}

func (r *PostgresPostingRepository) Update(ctx context.Context, p job.Posting) error {
	n, err := r.db.Exec(ctx, `UPDATE job_postings SET
		contact_email=$1, application_deadline=$2, title=$3, industry=$4, department=$5,
		work_type=$6, gender_requirement=$7, experience_level=$8, experience_min=$9, experience_max=$10,
		salary_type=$11, salary_frequency=$12, salary_min=$13, salary_max=$14, candidates_required=$15,
		requirements=$16, preferred_skills=$17, languages=$18, benefits=$19,
		location_type=$20, full_location_address=$21, map_lat=$22, map_lng=$23, description=$24
		WHERE id=$25 AND employer_id=$26`,
		p.ContactEmail, p.ApplicationDeadline, p.Title, p.Industry, p.Department,
		p.WorkType, p.GenderRequirement, p.ExperienceLevel, p.ExperienceMin, p.ExperienceMax,
		p.SalaryType, p.SalaryFrequency, p.SalaryMin, p.SalaryMax, p.CandidatesRequired,
		p.Requirements, p.PreferredSkills, p.Languages, p.Benefits,
		p.LocationType, p.FullLocationAddress, p.MapLat, p.MapLng, p.Description,
		p.ID, p.EmployerID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPostingNotFound
	}
	return nil
}

func (r *PostgresPostingRepository) Deactivate(ctx context.Context, id, employerID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE job_postings SET is_active=FALSE WHERE id=$1 AND employer_id=$2`,
		id, employerID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPostingNotFound
	}
	return nil
}

func (r *PostgresPostingRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM job_postings WHERE id=$1`, id)
	return scanPosting(row)
}

func (r *PostgresPostingRepository) GetEligibleByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM job_postings
		 WHERE id=$1 AND is_active=TRUE AND admin_review=FALSE`, id)
	return scanPosting(row)
}

func (r *PostgresPostingRepository) EligibleSnapshot(ctx context.Context, today time.Time) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+` FROM job_postings
		 WHERE is_active=TRUE AND admin_review=FALSE AND application_deadline >= $1`,
		today,
	)
	if err != nil {
		return nil, err
	}
	return scanPostings(rows)
}

func (r *PostgresPostingRepository) ListNewest(ctx context.Context, today time.Time) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+` FROM job_postings
		 WHERE is_active=TRUE AND admin_review=FALSE AND application_deadline >= $1
		 ORDER BY posted_at DESC`,
		today,
	)
	if err != nil {
		return nil, err
	}
	return scanPostings(rows)
}

func (r *PostgresPostingRepository) Browse(ctx context.Context, f BrowseFilter) ([]job.Posting, error) {
	q := `SELECT ` + postingColumns + ` FROM job_postings
		WHERE is_active=TRUE AND admin_review=FALSE`
	args := []any{}

	switch f.FilterType {
	case "industry":
		args = append(args, f.Keyword)
		q += ` AND lower(industry) = lower($1)`
	case "department":
		args = append(args, f.Keyword)
		q += ` AND lower(department) = lower($1)`
	case "title":
		// slugs arrive hyphen/underscore separated
		text := strings.NewReplacer("-", " ", "_", " ").Replace(f.Keyword)
		args = append(args, "%"+text+"%")
		q += ` AND title ILIKE $1`
	default:
		return []job.Posting{}, nil
	}

	if strings.TrimSpace(f.Query) != "" {
		args = append(args, "%"+strings.TrimSpace(f.Query)+"%")
		q += ` AND title ILIKE $2`
	}
	q += ` ORDER BY posted_at DESC`

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return scanPostings(rows)
}

func (r *PostgresPostingRepository) ListByEmployer(ctx context.Context, employerID uuid.UUID, today time.Time) ([]ManageRow, error) {
	// status rank: 0=active, 1=deactivated, 2=expired
	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+`,
			(SELECT COUNT(*) FROM applications a WHERE a.posting_id = job_postings.id) AS applications_count
		 FROM job_postings
		 WHERE employer_id=$1
		 ORDER BY CASE
			WHEN is_active AND application_deadline >= $2 THEN 0
			WHEN NOT is_active THEN 1
			ELSE 2
		 END, posted_at DESC`,
		employerID, today,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ManageRow, 0)
	for rows.Next() {
		var m ManageRow
		if err := scanPostingInto(rows, &m.Posting, &m.ApplicationsCount); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PostgresPostingRepository) DeactivateExpired(ctx context.Context, today time.Time) (int64, error) {
	return r.db.Exec(ctx,
		`UPDATE job_postings SET is_active=FALSE
		 WHERE is_active=TRUE AND application_deadline < $1`,
		today,
	)
}

func scanPostings(rows database.Rows) ([]job.Posting, error) {
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var p job.Posting
		if err := scanPostingInto(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPosting(row database.Row) (job.Posting, error) {
	var p job.Posting
	err := scanPostingInto(row, &p)
	if err != nil {
		if isNoRows(err) {
			return job.Posting{}, ErrPostingNotFound
		}
		return job.Posting{}, err
	}
	return p, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPostingInto(s scanner, p *job.Posting, extra ...any) error {
	dest := []any{
		&p.ID, &p.EmployerID, &p.ContactEmail, &p.ApplicationDeadline, &p.Title, &p.Industry,
		&p.Department, &p.WorkType, &p.GenderRequirement, &p.ExperienceLevel, &p.ExperienceMin, &p.ExperienceMax,
		&p.SalaryType, &p.SalaryFrequency, &p.SalaryMin, &p.SalaryMax, &p.CandidatesRequired,
		&p.Requirements, &p.PreferredSkills, &p.Languages, &p.Benefits,
		&p.LocationType, &p.FullLocationAddress, &p.MapLat, &p.MapLng, &p.Description,
		&p.PostedAt, &p.IsActive, &p.AdminReview,
	}
	dest = append(dest, extra...)
	return s.Scan(dest...)
}
