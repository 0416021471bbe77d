package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"workwise/internal/database"
	"workwise/internal/domain/application"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("already applied")
)

// Views over a posting's applications; the default is newest first.
const (
	ViewNewest     = ""
	ViewOldest     = "old"
	ViewProcessing = "processing"
	ViewRejected   = "rejected"
)

// InterviewRow joins an interview-stage application with the names the
// employer-facing views need.
type InterviewRow struct {
	Application    application.Application
	CandidateName  string
	CandidateEmail string
	PostingTitle   string
}

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	// GetForEmployer loads an application only when the posting belongs
	// to the employer.
	GetForEmployer(ctx context.Context, id, employerID uuid.UUID) (application.Application, error)
	Exists(ctx context.Context, postingID, candidateID uuid.UUID) (bool, error)
	ListByPosting(ctx context.Context, postingID uuid.UUID, view string) ([]application.Application, error)
	ListInterviews(ctx context.Context, employerID uuid.UUID) ([]InterviewRow, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	ScheduleInterview(ctx context.Context, id uuid.UUID, at time.Time) error
	SetMeeting(ctx context.Context, id uuid.UUID, message, link string) error
}

const applicationColumns = `id, posting_id, candidate_id, status, cover_letter_ref,
	interview_at, meeting_message, meeting_link, applied_at`

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	exists, err := r.Exists(ctx, a.PostingID, a.CandidateID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyApplied
	}
	_, err = r.db.Exec(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		a.ID, a.PostingID, a.CandidateID, a.Status, a.CoverLetterRef,
		a.InterviewAt, a.MeetingMessage, a.MeetingLink, a.AppliedAt,
	)
	return err
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id=$1`, id)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) GetForEmployer(ctx context.Context, id, employerID uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT a.id, a.posting_id, a.candidate_id, a.status, a.cover_letter_ref,
			a.interview_at, a.meeting_message, a.meeting_link, a.applied_at
		 FROM applications a
		 JOIN job_postings p ON p.id = a.posting_id
		 WHERE a.id=$1 AND p.employer_id=$2`,
		id, employerID,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, postingID, candidateID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE posting_id=$1 AND candidate_id=$2)`,
		postingID, candidateID,
	)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) ListByPosting(ctx context.Context, postingID uuid.UUID, view string) ([]application.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM applications WHERE posting_id=$1`
	switch view {
	case ViewOldest:
		q += ` ORDER BY applied_at ASC`
	case ViewProcessing:
		q += ` AND status NOT IN ('applied','rejected') ORDER BY applied_at DESC`
	case ViewRejected:
		q += ` AND status = 'rejected' ORDER BY applied_at DESC`
	default:
		q += ` ORDER BY applied_at DESC`
	}

	rows, err := r.db.Query(ctx, q, postingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := scanApplicationInto(rows, &a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) ListInterviews(ctx context.Context, employerID uuid.UUID) ([]InterviewRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.posting_id, a.candidate_id, a.status, a.cover_letter_ref,
			a.interview_at, a.meeting_message, a.meeting_link, a.applied_at,
			c.first_name || ' ' || c.last_name, c.email, p.title
		 FROM applications a
		 JOIN job_postings p ON p.id = a.posting_id
		 JOIN candidates c ON c.id = a.candidate_id
		 WHERE a.status='interview' AND p.employer_id=$1
		 ORDER BY a.interview_at ASC NULLS LAST`,
		employerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]InterviewRow, 0)
	for rows.Next() {
		var it InterviewRow
		if err := scanApplicationInto(rows, &it.Application, &it.CandidateName, &it.CandidateEmail, &it.PostingTitle); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	n, err := r.db.Exec(ctx, `UPDATE applications SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) ScheduleInterview(ctx context.Context, id uuid.UUID, at time.Time) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status='interview', interview_at=$1 WHERE id=$2`,
		at, id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) SetMeeting(ctx context.Context, id uuid.UUID, message, link string) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET meeting_message=$1, meeting_link=$2 WHERE id=$3`,
		message, link, id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	if err := scanApplicationInto(row, &a); err != nil {
		if isNoRows(err) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func scanApplicationInto(s scanner, a *application.Application, extra ...any) error {
	dest := []any{
		&a.ID, &a.PostingID, &a.CandidateID, &a.Status, &a.CoverLetterRef,
		&a.InterviewAt, &a.MeetingMessage, &a.MeetingLink, &a.AppliedAt,
	}
	dest = append(dest, extra...)
	return s.Scan(dest...)
}
