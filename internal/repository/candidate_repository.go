package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"workwise/internal/database"
	"workwise/internal/domain/candidate"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository interface {
	Create(ctx context.Context, c candidate.Candidate) error
	GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error)
	GetByEmail(ctx context.Context, email string) (candidate.Candidate, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetCV(ctx context.Context, id uuid.UUID, cvRef string) error

	SavedPostingIDs(ctx context.Context, candidateID uuid.UUID) ([]uuid.UUID, error)
	SavePosting(ctx context.Context, candidateID, postingID uuid.UUID) error
	UnsavePosting(ctx context.Context, candidateID, postingID uuid.UUID) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const candidateColumns = `id, first_name, last_name, email, password_hash, cv_ref, joined_at`

func (r *PostgresCandidateRepository) Create(ctx context.Context, c candidate.Candidate) error {
	_, err := r.db.Exec(ctx, `INSERT INTO candidates (`+candidateColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.PasswordHash, c.CVRef, c.JoinedAt,
	)
	return err
}

func (r *PostgresCandidateRepository) GetByID(ctx context.Context, id uuid.UUID) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id=$1`, id)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) GetByEmail(ctx context.Context, email string) (candidate.Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE email=$1`, email)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE email=$1)`, email)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresCandidateRepository) SetCV(ctx context.Context, id uuid.UUID, cvRef string) error {
	n, err := r.db.Exec(ctx, `UPDATE candidates SET cv_ref=$1 WHERE id=$2`, cvRef, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCandidateNotFound
	}
	return nil
}

func (r *PostgresCandidateRepository) SavedPostingIDs(ctx context.Context, candidateID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT posting_id FROM saved_jobs WHERE candidate_id=$1 ORDER BY saved_at DESC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *PostgresCandidateRepository) SavePosting(ctx context.Context, candidateID, postingID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (candidate_id, posting_id, saved_at) VALUES ($1,$2,$3)
		 ON CONFLICT (candidate_id, posting_id) DO NOTHING`,
		candidateID, postingID, time.Now().UTC(),
	)
	return err
}

func (r *PostgresCandidateRepository) UnsavePosting(ctx context.Context, candidateID, postingID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE candidate_id=$1 AND posting_id=$2`,
		candidateID, postingID,
	)
	return err
}

func scanCandidate(row database.Row) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PasswordHash, &c.CVRef, &c.JoinedAt)
	if err != nil {
		if isNoRows(err) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, err
	}
	return c, nil
}
