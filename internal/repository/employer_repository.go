package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"workwise/internal/database"
	"workwise/internal/domain/employer"
)

var ErrEmployerNotFound = errors.New("employer not found")

type EmployerRepository interface {
	Create(ctx context.Context, e employer.Employer) error
	GetByID(ctx context.Context, id uuid.UUID) (employer.Employer, error)
	GetByEmail(ctx context.Context, email string) (employer.Employer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	UpdateAccount(ctx context.Context, id uuid.UUID, companyName, email string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateNotify(ctx context.Context, id uuid.UUID, notify bool) error
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error

	GetProfile(ctx context.Context, employerID uuid.UUID) (employer.CompanyProfile, error)
	UpsertProfile(ctx context.Context, p employer.CompanyProfile) error

	GetPremium(ctx context.Context, employerID uuid.UUID) (employer.Premium, error)
	UpsertPremium(ctx context.Context, p employer.Premium) error
}

type PostgresEmployerRepository struct {
	db database.DB
}

func NewPostgresEmployerRepository(db database.DB) *PostgresEmployerRepository {
	return &PostgresEmployerRepository{db: db}
}

const employerColumns = `id, company_name, email, password_hash, representative_name,
	email_notify, is_verified, map_lat, map_lng, joined_at`

func (r *PostgresEmployerRepository) Create(ctx context.Context, e employer.Employer) error {
	_, err := r.db.Exec(ctx, `INSERT INTO employers (`+employerColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		e.ID, e.CompanyName, e.Email, e.PasswordHash, e.RepresentativeName,
		e.EmailNotify, e.IsVerified, e.MapLat, e.MapLng, e.JoinedAt,
	)
	return err
}

func (r *PostgresEmployerRepository) GetByID(ctx context.Context, id uuid.UUID) (employer.Employer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employers WHERE id=$1`, id)
	return scanEmployer(row)
}

func (r *PostgresEmployerRepository) GetByEmail(ctx context.Context, email string) (employer.Employer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+employerColumns+` FROM employers WHERE email=$1`, email)
	return scanEmployer(row)
}

func (r *PostgresEmployerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employers WHERE email=$1)`, email)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployerRepository) UpdateAccount(ctx context.Context, id uuid.UUID, companyName, email string) error {
	return r.execOne(ctx, `UPDATE employers SET company_name=$1, email=$2 WHERE id=$3`, companyName, email, id)
}

func (r *PostgresEmployerRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.execOne(ctx, `UPDATE employers SET password_hash=$1 WHERE id=$2`, passwordHash, id)
}

func (r *PostgresEmployerRepository) UpdateNotify(ctx context.Context, id uuid.UUID, notify bool) error {
	return r.execOne(ctx, `UPDATE employers SET email_notify=$1 WHERE id=$2`, notify, id)
}

func (r *PostgresEmployerRepository) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	return r.execOne(ctx, `UPDATE employers SET map_lat=$1, map_lng=$2 WHERE id=$3`, lat, lng, id)
}

func (r *PostgresEmployerRepository) GetProfile(ctx context.Context, employerID uuid.UUID) (employer.CompanyProfile, error) {
	var p employer.CompanyProfile
	row := r.db.QueryRow(ctx,
		`SELECT employer_id, description, logo_ref, website, facebook, linkedin,
			phone_number, address, company_size, founded_date, certificate_ref, certificate_submitted_at
		 FROM company_profiles WHERE employer_id=$1`,
		employerID,
	)
	err := row.Scan(&p.EmployerID, &p.Description, &p.LogoRef, &p.Website, &p.Facebook, &p.LinkedIn,
		&p.PhoneNumber, &p.Address, &p.CompanySize, &p.FoundedDate, &p.CertificateRef, &p.CertificateSubmittedAt)
	if err != nil {
		if isNoRows(err) {
			// get-or-create semantics: a missing profile is an empty one
			return employer.CompanyProfile{EmployerID: employerID}, nil
		}
		return employer.CompanyProfile{}, err
	}
	return p, nil
}

func (r *PostgresEmployerRepository) UpsertProfile(ctx context.Context, p employer.CompanyProfile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO company_profiles (employer_id, description, logo_ref, website, facebook, linkedin,
			phone_number, address, company_size, founded_date, certificate_ref, certificate_submitted_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 ON CONFLICT (employer_id) DO UPDATE SET
			description=EXCLUDED.description, logo_ref=EXCLUDED.logo_ref, website=EXCLUDED.website,
			facebook=EXCLUDED.facebook, linkedin=EXCLUDED.linkedin, phone_number=EXCLUDED.phone_number,
			address=EXCLUDED.address, company_size=EXCLUDED.company_size, founded_date=EXCLUDED.founded_date,
			certificate_ref=EXCLUDED.certificate_ref, certificate_submitted_at=EXCLUDED.certificate_submitted_at`,
		p.EmployerID, p.Description, p.LogoRef, p.Website, p.Facebook, p.LinkedIn,
		p.PhoneNumber, p.Address, p.CompanySize, p.FoundedDate, p.CertificateRef, p.CertificateSubmittedAt,
	)
	return err
}

func (r *PostgresEmployerRepository) GetPremium(ctx context.Context, employerID uuid.UUID) (employer.Premium, error) {
	var p employer.Premium
	row := r.db.QueryRow(ctx,
		`SELECT employer_id, is_subscribed, payment_ok, subscribed_at, subscription_end
		 FROM employer_premium WHERE employer_id=$1`,
		employerID,
	)
	err := row.Scan(&p.EmployerID, &p.IsSubscribed, &p.PaymentOk, &p.SubscribedAt, &p.SubscriptionEnd)
	if err != nil {
		if isNoRows(err) {
			return employer.Premium{EmployerID: employerID}, nil
		}
		return employer.Premium{}, err
	}
	return p, nil
}

func (r *PostgresEmployerRepository) UpsertPremium(ctx context.Context, p employer.Premium) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO employer_premium (employer_id, is_subscribed, payment_ok, subscribed_at, subscription_end)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (employer_id) DO UPDATE SET
			is_subscribed=EXCLUDED.is_subscribed, payment_ok=EXCLUDED.payment_ok,
			subscribed_at=EXCLUDED.subscribed_at, subscription_end=EXCLUDED.subscription_end`,
		p.EmployerID, p.IsSubscribed, p.PaymentOk, p.SubscribedAt, p.SubscriptionEnd,
	)
	return err
}

func (r *PostgresEmployerRepository) execOne(ctx context.Context, q string, args ...any) error {
	n, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrEmployerNotFound
	}
	return nil
}

func scanEmployer(row database.Row) (employer.Employer, error) {
	var e employer.Employer
	err := row.Scan(&e.ID, &e.CompanyName, &e.Email, &e.PasswordHash, &e.RepresentativeName,
		&e.EmailNotify, &e.IsVerified, &e.MapLat, &e.MapLng, &e.JoinedAt)
	if err != nil {
		if isNoRows(err) {
			return employer.Employer{}, ErrEmployerNotFound
		}
		return employer.Employer{}, err
	}
	return e, nil
}
