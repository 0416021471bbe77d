package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"workwise/internal/domain/employer"
	"workwise/internal/domain/job"
	"workwise/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const maxCompanyNameLen = 150

type CompanyDetailsInput struct {
	Description string
	Website     string
	Facebook    string
	LinkedIn    string
	PhoneNumber string
	Address     string
	CompanySize string
	FoundedDate *time.Time
}

type ProfileUsecase interface {
	GetEmployer(ctx context.Context, id uuid.UUID) (employer.Employer, employer.CompanyProfile, error)
	UpdateAccount(ctx context.Context, id uuid.UUID, companyName, email string) error
	UpdateDetails(ctx context.Context, id uuid.UUID, in CompanyDetailsInput) error
	ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error
	ToggleNotify(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error
	SetLogo(ctx context.Context, id uuid.UUID, logoRef string) error
	SubmitCertificate(ctx context.Context, id uuid.UUID, certRef string) error

	SetCV(ctx context.Context, candidateID uuid.UUID, cvRef string) error
	SavedJobs(ctx context.Context, candidateID uuid.UUID) ([]job.Posting, error)
	SaveJob(ctx context.Context, candidateID, postingID uuid.UUID) error
	UnsaveJob(ctx context.Context, candidateID, postingID uuid.UUID) error
}

type Profiles struct {
	employers  repository.EmployerRepository
	candidates repository.CandidateRepository
	postings   repository.PostingRepository
	logger     *log.Logger
	now        func() time.Time
}

func NewProfileUsecase(employers repository.EmployerRepository, candidates repository.CandidateRepository, postings repository.PostingRepository, logger *log.Logger) *Profiles {
	return &Profiles{
		employers:  employers,
		candidates: candidates,
		postings:   postings,
		logger:     logger,
		now:        time.Now,
	}
}

func (u *Profiles) GetEmployer(ctx context.Context, id uuid.UUID) (employer.Employer, employer.CompanyProfile, error) {
	e, err := u.employers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return employer.Employer{}, employer.CompanyProfile{}, ErrNotFound
		}
		return employer.Employer{}, employer.CompanyProfile{}, ErrInternal
	}
	p, err := u.employers.GetProfile(ctx, id)
	if err != nil {
		return employer.Employer{}, employer.CompanyProfile{}, ErrInternal
	}
	return e, p, nil
}

func (u *Profiles) UpdateAccount(ctx context.Context, id uuid.UUID, companyName, email string) error {
	companyName = strings.TrimSpace(companyName)
	email = normalizeEmail(email)

	fields := map[string]string{}
	if companyName == "" {
		fields["company_name"] = "this field is required"
	} else if len([]rune(companyName)) > maxCompanyNameLen {
		fields["company_name"] = "company name must be at most 150 characters"
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "must be a valid email address"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	current, err := u.employers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if email != current.Email {
		taken, err := u.employers.ExistsByEmail(ctx, email)
		if err != nil {
			return ErrInternal
		}
		if taken {
			return ErrEmailTaken
		}
	}

	if err := u.employers.UpdateAccount(ctx, id, companyName, email); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profiles) UpdateDetails(ctx context.Context, id uuid.UUID, in CompanyDetailsInput) error {
	fields := map[string]string{}

	if desc := strings.TrimSpace(in.Description); desc != "" && len([]rune(desc)) < 20 {
		fields["description"] = "description must be at least 20 characters"
	}
	if in.CompanySize != "" && !contains(employer.CompanySizes, in.CompanySize) {
		fields["company_size"] = "unknown company size"
	}
	if in.FoundedDate != nil && in.FoundedDate.After(u.now()) {
		fields["founded_date"] = "founded date cannot be in the future"
	}
	if in.PhoneNumber != "" && !validPhone(in.PhoneNumber) {
		fields["phone_number"] = "phone number must be 10 to 15 digits"
	}
	for name, url := range map[string]string{
		"website":  in.Website,
		"facebook": in.Facebook,
		"linkedin": in.LinkedIn,
	} {
		if url != "" && !validHTTPURL(url) {
			fields[name] = "must be an http(s) URL"
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}

	p, err := u.employers.GetProfile(ctx, id)
	if err != nil {
		return ErrInternal
	}
	p.Description = strings.TrimSpace(in.Description)
	p.Website = strings.TrimSpace(in.Website)
	p.Facebook = strings.TrimSpace(in.Facebook)
	p.LinkedIn = strings.TrimSpace(in.LinkedIn)
	p.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	p.Address = strings.TrimSpace(in.Address)
	p.CompanySize = in.CompanySize
	p.FoundedDate = in.FoundedDate

	if err := u.employers.UpsertProfile(ctx, p); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profiles) ChangePassword(ctx context.Context, id uuid.UUID, current, next string) error {
	e, err := u.employers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(current)) != nil {
		return ErrInvalidCredentials
	}
	if !ValidPassword(next) {
		return &ValidationError{Fields: map[string]string{
			"password": "password must be 6-16 characters with at least one digit and one special character",
		}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return ErrInternal
	}
	if err := u.employers.UpdatePassword(ctx, id, string(hash)); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profiles) ToggleNotify(ctx context.Context, id uuid.UUID) (bool, error) {
	e, err := u.employers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return false, ErrNotFound
		}
		return false, ErrInternal
	}
	next := !e.EmailNotify
	if err := u.employers.UpdateNotify(ctx, id, next); err != nil {
		return false, ErrInternal
	}
	return next, nil
}

func (u *Profiles) UpdateLocation(ctx context.Context, id uuid.UUID, lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidInput
	}
	if err := u.employers.UpdateLocation(ctx, id, lat, lng); err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Profiles) SetLogo(ctx context.Context, id uuid.UUID, logoRef string) error {
	return u.setProfileRef(ctx, id, func(p *employer.CompanyProfile) {
		p.LogoRef = strings.TrimSpace(logoRef)
	}, logoRef)
}

func (u *Profiles) SubmitCertificate(ctx context.Context, id uuid.UUID, certRef string) error {
	now := u.now()
	return u.setProfileRef(ctx, id, func(p *employer.CompanyProfile) {
		p.CertificateRef = strings.TrimSpace(certRef)
		p.CertificateSubmittedAt = &now
	}, certRef)
}

func (u *Profiles) setProfileRef(ctx context.Context, id uuid.UUID, apply func(*employer.CompanyProfile), ref string) error {
	if strings.TrimSpace(ref) == "" {
		return ErrInvalidInput
	}
	p, err := u.employers.GetProfile(ctx, id)
	if err != nil {
		return ErrInternal
	}
	apply(&p)
	if err := u.employers.UpsertProfile(ctx, p); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profiles) SetCV(ctx context.Context, candidateID uuid.UUID, cvRef string) error {
	if strings.TrimSpace(cvRef) == "" {
		return ErrInvalidInput
	}
	err := u.candidates.SetCV(ctx, candidateID, strings.TrimSpace(cvRef))
	if errors.Is(err, repository.ErrCandidateNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

// SavedJobs resolves the candidate's bookmarks to postings. Bookmarks on
// postings that have since gone away are skipped, not surfaced as errors.
func (u *Profiles) SavedJobs(ctx context.Context, candidateID uuid.UUID) ([]job.Posting, error) {
	ids, err := u.candidates.SavedPostingIDs(ctx, candidateID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]job.Posting, 0, len(ids))
	for _, id := range ids {
		p, err := u.postings.GetByID(ctx, id)
		if errors.Is(err, repository.ErrPostingNotFound) {
			continue
		}
		if err != nil {
			return nil, ErrInternal
		}
		out = append(out, p)
	}
	return out, nil
}

func (u *Profiles) SaveJob(ctx context.Context, candidateID, postingID uuid.UUID) error {
	if _, err := u.postings.GetEligibleByID(ctx, postingID); err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	if err := u.candidates.SavePosting(ctx, candidateID, postingID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profiles) UnsaveJob(ctx context.Context, candidateID, postingID uuid.UUID) error {
	if err := u.candidates.UnsavePosting(ctx, candidateID, postingID); err != nil {
		return ErrInternal
	}
	return nil
}

func validPhone(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' || r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 10 && digits <= 15
}

func validHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
