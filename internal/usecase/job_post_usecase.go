package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"workwise/internal/domain/job"
	"workwise/internal/repository"
)

const (
	maxTitleLen         = 200
	minDescriptionWords = 50
)

// PostJobInput is the employer's job form. Struct tags cover the shape
// checks; taxonomy and cross-field rules are applied on top.
type PostJobInput struct {
	ContactEmail        string    `validate:"required,email"`
	ApplicationDeadline time.Time `validate:"required"`
	Title               string    `validate:"required"`
	Industry            string    `validate:"required"`
	Department          string    `validate:"required"`
	WorkType            string    `validate:"required"`
	GenderRequirement   string    `validate:"required"`
	ExperienceLevel     string    `validate:"required"`
	ExperienceMin       int       `validate:"min=0"`
	ExperienceMax       int       `validate:"min=0"`
	SalaryType          string    `validate:"required"`
	SalaryFrequency     string    `validate:"required"`
	SalaryMin           float64   `validate:"min=0"`
	SalaryMax           float64   `validate:"min=0"`
	CandidatesRequired  int       `validate:"required,min=1"`
	Requirements        []string  `validate:"required,min=1,dive,required"`
	PreferredSkills     []string  `validate:"dive,required"`
	Languages           []string  `validate:"dive,required"`
	Benefits            []string  `validate:"dive,required"`
	LocationType        string    `validate:"required"`
	FullLocationAddress string    `validate:"required"`
	MapLat              float64   `validate:"min=-90,max=90"`
	MapLng              float64   `validate:"min=-180,max=180"`
	Description         string    `validate:"required"`
}

type JobPostUsecase interface {
	Create(ctx context.Context, employerID uuid.UUID, in PostJobInput) (job.Posting, error)
	Update(ctx context.Context, employerID, postingID uuid.UUID, in PostJobInput) error
	Deactivate(ctx context.Context, employerID, postingID uuid.UUID) error
	GetOwn(ctx context.Context, employerID, postingID uuid.UUID) (job.Posting, error)
	Manage(ctx context.Context, employerID uuid.UUID, page int) ([]repository.ManageRow, int, error)
}

type JobPost struct {
	postings  repository.PostingRepository
	employers repository.EmployerRepository
	validate  *validator.Validate
	logger    *log.Logger
	now       func() time.Time
}

func NewJobPostUsecase(postings repository.PostingRepository, employers repository.EmployerRepository, logger *log.Logger) *JobPost {
	return &JobPost{
		postings:  postings,
		employers: employers,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// Create checks the posting prerequisites in order: verified employer,
// complete company profile, active premium subscription. Only then is the
// form validated and stored.
func (u *JobPost) Create(ctx context.Context, employerID uuid.UUID, in PostJobInput) (job.Posting, error) {
	now := u.now()

	emp, err := u.employers.GetByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployerNotFound) {
			return job.Posting{}, ErrUnauthorized
		}
		return job.Posting{}, ErrInternal
	}
	if !emp.IsVerified {
		return job.Posting{}, ErrNotVerified
	}

	profile, err := u.employers.GetProfile(ctx, employerID)
	if err != nil {
		return job.Posting{}, ErrInternal
	}
	if missing := profile.Complete(); len(missing) > 0 {
		return job.Posting{}, &ProfileIncompleteError{Missing: missing}
	}

	premium, err := u.employers.GetPremium(ctx, employerID)
	if err != nil {
		return job.Posting{}, ErrInternal
	}
	if !premium.Active(now) {
		return job.Posting{}, ErrPremiumRequired
	}

	if err := u.validateInput(in, now); err != nil {
		return job.Posting{}, err
	}

	p := postingFromInput(in)
	p.ID = uuid.New()
	p.EmployerID = employerID
	p.PostedAt = now
	p.IsActive = true

	if err := u.postings.Create(ctx, p); err != nil {
		if u.logger != nil {
			u.logger.Printf("job post: insert failed: %v", err)
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *JobPost) Update(ctx context.Context, employerID, postingID uuid.UUID, in PostJobInput) error {
	if err := u.validateInput(in, u.now()); err != nil {
		return err
	}

	p := postingFromInput(in)
	p.ID = postingID
	p.EmployerID = employerID

	err := u.postings.Update(ctx, p)
	if errors.Is(err, repository.ErrPostingNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (u *JobPost) Deactivate(ctx context.Context, employerID, postingID uuid.UUID) error {
	err := u.postings.Deactivate(ctx, postingID, employerID)
	if errors.Is(err, repository.ErrPostingNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (u *JobPost) GetOwn(ctx context.Context, employerID, postingID uuid.UUID) (job.Posting, error) {
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

func (u *JobPost) Manage(ctx context.Context, employerID uuid.UUID, page int) ([]repository.ManageRow, int, error) {
	rows, err := u.postings.ListByEmployer(ctx, employerID, u.now())
	if err != nil {
		return nil, 0, ErrInternal
	}
	out, total := paginate(rows, page, PageSizeManage)
	return out, total, nil
}

func (u *JobPost) validateInput(in PostJobInput, now time.Time) error {
	fields := map[string]string{}

	if err := u.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[fieldName(fe.Field())] = tagMessage(fe)
			}
		} else {
			return ErrInvalidInput
		}
	}

	if len(in.Title) > maxTitleLen {
		fields["title"] = "title must be at most 200 characters"
	}
	if !in.ApplicationDeadline.IsZero() && in.ApplicationDeadline.Before(now) {
		fields["application_deadline"] = "application deadline must be in the future"
	}

	if in.Industry != "" && !job.ValidIndustry(in.Industry) {
		fields["industry"] = "unknown industry"
	} else if in.Department != "" && !job.ValidDepartment(in.Industry, in.Department) {
		fields["department"] = "department does not belong to the selected industry"
	}
	if in.WorkType != "" && !job.ValidWorkType(in.WorkType) {
		fields["work_type"] = "unknown work type"
	}
	if in.GenderRequirement != "" && !job.ValidGender(in.GenderRequirement) {
		fields["gender_requirement"] = "unknown gender requirement"
	}
	if in.ExperienceLevel != "" && !job.ValidExperience(in.ExperienceLevel) {
		fields["experience_level"] = "unknown experience level"
	} else if in.ExperienceLevel == "intern" {
		if in.ExperienceMin != 0 || in.ExperienceMax != 0 {
			fields["experience_min"] = "internships require zero years of experience"
		}
	} else if in.ExperienceMin > in.ExperienceMax {
		fields["experience_min"] = "minimum experience cannot exceed maximum"
	}

	if in.SalaryFrequency != "" && !job.ValidSalaryFreq(in.SalaryFrequency) {
		fields["salary_frequency"] = "unknown salary frequency"
	}
	switch in.SalaryType {
	case "":
	case "fixed":
		if in.SalaryMax < 0 {
			fields["salary_max"] = "salary cannot be negative"
		}
	case "negotiable":
		if in.SalaryMin < 0 || in.SalaryMin >= in.SalaryMax {
			fields["salary_min"] = "negotiable salary needs a range with minimum below maximum"
		}
	default:
		fields["salary_type"] = "unknown salary type"
	}

	if in.LocationType != "" && !job.ValidLocationType(in.LocationType) {
		fields["location_type"] = "unknown location type"
	}

	if in.Description != "" && len(strings.Fields(in.Description)) < minDescriptionWords {
		fields["description"] = "description must be at least 50 words"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func postingFromInput(in PostJobInput) job.Posting {
	return job.Posting{
		ContactEmail:        strings.TrimSpace(in.ContactEmail),
		ApplicationDeadline: in.ApplicationDeadline,
		Title:               strings.TrimSpace(in.Title),
		Industry:            in.Industry,
		Department:          in.Department,
		WorkType:            in.WorkType,
		GenderRequirement:   in.GenderRequirement,
		ExperienceLevel:     in.ExperienceLevel,
		ExperienceMin:       in.ExperienceMin,
		ExperienceMax:       in.ExperienceMax,
		SalaryType:          in.SalaryType,
		SalaryFrequency:     in.SalaryFrequency,
		SalaryMin:           in.SalaryMin,
		SalaryMax:           in.SalaryMax,
		CandidatesRequired:  in.CandidatesRequired,
		Requirements:        in.Requirements,
		PreferredSkills:     in.PreferredSkills,
		Languages:           in.Languages,
		Benefits:            in.Benefits,
		LocationType:        in.LocationType,
		FullLocationAddress: strings.TrimSpace(in.FullLocationAddress),
		MapLat:              in.MapLat,
		MapLng:              in.MapLng,
		Description:         in.Description,
	}
}

// fieldName converts the exported Go field name into the snake_case name
// clients see in responses.
func fieldName(goName string) string {
	var b strings.Builder
	for i, r := range goName {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "value is below the allowed minimum"
	case "max":
		return "value is above the allowed maximum"
	default:
		return "invalid value"
	}
}
