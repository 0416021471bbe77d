package dto

import (
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/job"
	"workwise/internal/repository"
)

type JobResponse struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Industry            string    `json:"industry"`
	Department          string    `json:"department"`
	WorkType            string    `json:"work_type"`
	GenderRequirement   string    `json:"gender_requirement"`
	ExperienceLevel     string    `json:"experience_level"`
	ExperienceMin       int       `json:"experience_min"`
	ExperienceMax       int       `json:"experience_max"`
	SalaryType          string    `json:"salary_type"`
	SalaryFrequency     string    `json:"salary_frequency"`
	SalaryMin           float64   `json:"salary_min"`
	SalaryMax           float64   `json:"salary_max"`
	CandidatesRequired  int       `json:"candidates_required"`
	Requirements        []string  `json:"requirements"`
	PreferredSkills     []string  `json:"preferred_skills"`
	Languages           []string  `json:"languages"`
	Benefits            []string  `json:"benefits"`
	LocationType        string    `json:"location_type"`
	FullLocationAddress string    `json:"full_location_address"`
	MapLat              float64   `json:"map_lat"`
	MapLng              float64   `json:"map_lng"`
	Description         string    `json:"description"`
	ContactEmail        string    `json:"contact_email"`
	ApplicationDeadline string    `json:"application_deadline"`
	PostedAt            time.Time `json:"posted_at"`
	DaysLeft            int       `json:"days_left"`
}

func FromPosting(p job.Posting, today time.Time) JobResponse {
	return JobResponse{
		ID:                  p.ID,
		Title:               p.Title,
		Industry:            p.Industry,
		Department:          p.Department,
		WorkType:            p.WorkType,
		GenderRequirement:   p.GenderRequirement,
		ExperienceLevel:     p.ExperienceLevel,
		ExperienceMin:       p.ExperienceMin,
		ExperienceMax:       p.ExperienceMax,
		SalaryType:          p.SalaryType,
		SalaryFrequency:     p.SalaryFrequency,
		SalaryMin:           p.SalaryMin,
		SalaryMax:           p.SalaryMax,
		CandidatesRequired:  p.CandidatesRequired,
		Requirements:        p.Requirements,
		PreferredSkills:     p.PreferredSkills,
		Languages:           p.Languages,
		Benefits:            p.Benefits,
		LocationType:        p.LocationType,
		FullLocationAddress: p.FullLocationAddress,
		MapLat:              p.MapLat,
		MapLng:              p.MapLng,
		Description:         p.Description,
		ContactEmail:        p.ContactEmail,
		ApplicationDeadline: p.ApplicationDeadline.Format("2006-01-02"),
		PostedAt:            p.PostedAt,
		DaysLeft:            p.DaysLeft(today),
	}
}

func FromPostings(ps []job.Posting, today time.Time) []JobResponse {
	out := make([]JobResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPosting(p, today))
	}
	return out
}

// ManageJobResponse is one row of the employer's manage-jobs listing.
type ManageJobResponse struct {
	JobResponse
	Status            string `json:"status"`
	ApplicationsCount int    `json:"applications_count"`
}

func FromManageRow(m repository.ManageRow, today time.Time) ManageJobResponse {
	return ManageJobResponse{
		JobResponse:       FromPosting(m.Posting, today),
		Status:            m.Posting.ManageStatus(today),
		ApplicationsCount: m.ApplicationsCount,
	}
}

func FromManageRows(ms []repository.ManageRow, today time.Time) []ManageJobResponse {
	out := make([]ManageJobResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromManageRow(m, today))
	}
	return out
}
