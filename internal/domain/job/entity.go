package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is an employer's job listing. Only postings with IsActive=true and
// AdminReview=false are visible to candidates.
type Posting struct {
	ID                  uuid.UUID
	EmployerID          uuid.UUID
	ContactEmail        string
	ApplicationDeadline time.Time
	Title               string
	Industry            string
	Department          string
	WorkType            string
	GenderRequirement   string
	ExperienceLevel     string
	ExperienceMin       int
	ExperienceMax       int
	SalaryType          string
	SalaryFrequency     string
	SalaryMin           float64
	SalaryMax           float64
	CandidatesRequired  int
	Requirements        []string
	PreferredSkills     []string
	Languages           []string
	Benefits            []string
	LocationType        string
	FullLocationAddress string
	MapLat              float64
	MapLng              float64
	Description         string
	PostedAt            time.Time
	IsActive            bool
	AdminReview         bool
}

// Statuses shown on the employer's manage-jobs listing.
const (
	StatusActive      = "active"
	StatusDeactivated = "deactivated"
	StatusExpired     = "expired"
)

// ManageStatus classifies a posting for the manage-jobs listing: deactivated
// wins over expired, expired means the deadline passed while still active.
func (p Posting) ManageStatus(today time.Time) string {
	if !p.IsActive {
		return StatusDeactivated
	}
	if p.ApplicationDeadline.Before(truncateToDay(today)) {
		return StatusExpired
	}
	return StatusActive
}

// DaysLeft until the application deadline; negative once expired.
func (p Posting) DaysLeft(today time.Time) int {
	return int(p.ApplicationDeadline.Sub(truncateToDay(today)).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
