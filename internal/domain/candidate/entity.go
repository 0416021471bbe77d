package candidate

import (
	"time"

	"github.com/google/uuid"
)

type Candidate struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	CVRef        string
	JoinedAt     time.Time
}

// HasCV reports whether the candidate has a CV on file. Applying to a
// posting requires one.
func (c Candidate) HasCV() bool {
	return c.CVRef != ""
}

// SavedJob is a candidate's bookmark on a posting.
type SavedJob struct {
	CandidateID uuid.UUID
	PostingID   uuid.UUID
	SavedAt     time.Time
}
