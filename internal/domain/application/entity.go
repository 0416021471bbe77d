package application

import (
	"time"

	"github.com/google/uuid"
)

// Application statuses. Rejected is terminal; the rest advance in order.
const (
	StatusApplied   = "applied"
	StatusReviewing = "reviewing"
	StatusInterview = "interview"
	StatusOffered   = "offered"
	StatusRejected  = "rejected"
)

var Statuses = []string{StatusApplied, StatusReviewing, StatusInterview, StatusOffered, StatusRejected}

type Application struct {
	ID             uuid.UUID
	PostingID      uuid.UUID
	CandidateID    uuid.UUID
	Status         string
	CoverLetterRef string
	InterviewAt    *time.Time
	MeetingMessage string
	MeetingLink    string
	AppliedAt      time.Time
}

// allowed transitions, keyed by current status.
var transitions = map[string][]string{
	StatusApplied:   {StatusReviewing, StatusInterview, StatusOffered, StatusRejected},
	StatusReviewing: {StatusInterview, StatusOffered, StatusRejected},
	StatusInterview: {StatusOffered, StatusRejected},
	StatusOffered:   {},
	StatusRejected:  {},
}

// CanTransition reports whether an application may move from its current
// status to next.
func CanTransition(current, next string) bool {
	for _, s := range transitions[current] {
		if s == next {
			return true
		}
	}
	return false
}
