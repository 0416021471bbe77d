package dto

import (
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/application"
	"workwise/internal/repository"
)

type ApplicationResponse struct {
	ID             uuid.UUID  `json:"id"`
	PostingID      uuid.UUID  `json:"posting_id"`
	CandidateID    uuid.UUID  `json:"candidate_id"`
	Status         string     `json:"status"`
	CoverLetterRef string     `json:"cover_letter_ref"`
	InterviewAt    *time.Time `json:"interview_at,omitempty"`
	MeetingMessage string     `json:"meeting_message,omitempty"`
	MeetingLink    string     `json:"meeting_link,omitempty"`
	AppliedAt      time.Time  `json:"applied_at"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:             a.ID,
		PostingID:      a.PostingID,
		CandidateID:    a.CandidateID,
		Status:         a.Status,
		CoverLetterRef: a.CoverLetterRef,
		InterviewAt:    a.InterviewAt,
		MeetingMessage: a.MeetingMessage,
		MeetingLink:    a.MeetingLink,
		AppliedAt:      a.AppliedAt,
	}
}

func FromApplications(as []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromApplication(a))
	}
	return out
}

type InterviewResponse struct {
	ApplicationResponse
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
	PostingTitle   string `json:"posting_title"`
}

func FromInterviewRow(r repository.InterviewRow) InterviewResponse {
	return InterviewResponse{
		ApplicationResponse: FromApplication(r.Application),
		CandidateName:       r.CandidateName,
		CandidateEmail:      r.CandidateEmail,
		PostingTitle:        r.PostingTitle,
	}
}

func FromInterviewRows(rs []repository.InterviewRow) []InterviewResponse {
	out := make([]InterviewResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromInterviewRow(r))
	}
	return out
}
