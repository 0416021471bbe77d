package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/application"
	"workwise/internal/domain/candidate"
	"workwise/internal/domain/employer"
	"workwise/internal/domain/job"
	"workwise/internal/repository"
)

type mockPostingRepo struct {
	postings map[uuid.UUID]job.Posting
	created  []job.Posting
	err      error
}

func newMockPostingRepo(ps ...job.Posting) *mockPostingRepo {
	m := &mockPostingRepo{postings: map[uuid.UUID]job.Posting{}}
	for _, p := range ps {
		m.postings[p.ID] = p
	}
	return m
}

func (m *mockPostingRepo) Create(_ context.Context, p job.Posting) error {
	if m.err != nil {
		return m.err
	}
	m.postings[p.ID] = p
	m.created = append(m.created, p)
	return nil
}

func (m *mockPostingRepo) Update(_ context.Context, p job.Posting) error {
	old, ok := m.postings[p.ID]
	if !ok || old.EmployerID != p.EmployerID {
		return repository.ErrPostingNotFound
	}
	m.postings[p.ID] = p
	return nil
}

func (m *mockPostingRepo) Deactivate(_ context.Context, id, employerID uuid.UUID) error {
	p, ok := m.postings[id]
	if !ok || p.EmployerID != employerID {
		return repository.ErrPostingNotFound
	}
	p.IsActive = false
	m.postings[id] = p
	return nil
}

func (m *mockPostingRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	p, ok := m.postings[id]
	if !ok {
		return job.Posting{}, repository.ErrPostingNotFound
	}
	return p, nil
}

func (m *mockPostingRepo) GetEligibleByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	p, ok := m.postings[id]
	if !ok || !p.IsActive || p.AdminReview {
		return job.Posting{}, repository.ErrPostingNotFound
	}
	return p, nil
}

func (m *mockPostingRepo) EligibleSnapshot(_ context.Context, today time.Time) ([]job.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Posting, 0)
	for _, p := range m.postings {
		if p.IsActive && !p.AdminReview && !p.ApplicationDeadline.Before(today) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPostingRepo) ListNewest(_ context.Context, _ time.Time) ([]job.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]job.Posting, 0, len(m.postings))
	for _, p := range m.postings {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPostingRepo) Browse(_ context.Context, _ repository.BrowseFilter) ([]job.Posting, error) {
	return m.ListNewest(nil, time.Time{})
}

func (m *mockPostingRepo) ListByEmployer(_ context.Context, employerID uuid.UUID, _ time.Time) ([]repository.ManageRow, error) {
	out := make([]repository.ManageRow, 0)
	for _, p := range m.postings {
		if p.EmployerID == employerID {
			out = append(out, repository.ManageRow{Posting: p})
		}
	}
	return out, nil
}

func (m *mockPostingRepo) DeactivateExpired(_ context.Context, today time.Time) (int64, error) {
	var n int64
	for id, p := range m.postings {
		if p.IsActive && p.ApplicationDeadline.Before(today) {
			p.IsActive = false
			m.postings[id] = p
			n++
		}
	}
	return n, nil
}

type mockEmployerRepo struct {
	employer employer.Employer
	profile  employer.CompanyProfile
	premium  employer.Premium

	emailTaken bool
	err        error

	updatedPasswordHash string
	updatedNotify       *bool
}

func (m *mockEmployerRepo) Create(_ context.Context, e employer.Employer) error {
	if m.err != nil {
		return m.err
	}
	m.employer = e
	return nil
}

func (m *mockEmployerRepo) GetByID(_ context.Context, id uuid.UUID) (employer.Employer, error) {
	if m.err != nil {
		return employer.Employer{}, m.err
	}
	if m.employer.ID != id {
		return employer.Employer{}, repository.ErrEmployerNotFound
	}
	return m.employer, nil
}

func (m *mockEmployerRepo) GetByEmail(_ context.Context, email string) (employer.Employer, error) {
	if m.employer.Email != email {
		return employer.Employer{}, repository.ErrEmployerNotFound
	}
	return m.employer, nil
}

func (m *mockEmployerRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return m.emailTaken, nil
}

func (m *mockEmployerRepo) UpdateAccount(_ context.Context, _ uuid.UUID, companyName, email string) error {
	m.employer.CompanyName = companyName
	m.employer.Email = email
	return nil
}

func (m *mockEmployerRepo) UpdatePassword(_ context.Context, _ uuid.UUID, hash string) error {
	m.updatedPasswordHash = hash
	return nil
}

func (m *mockEmployerRepo) UpdateNotify(_ context.Context, _ uuid.UUID, notify bool) error {
	m.updatedNotify = &notify
	m.employer.EmailNotify = notify
	return nil
}

func (m *mockEmployerRepo) UpdateLocation(_ context.Context, _ uuid.UUID, lat, lng float64) error {
	m.employer.MapLat = &lat
	m.employer.MapLng = &lng
	return nil
}

func (m *mockEmployerRepo) GetProfile(_ context.Context, id uuid.UUID) (employer.CompanyProfile, error) {
	p := m.profile
	p.EmployerID = id
	return p, nil
}

func (m *mockEmployerRepo) UpsertProfile(_ context.Context, p employer.CompanyProfile) error {
	m.profile = p
	return nil
}

func (m *mockEmployerRepo) GetPremium(_ context.Context, id uuid.UUID) (employer.Premium, error) {
	p := m.premium
	p.EmployerID = id
	return p, nil
}

func (m *mockEmployerRepo) UpsertPremium(_ context.Context, p employer.Premium) error {
	m.premium = p
	return nil
}

type mockCandidateRepo struct {
	candidate  candidate.Candidate
	emailTaken bool
	savedIDs   []uuid.UUID
}

func (m *mockCandidateRepo) Create(_ context.Context, c candidate.Candidate) error {
	m.candidate = c
	return nil
}

func (m *mockCandidateRepo) GetByID(_ context.Context, id uuid.UUID) (candidate.Candidate, error) {
	if m.candidate.ID != id {
		return candidate.Candidate{}, repository.ErrCandidateNotFound
	}
	return m.candidate, nil
}

func (m *mockCandidateRepo) GetByEmail(_ context.Context, email string) (candidate.Candidate, error) {
	if m.candidate.Email != email {
		return candidate.Candidate{}, repository.ErrCandidateNotFound
	}
	return m.candidate, nil
}

func (m *mockCandidateRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) {
	return m.emailTaken, nil
}

func (m *mockCandidateRepo) SetCV(_ context.Context, id uuid.UUID, cvRef string) error {
	if m.candidate.ID != id {
		return repository.ErrCandidateNotFound
	}
	m.candidate.CVRef = cvRef
	return nil
}

func (m *mockCandidateRepo) SavedPostingIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return m.savedIDs, nil
}

func (m *mockCandidateRepo) SavePosting(_ context.Context, _, postingID uuid.UUID) error {
	m.savedIDs = append(m.savedIDs, postingID)
	return nil
}

func (m *mockCandidateRepo) UnsavePosting(_ context.Context, _, postingID uuid.UUID) error {
	out := m.savedIDs[:0]
	for _, id := range m.savedIDs {
		if id != postingID {
			out = append(out, id)
		}
	}
	m.savedIDs = out
	return nil
}

type mockApplicationRepo struct {
	apps    map[uuid.UUID]application.Application
	byOrder []uuid.UUID

	interviews []repository.InterviewRow

	scheduledAt *time.Time
	meeting     [2]string
}

func newMockApplicationRepo(as ...application.Application) *mockApplicationRepo {
	m := &mockApplicationRepo{apps: map[uuid.UUID]application.Application{}}
	for _, a := range as {
		m.apps[a.ID] = a
		m.byOrder = append(m.byOrder, a.ID)
	}
	return m
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	for _, existing := range m.apps {
		if existing.PostingID == a.PostingID && existing.CandidateID == a.CandidateID {
			return repository.ErrAlreadyApplied
		}
	}
	m.apps[a.ID] = a
	m.byOrder = append(m.byOrder, a.ID)
	return nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) GetForEmployer(_ context.Context, id, _ uuid.UUID) (application.Application, error) {
	a, ok := m.apps[id]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) Exists(_ context.Context, postingID, candidateID uuid.UUID) (bool, error) {
	for _, a := range m.apps {
		if a.PostingID == postingID && a.CandidateID == candidateID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockApplicationRepo) ListByPosting(_ context.Context, postingID uuid.UUID, _ string) ([]application.Application, error) {
	out := make([]application.Application, 0)
	for _, id := range m.byOrder {
		if a := m.apps[id]; a.PostingID == postingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockApplicationRepo) ListInterviews(_ context.Context, _ uuid.UUID) ([]repository.InterviewRow, error) {
	return m.interviews, nil
}

func (m *mockApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	a, ok := m.apps[id]
	if !ok {
		return repository.ErrApplicationNotFound
	}
	a.Status = status
	m.apps[id] = a
	return nil
}

func (m *mockApplicationRepo) ScheduleInterview(_ context.Context, id uuid.UUID, at time.Time) error {
	a, ok := m.apps[id]
	if !ok {
		return repository.ErrApplicationNotFound
	}
	a.Status = application.StatusInterview
	a.InterviewAt = &at
	m.apps[id] = a
	m.scheduledAt = &at
	return nil
}

func (m *mockApplicationRepo) SetMeeting(_ context.Context, id uuid.UUID, message, link string) error {
	a, ok := m.apps[id]
	if !ok {
		return repository.ErrApplicationNotFound
	}
	a.MeetingMessage = message
	a.MeetingLink = link
	m.apps[id] = a
	m.meeting = [2]string{message, link}
	return nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *mockMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type mockRanker struct {
	reverse bool
	err     error
}

func (m mockRanker) Rank(_ context.Context, _ job.Posting, apps []application.Application) ([]application.Application, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !m.reverse {
		return apps, nil
	}
	out := make([]application.Application, len(apps))
	for i, a := range apps {
		out[len(apps)-1-i] = a
	}
	return out, nil
}

type mockCache struct {
	store map[string][]byte
	gets  int
	sets  int
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.gets++
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	if m.store == nil {
		m.store = map[string][]byte{}
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	delete(m.store, key)
	return nil
}
