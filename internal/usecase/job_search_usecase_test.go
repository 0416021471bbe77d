package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/job"
	"workwise/internal/search"
)

func searchPosting(title string, postedAt time.Time, deadline time.Time) job.Posting {
	return job.Posting{
		ID:                  uuid.New(),
		EmployerID:          uuid.New(),
		Title:               title,
		Industry:            "information_technology",
		Department:          "software_development",
		WorkType:            "full_time",
		FullLocationAddress: "Berlin Germany",
		PostedAt:            postedAt,
		ApplicationDeadline: deadline,
		IsActive:            true,
	}
}

func fullCriteria() search.Criteria {
	return search.Criteria{
		Title:      "Backend Engineer",
		Industry:   "information_technology",
		Department: "software_development",
		WorkType:   "full_time",
		Location:   "Berlin Germany",
	}
}

func newSearchForTest(postings *mockPostingRepo, cache *mockCache, now time.Time) *JobSearch {
	uc := NewJobSearchUsecase(postings, cache, nil)
	uc.now = func() time.Time { return now }
	return uc
}

func TestSearch_IncompleteCriteria(t *testing.T) {
	uc := newSearchForTest(newMockPostingRepo(), &mockCache{}, time.Now())

	crit := fullCriteria()
	crit.Location = "   "
	_, _, err := uc.Search(context.Background(), crit, 1)
	if !errors.Is(err, search.ErrIncompleteCriteria) {
		t.Fatalf("expected ErrIncompleteCriteria, got %v", err)
	}
}

func TestSearch_CachesFullResult(t *testing.T) {
	now := time.Now()
	posting := searchPosting("Backend Engineer", now.AddDate(0, 0, -2), now.AddDate(0, 0, 10))
	postings := newMockPostingRepo(posting)
	cache := &mockCache{}
	uc := newSearchForTest(postings, cache, now)

	items, total, err := uc.Search(context.Background(), fullCriteria(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected one match, got %d/%d", len(items), total)
	}
	if cache.sets != 1 {
		t.Fatalf("expected the result to be cached, sets=%d", cache.sets)
	}

	// second call must be served from cache, not the repository
	postings.err = errors.New("db down")
	items, _, err = uc.Search(context.Background(), fullCriteria(), 1)
	if err != nil {
		t.Fatalf("expected cache hit, got %v", err)
	}
	if len(items) != 1 || items[0].ID != posting.ID {
		t.Fatalf("cache returned wrong result")
	}
}

func TestSearch_EquivalentCriteriaShareCacheKey(t *testing.T) {
	a := fullCriteria()
	b := fullCriteria()
	b.Title = "  backend ENGINEER "
	b.Location = " berlin germany"

	if SearchCacheKey(a.Normalize()) != SearchCacheKey(b.Normalize()) {
		t.Fatalf("normalized criteria should share a cache key")
	}

	c := fullCriteria()
	c.Title = "Data Analyst"
	if SearchCacheKey(a.Normalize()) == SearchCacheKey(c.Normalize()) {
		t.Fatalf("different criteria must not collide")
	}
}

func TestSearch_Pagination(t *testing.T) {
	now := time.Now()
	postings := newMockPostingRepo()
	for i := 0; i < PageSizeSearch+5; i++ {
		p := searchPosting("Backend Engineer", now.AddDate(0, 0, -1), now.AddDate(0, 0, 10))
		postings.postings[p.ID] = p
	}
	uc := newSearchForTest(postings, &mockCache{}, now)

	page1, total, err := uc.Search(context.Background(), fullCriteria(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != PageSizeSearch+5 {
		t.Fatalf("expected total %d, got %d", PageSizeSearch+5, total)
	}
	if len(page1) != PageSizeSearch {
		t.Fatalf("expected a full first page, got %d", len(page1))
	}

	page2, _, err := uc.Search(context.Background(), fullCriteria(), 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(page2) != 5 {
		t.Fatalf("expected 5 on second page, got %d", len(page2))
	}
}

func TestBrowse_RejectsUnknownFilter(t *testing.T) {
	uc := newSearchForTest(newMockPostingRepo(), &mockCache{}, time.Now())

	_, _, err := uc.Browse(context.Background(), "salary", "high", "", 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetPosting_NotFound(t *testing.T) {
	uc := newSearchForTest(newMockPostingRepo(), &mockCache{}, time.Now())

	_, err := uc.GetPosting(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
