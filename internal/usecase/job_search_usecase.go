package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/job"
	"workwise/internal/repository"
	"workwise/internal/search"
)

const searchCacheTTL = 2 * time.Minute

type JobSearchUsecase interface {
	// Search runs the five-criteria matcher over the eligible snapshot
	// and returns one page of the ranked result. All five criteria are
	// required; search.ErrIncompleteCriteria otherwise.
	Search(ctx context.Context, criteria search.Criteria, page int) ([]job.Posting, int, error)
	ListNewest(ctx context.Context, page int) ([]job.Posting, int, error)
	Browse(ctx context.Context, filterType, keyword, query string, page int) ([]job.Posting, int, error)
	GetPosting(ctx context.Context, id uuid.UUID) (job.Posting, error)
}

type JobSearch struct {
	postings repository.PostingRepository
	cache    SearchCache
	logger   *log.Logger
	now      func() time.Time
}

func NewJobSearchUsecase(postings repository.PostingRepository, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{postings: postings, cache: cache, logger: logger, now: time.Now}
}

func (u *JobSearch) Search(ctx context.Context, criteria search.Criteria, page int) ([]job.Posting, int, error) {
	if err := criteria.Validate(); err != nil {
		return nil, 0, err
	}
	criteria = criteria.Normalize()

	cacheKey := SearchCacheKey(criteria)
	var ranked []job.Posting
	if u.cache != nil {
		hit, err := u.cache.GetJSON(ctx, cacheKey, &ranked)
		if err == nil && hit {
			out, total := paginate(ranked, page, PageSizeSearch)
			return out, total, nil
		}
	}

	now := u.now()
	snapshot, err := u.postings.EligibleSnapshot(ctx, now)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("search: snapshot query failed: %v", err)
		}
		return nil, 0, ErrInternal
	}

	ranked, err = search.Match(criteria, snapshot, now)
	if err != nil {
		return nil, 0, err
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, ranked, searchCacheTTL)
	}

	out, total := paginate(ranked, page, PageSizeSearch)
	return out, total, nil
}

func (u *JobSearch) ListNewest(ctx context.Context, page int) ([]job.Posting, int, error) {
	items, err := u.postings.ListNewest(ctx, u.now())
	if err != nil {
		return nil, 0, ErrInternal
	}
	out, total := paginate(items, page, PageSizeSearch)
	return out, total, nil
}

func (u *JobSearch) Browse(ctx context.Context, filterType, keyword, query string, page int) ([]job.Posting, int, error) {
	switch filterType {
	case "industry", "department", "title":
	default:
		return nil, 0, ErrInvalidInput
	}

	items, err := u.postings.Browse(ctx, repository.BrowseFilter{
		FilterType: filterType,
		Keyword:    keyword,
		Query:      query,
	})
	if err != nil {
		return nil, 0, ErrInternal
	}
	out, total := paginate(items, page, PageSizeSearch)
	return out, total, nil
}

func (u *JobSearch) GetPosting(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	p, err := u.postings.GetEligibleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return job.Posting{}, ErrNotFound
		}
		return job.Posting{}, ErrInternal
	}
	return p, nil
}
