// Package search implements the posting matcher: a multi-criteria search
// over the active posting snapshot combining exact structured matches,
// fuzzy text similarity and a linear recency decay into four relevance
// buckets. "All structured fields match" always outranks any amount of
// text similarity, which is why results are bucketed instead of blended
// into one score.
package search

import (
	"errors"
	"sort"
	"strings"
	"time"

	"workwise/internal/domain/job"
)

// ErrIncompleteCriteria is returned when any of the five criteria fields is
// empty. No partial match is attempted.
var ErrIncompleteCriteria = errors.New("incomplete search criteria")

// Criteria is a full five-field search. All fields are required.
type Criteria struct {
	Title      string
	Industry   string
	Department string
	WorkType   string
	Location   string
}

// Normalize trims every field.
func (c Criteria) Normalize() Criteria {
	return Criteria{
		Title:      strings.TrimSpace(c.Title),
		Industry:   strings.TrimSpace(c.Industry),
		Department: strings.TrimSpace(c.Department),
		WorkType:   strings.TrimSpace(c.WorkType),
		Location:   strings.TrimSpace(c.Location),
	}
}

// Validate enforces the no-partial-search rule.
func (c Criteria) Validate() error {
	c = c.Normalize()
	if c.Title == "" || c.Industry == "" || c.Department == "" || c.WorkType == "" || c.Location == "" {
		return ErrIncompleteCriteria
	}
	return nil
}

// Similarity thresholds and the recency window.
const (
	LocationThreshold = 80
	TitleThreshold    = 60
	recencyWindowDays = 30
)

// RecencyScore decays linearly from 1 (just posted) to 0 (30 or more days
// old).
func RecencyScore(postedAt, now time.Time) float64 {
	daysOld := int(now.Sub(postedAt).Hours() / 24)
	score := float64(recencyWindowDays-daysOld) / recencyWindowDays
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

type scored struct {
	recency float64
	posting job.Posting
}

// Match ranks the posting snapshot against the criteria and returns the
// matching postings in relevance order. It is a pure function of
// (criteria, postings, now): inputs are never mutated and identical inputs
// produce identical output.
//
// Per posting, three exact signals (industry, department, work type
// equality) and two fuzzy signals (location similarity >= 80, title
// similarity >= 60) are evaluated, then the posting lands in the first
// bucket whose rule it satisfies:
//
//	bucket 1: all exact and both fuzzy signals
//	bucket 2: all exact and the title signal
//	bucket 3: all exact
//	bucket 4: any two signals in total
//
// Anything with fewer than two total signals is discarded. Buckets are
// concatenated in order, each sorted by descending recency; equal recency
// keeps snapshot order (stable).
func Match(criteria Criteria, postings []job.Posting, now time.Time) ([]job.Posting, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	criteria = criteria.Normalize()

	var buckets [4][]scored

	for _, p := range postings {
		exactCount := 0
		if p.Industry == criteria.Industry {
			exactCount++
		}
		if p.Department == criteria.Department {
			exactCount++
		}
		if p.WorkType == criteria.WorkType {
			exactCount++
		}

		locScore := TokenSortRatio(criteria.Location, p.FullLocationAddress)
		titleScore := TokenSortRatio(criteria.Title, p.Title)

		fuzzyCount := 0
		if locScore >= LocationThreshold {
			fuzzyCount++
		}
		if titleScore >= TitleThreshold {
			fuzzyCount++
		}

		entry := scored{recency: RecencyScore(p.PostedAt, now), posting: p}

		switch {
		case exactCount == 3 && locScore >= LocationThreshold && titleScore >= TitleThreshold:
			buckets[0] = append(buckets[0], entry)
		case exactCount == 3 && titleScore >= TitleThreshold:
			buckets[1] = append(buckets[1], entry)
		case exactCount == 3:
			buckets[2] = append(buckets[2], entry)
		case exactCount+fuzzyCount >= 2:
			buckets[3] = append(buckets[3], entry)
		}
	}

	out := make([]job.Posting, 0, len(buckets[0])+len(buckets[1])+len(buckets[2])+len(buckets[3]))
	for i := range buckets {
		b := buckets[i]
		sort.SliceStable(b, func(x, y int) bool { return b[x].recency > b[y].recency })
		for _, e := range b {
			out = append(out, e.posting)
		}
	}
	return out, nil
}
