package search

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"workwise/internal/domain/job"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func testCriteria() Criteria {
	return Criteria{
		Title:      "Backend Engineer",
		Industry:   "information_technology",
		Department: "software_development",
		WorkType:   "full_time",
		Location:   "Colombo",
	}
}

func posting(mutate func(*job.Posting)) job.Posting {
	p := job.Posting{
		ID:                  uuid.New(),
		Title:               "Backend Engineer",
		Industry:            "information_technology",
		Department:          "software_development",
		WorkType:            "full_time",
		FullLocationAddress: "Colombo",
		PostedAt:            testNow,
		IsActive:            true,
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func TestMatch_IncompleteCriteria(t *testing.T) {
	c := testCriteria()
	c.Location = "   "
	_, err := Match(c, []job.Posting{posting(nil)}, testNow)
	if err != ErrIncompleteCriteria {
		t.Fatalf("expected ErrIncompleteCriteria, got %v", err)
	}
}

func TestMatch_FullMatchRanksFirst(t *testing.T) {
	full := posting(nil)
	exactOnly := posting(func(p *job.Posting) {
		p.Title = "Head Chef"
		p.FullLocationAddress = "Kandy Road, Peradeniya"
	})

	got, err := Match(testCriteria(), []job.Posting{exactOnly, full}, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].ID != full.ID {
		t.Fatalf("expected the fully matching posting first")
	}
}

func TestMatch_ExactOnlyBeatsPartial(t *testing.T) {
	// bucket 3: all exact fields, no text similarity, 25 days old
	exactOnly := posting(func(p *job.Posting) {
		p.Title = "Plantation Supervisor"
		p.FullLocationAddress = "Galle Face, Colombo 03, Western Province, Sri Lanka"
		p.PostedAt = testNow.AddDate(0, 0, -25)
	})
	// bucket 4: one exact + one fuzzy signal, fresh
	partial := posting(func(p *job.Posting) {
		p.Industry = "hospitality"
		p.Department = "front_desk"
		p.FullLocationAddress = "Remote"
	})

	got, err := Match(testCriteria(), []job.Posting{partial, exactOnly}, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].ID != exactOnly.ID {
		t.Fatalf("expected the all-exact posting above the partial match regardless of recency")
	}
}

func TestMatch_FewerThanTwoSignalsDiscarded(t *testing.T) {
	noMatch := posting(func(p *job.Posting) {
		p.Title = "Head Chef"
		p.Industry = "hospitality"
		p.Department = "housekeeping"
		p.WorkType = "contract"
		p.FullLocationAddress = "Kandy"
	})
	oneSignal := posting(func(p *job.Posting) {
		p.Title = "Head Chef"
		p.Industry = "hospitality"
		p.Department = "housekeeping"
		p.FullLocationAddress = "Kandy"
	})

	got, err := Match(testCriteria(), []job.Posting{noMatch, oneSignal}, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no results, got %d", len(got))
	}
}

func TestMatch_TwoSignalsLandInBucketFour(t *testing.T) {
	// work type exact + title fuzzy, nothing else
	p3 := posting(func(p *job.Posting) {
		p.Title = "Senior Backend Engineer"
		p.Industry = "hospitality"
		p.Department = "housekeeping"
		p.FullLocationAddress = "Kandy"
	})

	got, err := Match(testCriteria(), []job.Posting{p3}, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

func TestMatch_RecencyOrdersWithinBucket(t *testing.T) {
	old := posting(func(p *job.Posting) { p.PostedAt = testNow.AddDate(0, 0, -20) })
	mid := posting(func(p *job.Posting) { p.PostedAt = testNow.AddDate(0, 0, -10) })
	fresh := posting(func(p *job.Posting) { p.PostedAt = testNow })

	got, err := Match(testCriteria(), []job.Posting{old, fresh, mid}, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []uuid.UUID{fresh.ID, mid.ID, old.ID}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: wrong posting", i)
		}
	}
}

func TestMatch_EqualRecencyKeepsSnapshotOrder(t *testing.T) {
	first := posting(nil)
	second := posting(nil)

	got, err := Match(testCriteria(), []job.Posting{first, second}, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("expected stable snapshot order for equal recency")
	}
}

func TestMatch_Idempotent(t *testing.T) {
	snapshot := []job.Posting{
		posting(func(p *job.Posting) { p.PostedAt = testNow.AddDate(0, 0, -5) }),
		posting(func(p *job.Posting) { p.Title = "Platform Engineer" }),
		posting(func(p *job.Posting) { p.Department = "devops" }),
		posting(func(p *job.Posting) { p.FullLocationAddress = "Kandy" }),
	}

	a, err := Match(testCriteria(), snapshot, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := Match(testCriteria(), snapshot, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(a) != len(b) {
		t.Fatalf("result lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("position %d differs between identical calls", i)
		}
	}
}

func TestMatch_DoesNotMutateInputs(t *testing.T) {
	p := posting(func(p *job.Posting) { p.PostedAt = testNow.AddDate(0, 0, -3) })
	snapshot := []job.Posting{p}

	if _, err := Match(testCriteria(), snapshot, testNow); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if snapshot[0].ID != p.ID || snapshot[0].Title != p.Title || !snapshot[0].PostedAt.Equal(p.PostedAt) {
		t.Fatalf("snapshot mutated")
	}
}

func TestMatch_EmptyLocationDegradesNotErrors(t *testing.T) {
	p := posting(func(p *job.Posting) { p.FullLocationAddress = "" })

	got, err := Match(testCriteria(), []job.Posting{p}, testNow)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// all three exact fields and the title still match: bucket 2
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
}

func TestRecencyScore(t *testing.T) {
	cases := []struct {
		daysOld int
		want    float64
	}{
		{0, 1},
		{15, 0.5},
		{25, 5.0 / 30.0},
		{30, 0},
		{45, 0},
	}
	for _, c := range cases {
		got := RecencyScore(testNow.AddDate(0, 0, -c.daysOld), testNow)
		if diff := got - c.want; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("daysOld=%d: expected %v, got %v", c.daysOld, c.want, got)
		}
	}
}
