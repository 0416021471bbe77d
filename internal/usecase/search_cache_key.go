package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"workwise/internal/search"
)

type searchCacheKeyInput struct {
	Title      string `json:"title"`
	Industry   string `json:"industry"`
	Department string `json:"department"`
	WorkType   string `json:"work_type"`
	Location   string `json:"location"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// SearchCacheKey hashes the normalized criteria. The full ordered result is
// cached once per criteria; pagination happens after the cache.
func SearchCacheKey(c search.Criteria) string {
	in := searchCacheKeyInput{
		Title:      normalizeSearchValue(c.Title),
		Industry:   normalizeSearchValue(c.Industry),
		Department: normalizeSearchValue(c.Department),
		WorkType:   normalizeSearchValue(c.WorkType),
		Location:   normalizeSearchValue(c.Location),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "jobs:search:" + hex.EncodeToString(sum[:])
}
