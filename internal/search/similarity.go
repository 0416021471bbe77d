package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// TokenSortRatio is a token-order-insensitive similarity score in [0, 100].
// Both strings are lowercased, split on whitespace, token-sorted and
// rejoined before comparing, so "engineer backend" and "Backend Engineer"
// score 100. The comparison itself is a normalized edit-distance ratio.
func TokenSortRatio(a, b string) int {
	na := tokenSortNormalize(a)
	nb := tokenSortNormalize(b)

	if na == "" || nb == "" {
		if na == nb {
			return 100
		}
		return 0
	}
	if na == nb {
		return 100
	}

	dist := levenshtein.ComputeDistance(na, nb)
	longest := len([]rune(na))
	if l := len([]rune(nb)); l > longest {
		longest = l
	}

	// rounded to nearest integer, as ratio scores conventionally are
	return int(100.0*(1.0-float64(dist)/float64(longest)) + 0.5)
}

func tokenSortNormalize(s string) string {
	tokens := strings.Fields(strings.ToLower(s))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
