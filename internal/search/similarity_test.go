package search

import "testing"

func TestTokenSortRatio_OrderInsensitive(t *testing.T) {
	if got := TokenSortRatio("Backend Engineer", "engineer backend"); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestTokenSortRatio_CaseInsensitive(t *testing.T) {
	if got := TokenSortRatio("COLOMBO", "colombo"); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestTokenSortRatio_EmptyInputs(t *testing.T) {
	if got := TokenSortRatio("colombo", ""); got != 0 {
		t.Fatalf("expected 0 against empty string, got %d", got)
	}
	if got := TokenSortRatio("", "colombo"); got != 0 {
		t.Fatalf("expected 0 against empty string, got %d", got)
	}
	if got := TokenSortRatio("   ", "colombo"); got != 0 {
		t.Fatalf("expected 0 against whitespace-only string, got %d", got)
	}
}

func TestTokenSortRatio_Bounds(t *testing.T) {
	cases := [][2]string{
		{"backend engineer", "frontend developer"},
		{"a", "zzzzzzzzzz"},
		{"colombo", "colombo 07, sri lanka"},
		{"x", "x"},
	}
	for _, c := range cases {
		got := TokenSortRatio(c[0], c[1])
		if got < 0 || got > 100 {
			t.Fatalf("TokenSortRatio(%q, %q) = %d, out of [0,100]", c[0], c[1], got)
		}
	}
}

func TestTokenSortRatio_SimilarStringsScoreHigher(t *testing.T) {
	near := TokenSortRatio("backend engineer", "backend enginer")
	far := TokenSortRatio("backend engineer", "head chef")
	if near <= far {
		t.Fatalf("expected near (%d) > far (%d)", near, far)
	}
	if near < TitleThreshold {
		t.Fatalf("expected near-identical titles above threshold, got %d", near)
	}
}
