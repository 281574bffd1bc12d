package normal

import "testing"

func TestAuthorPipeline(t *testing.T) {
	p := AuthorPipeline()
	testCases := []struct {
		in  string
		out string
	}{
		{"Smith‐Jones, Alice", "Smith-Jones, Alice"},
		{"O’Brien, Sean", "O'Brien, Sean"},
		{"Plain, Name", "Plain, Name"},
		// decomposed e + combining acute becomes the composed form
		{"García, Juan", "García, Juan"},
	}
	for _, tc := range testCases {
		if got := p.Normalize(tc.in); got != tc.out {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestCollapseWS(t *testing.T) {
	n := &CollapseWSNormalizer{}
	if got := n.Normalize("  a \n\t b  c "); got != "a b c" {
		t.Errorf("got %q", got)
	}
}
