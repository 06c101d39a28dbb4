package pathutil

import "testing"

func TestMatchesWorkspacePattern(t *testing.T) {
	tests := []struct {
		name    string
		rel     string
		pattern string
		want    bool
	}{
		{"globstar matches nested", "apps/site/.next", "apps/**", true},
		{"negation does not match excluded", "apps/site", "!apps/ignored", true},
		{"exact match", "apps/ignored", "apps/ignored", true},
		{"star matches single segment", "apps/web", "apps/*", true},
		{"star does not cross segments", "apps/web/src", "apps/*", false},
		{"question mark single char", "packages/a", "packages/?", true},
		{"question mark rejects multi char", "packages/ab", "packages/?", false},
		{"no match different root", "services/api", "apps/*", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MatchesWorkspacePattern(tc.rel, tc.pattern); got != tc.want {
				t.Errorf("MatchesWorkspacePattern(%q, %q) = %v, want %v", tc.rel, tc.pattern, got, tc.want)
			}
		})
	}
}
