package pathutil

import "testing"

func TestNormalizePathPattern(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "dot slash prefix", in: "./a/b/", want: "a/b"},
		{name: "backslashes", in: `a\b`, want: "a/b"},
		{name: "leading slash", in: "/a/b", want: "a/b"},
		{name: "repeated slashes", in: "a//b///c", want: "a/b/c"},
		{name: "trailing slash", in: "a/b/", want: "a/b"},
		{name: "dot segment resolved", in: "a/./b", want: "a/b"},
		{name: "traversal rejected", in: "../x", wantErr: true},
		{name: "bare dotdot rejected", in: "..", wantErr: true},
		{name: "mid traversal rejected", in: "a/../../b", wantErr: true},
		{name: "windows drive rejected", in: "C:/Users/me", wantErr: true},
		{name: "empty rejected", in: "", wantErr: true},
		{name: "dot rejected", in: ".", wantErr: true},
		{name: "whitespace trimmed", in: "  a/b  ", want: "a/b"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePathPattern(tc.in, false)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.in, err)
			}
			if got != tc.want {
				t.Fatalf("NormalizePathPattern(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizePathPatternAllowEmpty(t *testing.T) {
	got, err := NormalizePathPattern("", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty string", got)
	}

	got, err = NormalizePathPattern(".", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestNormalizePathPatternIdempotent(t *testing.T) {
	inputs := []string{"./a/b/", `a\b\c`, "a//b", "src", "apps/web/src"}
	for _, in := range inputs {
		once, err := NormalizePathPattern(in, false)
		if err != nil {
			t.Fatalf("unexpected error normalizing %q: %v", in, err)
		}
		twice, err := NormalizePathPattern(once, false)
		if err != nil {
			t.Fatalf("unexpected error re-normalizing %q: %v", once, err)
		}
		if once != twice {
			t.Fatalf("normalization not idempotent: %q != %q", once, twice)
		}
	}
}

func TestNormalizeWorkspacePattern(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "apps/*", want: "apps/*"},
		{name: "negated", in: "!apps/ignored", want: "!apps/ignored"},
		{name: "negated with whitespace", in: "  !apps/*  ", want: "!apps/*"},
		{name: "globstar", in: "packages/**", want: "packages/**"},
		{name: "traversal rejected", in: "!../x", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeWorkspacePattern(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeWorkspacePattern(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestMatchesConfigPattern(t *testing.T) {
	tests := []struct {
		rel     string
		pattern string
		want    bool
	}{
		{"src/app.ts", "src", true},
		{"src", "src", true},
		{"src-legacy/app.ts", "src", false},
		{"node_modules/foo", "node_modules", true},
		{"apps/web", "apps/web", true},
	}
	for _, tc := range tests {
		if got := MatchesConfigPattern(tc.rel, tc.pattern); got != tc.want {
			t.Errorf("MatchesConfigPattern(%q, %q) = %v, want %v", tc.rel, tc.pattern, got, tc.want)
		}
	}
}

func TestMatchesConfigPatternReflexive(t *testing.T) {
	rel := "apps/web/src"
	pattern := "apps/web/src"
	if !MatchesConfigPattern(rel, pattern) {
		t.Fatalf("expected reflexive match for equal normalized paths")
	}
}
