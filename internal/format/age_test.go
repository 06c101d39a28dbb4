package format

import (
	"testing"
	"time"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		instant time.Time
		want    string
	}{
		{"future clamps to zero", now.Add(5 * time.Second), "0s ago"},
		{"just now", now, "0s ago"},
		{"one minute five seconds", now.Add(-65 * time.Second), "1m ago"},
		{"one hour", now.Add(-1 * time.Hour), "1h ago"},
		{"one day", now.Add(-25 * time.Hour), "1d ago"},
		{"one month", now.Add(-31 * 24 * time.Hour), "1mo ago"},
		{"one year", now.Add(-366 * 24 * time.Hour), "1y ago"},
		{"zero instant", time.Time{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeAgo(tc.instant, now); got != tc.want {
				t.Errorf("TimeAgo(%v) = %q, want %q", tc.instant, got, tc.want)
			}
		})
	}
}
