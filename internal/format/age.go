package format

import (
	"fmt"
	"time"
)

const (
	secondsPerYear   = 31536000
	secondsPerMonth  = 2592000
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// TimeAgo renders the age of instant relative to now as "<n><unit>
// ago", picking the largest unit (year, month, day, hour, minute)
// whose count is at least 1, falling back to "<n>s ago". An instant
// after now is clamped to zero elapsed seconds ("0s ago"); a zero
// instant is treated as absent and returns "".
func TimeAgo(instant time.Time, now time.Time) string {
	if instant.IsZero() {
		return ""
	}

	elapsed := now.Sub(instant)
	seconds := int64(elapsed.Seconds())
	if seconds < 0 {
		seconds = 0
	}

	switch {
	case seconds >= secondsPerYear:
		return fmt.Sprintf("%dy ago", seconds/secondsPerYear)
	case seconds >= secondsPerMonth:
		return fmt.Sprintf("%dmo ago", seconds/secondsPerMonth)
	case seconds >= secondsPerDay:
		return fmt.Sprintf("%dd ago", seconds/secondsPerDay)
	case seconds >= secondsPerHour:
		return fmt.Sprintf("%dh ago", seconds/secondsPerHour)
	case seconds >= secondsPerMinute:
		return fmt.Sprintf("%dm ago", seconds/secondsPerMinute)
	default:
		return fmt.Sprintf("%ds ago", seconds)
	}
}
