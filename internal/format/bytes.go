// Package format renders byte counts and instants the way a cleanup
// tool's listing and summary tables do: compact, human-facing strings.
package format

import (
	"fmt"
	"math"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Human renders bytes as a human-readable size: "0 B" for zero,
// "-" for a nil, negative, NaN, or infinite input, otherwise the
// largest 1024-base unit where the value is below 1024, with one
// decimal place unless the unit is bytes or the value is 10 or
// greater.
func Human(bytes *float64) string {
	if bytes == nil {
		return "-"
	}
	return human(*bytes)
}

// HumanBytes renders a non-negative integer byte count the same way
// Human does; it is the common-case entry point used by scan listings
// and deletion summaries, where a size is always present.
func HumanBytes(bytes int64) string {
	return human(float64(bytes))
}

func human(bytes float64) string {
	if math.IsNaN(bytes) || math.IsInf(bytes, 0) || bytes < 0 {
		return "-"
	}
	if bytes == 0 {
		return "0 B"
	}

	unitIdx := 0
	value := bytes
	for value >= 1024 && unitIdx < len(byteUnits)-1 {
		value /= 1024
		unitIdx++
	}

	unit := byteUnits[unitIdx]
	decimals := 1
	if unit == "B" || value >= 10 {
		decimals = 0
	}
	return fmt.Sprintf("%.*f %s", decimals, value, unit)
}
