package geo

import (
	"fmt"
	"math"
)

const Placeholder = "—"

// FormatDuration renders seconds for operators: "—", "<1 min", "12 min", "1 h 5 min".
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return Placeholder
	}
	if seconds < 60 {
		return "<1 min"
	}

	minutes := int64(math.Round(seconds / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %d min", minutes/60, minutes%60)
}
