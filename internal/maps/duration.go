package maps

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration renders d the way Google Maps labels trip durations,
// e.g. "45 mins", "2 hours 52 mins", "1 day 3 hours".
func FormatDuration(d time.Duration) string {
	mins := int((d + 30*time.Second) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	days, mins := mins/(24*60), mins%(24*60)
	hours, mins := mins/60, mins%60

	var parts []string
	switch {
	case days > 0:
		parts = append(parts, plural(days, "day"))
		if hours > 0 {
			parts = append(parts, plural(hours, "hour"))
		}
	case hours > 0:
		parts = append(parts, plural(hours, "hour"))
		if mins > 0 {
			parts = append(parts, plural(mins, "min"))
		}
	default:
		parts = append(parts, plural(mins, "min"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
