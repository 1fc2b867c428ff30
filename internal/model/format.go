package model

import (
	"fmt"
	"strconv"
)

// Size ladder units, divided by 1024 per step. TB is the terminal unit.
var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatFileSize converts a byte count to a human readable string with one
// decimal place. A count of exactly 0 means the size is unknown.
func FormatFileSize(size int64) string {
	if size == 0 {
		return "Unknown size"
	}

	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024.0 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%.1f TB", value)
}

// FormatDuration converts seconds to mm:ss, or hh:mm:ss when an hour or
// longer. Zero means the duration is unknown.
func FormatDuration(seconds int) string {
	if seconds == 0 {
		return "Unknown duration"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatViewCount groups a view count with comma separators (1,234,567).
func FormatViewCount(views int64) string {
	s := strconv.FormatInt(views, 10)
	if views < 0 {
		return s
	}

	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
