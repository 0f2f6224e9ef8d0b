package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/questlabs/questlog/internal/constants"
)

// FormatPercent renders a percentage for display, rounded to the nearest
// whole number: "48%".
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", math.Round(pct))
}

// FormatDaysLeft phrases the distance to a deadline for display.
//
//	-2 → "overdue by 2 days"
//	 0 → "due today"
//	 1 → "1 day left"
//	 5 → "5 days left"
func FormatDaysLeft(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("overdue by %d days", -days)
	case days == -1:
		return "overdue by 1 day"
	case days == 0:
		return "due today"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// FormatETA phrases an estimated completion instant relative to now:
// "today", "tomorrow", "in 12 days", or the date itself once it is more
// than 90 days out.
func FormatETA(eta, now time.Time) string {
	days := wholeDays(eta.Sub(now))
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days <= 90:
		return fmt.Sprintf("in %d days", days)
	default:
		return eta.Format("Jan 2, 2006")
	}
}

// FormatCount renders a completed/total pair for display: "3 of 5".
func FormatCount(completed, total int) string {
	return fmt.Sprintf("%d of %d", completed, total)
}

// FormatStatus renders the normalized progress status as a short label.
func FormatStatus(status constants.ProgressStatus) string {
	switch status {
	case constants.ProgressCompleted:
		return "Completed"
	case constants.ProgressInProgress:
		return "In progress"
	case constants.ProgressNotStarted:
		return "Not started"
	default:
		return string(status)
	}
}
