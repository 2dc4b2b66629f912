// Package dateutil provides POV scheduling date helpers.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date string that is not ISO formatted.
var ErrInvalidDate = errors.New("invalid date")

// isoLayout is the format accepted on the command line and in config files.
const isoLayout = "2006-01-02"

// periodLayout is the execution-window format injected into prompts.
const periodLayout = "2006/01/02"

// ParseDate parses an ISO date (YYYY-MM-DD). "auto" and "" resolve to
// today via now.
func ParseDate(value string, now func() time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || strings.EqualFold(trimmed, "auto") {
		return truncateDay(now()), nil
	}
	t, err := time.Parse(isoLayout, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected YYYY-MM-DD)", ErrInvalidDate, value)
	}
	return t, nil
}

// FormatPeriod renders an execution window as "YYYY/MM/DD - YYYY/MM/DD".
func FormatPeriod(start, end time.Time) string {
	return start.Format(periodLayout) + " - " + end.Format(periodLayout)
}

// Workdays counts weekdays in [start, end], both inclusive. Saturdays and
// Sundays are skipped; holidays are the planner's problem. Returns 0 when
// end precedes start.
func Workdays(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
