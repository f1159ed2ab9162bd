package engine

import (
	"strings"
	"time"
)

// Accepted input layouts for contract dates. Operators and older import
// paths produced several shapes; all collapse to a calendar day.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// parseDay parses a date string down to a UTC midnight. The time-of-day
// component, if any, is dropped: a contract date is a day, not an instant.
func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dayOf(t), true
		}
	}
	return time.Time{}, false
}

// dayOf truncates an instant to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day distance from a to b. Both arguments
// must be UTC midnights, which makes the division exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
