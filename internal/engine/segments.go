package engine

import (
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/logger"
)

// BuildSegments derives a contract's temporal structure: the main rental
// window, an optional extension, and an optional overdue tail running up
// to now. Segments are disjoint, ordered main < extension < overdue, and
// inclusive of both endpoints.
//
// now must be sampled once by the caller and passed in; the overdue tail
// and its day count are computed from the same instant.
func BuildSegments(c *domain.Contract, now time.Time) []domain.Segment {
	today := dayOf(now)

	baseStart, ok := parseDay(c.StartDate)
	if !ok {
		logger.Warn("contract start date unparsable, falling back to single-day rental",
			"contract_id", c.ID, "start_date", c.StartDate)
		return []domain.Segment{{Start: today, End: today, Type: domain.SegmentMain, Days: 1}}
	}

	var baseEnd time.Time
	if c.NumberOfDays > 0 {
		baseEnd = baseStart.AddDate(0, 0, c.NumberOfDays-1)
	} else {
		end, ok := parseDay(c.EndDate)
		if !ok {
			logger.Warn("contract end date unparsable, falling back to single-day rental",
				"contract_id", c.ID, "end_date", c.EndDate)
			return []domain.Segment{{Start: today, End: today, Type: domain.SegmentMain, Days: 1}}
		}
		if end.Before(baseStart) {
			logger.Warn("contract end date precedes start date, falling back to single-day rental",
				"contract_id", c.ID, "start_date", c.StartDate, "end_date", c.EndDate)
			return []domain.Segment{{Start: today, End: today, Type: domain.SegmentMain, Days: 1}}
		}
		baseEnd = end
	}

	segments := []domain.Segment{{
		Start: baseStart,
		End:   baseEnd,
		Type:  domain.SegmentMain,
		Days:  daysBetween(baseStart, baseEnd) + 1,
	}}

	effectiveEnd := baseEnd
	if ext, n := extensionEnd(c, baseEnd); n > 0 {
		segments = append(segments, domain.Segment{
			Start: baseEnd.AddDate(0, 0, 1),
			End:   ext,
			Type:  domain.SegmentExtension,
			Days:  n,
		})
		effectiveEnd = ext
	}

	if effectiveEnd.Before(today) && !c.Status.IsClosed() {
		segments = append(segments, domain.Segment{
			Start: effectiveEnd.AddDate(0, 0, 1),
			End:   today,
			Type:  domain.SegmentOverdue,
			Days:  daysBetween(effectiveEnd, today),
		})
	}

	return segments
}

// extensionEnd resolves the contract's extension fields to an end day and
// a day count. ExtensionUntil wins over ExtendedDays when both are set.
// Zero, negative, or non-extending values are treated as absent.
func extensionEnd(c *domain.Contract, baseEnd time.Time) (time.Time, int) {
	if c.ExtensionUntil != "" {
		ext, ok := parseDay(c.ExtensionUntil)
		if !ok {
			logger.Warn("contract extension date unparsable, ignoring extension",
				"contract_id", c.ID, "extension_until", c.ExtensionUntil)
			return time.Time{}, 0
		}
		if !ext.After(baseEnd) {
			return time.Time{}, 0
		}
		return ext, daysBetween(baseEnd, ext)
	}
	if c.ExtendedDays > 0 {
		return baseEnd.AddDate(0, 0, c.ExtendedDays), c.ExtendedDays
	}
	return time.Time{}, 0
}
