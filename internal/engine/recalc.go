package engine

import (
	"time"

	"fleetrental-backend/internal/domain"
)

// Recalculate rebuilds a contract's derived-data envelope from its date
// and rate fields and mirrors the total at top level. It is a pure
// function of (contract, now): callers decide whether to persist the
// result, and running it twice yields an identical envelope.
//
// Overdue days bill at the plain daily rate; no penalty multiplier. A
// missing or non-positive rate yields zero amounts rather than an error,
// so a malformed record never blocks the read path.
func Recalculate(c domain.Contract, now time.Time) domain.Contract {
	var data domain.ContractData
	for _, s := range BuildSegments(&c, now) {
		switch s.Type {
		case domain.SegmentMain:
			data.OriginalDays = s.Days
		case domain.SegmentExtension:
			data.ExtensionDays = s.Days
		case domain.SegmentOverdue:
			data.OverdueDays = s.Days
		}
	}

	if rate := c.DailyRateCents; rate > 0 {
		data.OriginalAmountCents = int64(data.OriginalDays) * rate
		data.ExtensionAmountCents = int64(data.ExtensionDays) * rate
		data.OverdueAmountCents = int64(data.OverdueDays) * rate
	}

	c.Data = data
	c.TotalAmountCents = data.TotalCents()
	return c
}

// Diverged reports whether recalculation changed the stored envelope or
// its top-level mirror, i.e. whether the record needs a corrective write.
func Diverged(stored, fresh domain.Contract) bool {
	return stored.Data != fresh.Data || stored.TotalAmountCents != fresh.TotalAmountCents
}
