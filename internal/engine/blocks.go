package engine

import (
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/logger"
)

// dayCover records which contract claims one vehicle-day in the view.
type dayCover struct {
	contractID  string
	segmentType domain.SegmentType
	unmatched   bool
}

// BuildBlocks merges one vehicle's per-day contract coverage into
// render-ready calendar blocks. contracts are the contracts the caller
// attributes to this vehicle; roster is the full vehicle list, used to
// re-match each contract independently as a consistency check.
//
// The returned blocks exactly tile [0, daysInView): contiguous days
// covered by the same (contract, segment type) collapse into one rent
// block, uncovered days into free blocks.
//
// When two contracts claim the same vehicle-day the first one in
// iteration order keeps the day and the conflict is logged. That is a
// data-quality report, not a priority rule.
func BuildBlocks(v *domain.Vehicle, contracts []domain.Contract, roster []domain.Vehicle, viewStart time.Time, daysInView int, now time.Time) []domain.ScheduleBlock {
	if daysInView <= 0 {
		return nil
	}
	start := dayOf(viewStart)
	covered := make([]*dayCover, daysInView)

	for i := range contracts {
		c := &contracts[i]
		res := MatchVehicle(c, roster)
		unmatched := !res.Matched || res.VehicleID != v.ID

		for _, s := range BuildSegments(c, now) {
			from := daysBetween(start, s.Start)
			to := daysBetween(start, s.End)
			if to < 0 || from >= daysInView {
				continue
			}
			if from < 0 {
				from = 0
			}
			if to > daysInView-1 {
				to = daysInView - 1
			}
			for d := from; d <= to; d++ {
				if covered[d] != nil {
					if covered[d].contractID != c.ID {
						logger.Warn("vehicle day claimed by two contracts, keeping first",
							"vehicle_id", v.ID,
							"day", start.AddDate(0, 0, d).Format("2006-01-02"),
							"kept_contract", covered[d].contractID,
							"conflicting_contract", c.ID)
					}
					continue
				}
				covered[d] = &dayCover{contractID: c.ID, segmentType: s.Type, unmatched: unmatched}
			}
		}
	}

	var blocks []domain.ScheduleBlock
	for d := 0; d < daysInView; {
		cur := covered[d]
		run := d + 1
		for run < daysInView && sameCover(covered[run], cur) {
			run++
		}
		b := domain.ScheduleBlock{StartDay: d, Length: run - d, Type: domain.BlockFree}
		if cur != nil {
			b.Type = domain.BlockRent
			b.ContractID = cur.contractID
			b.SegmentType = cur.segmentType
			b.UnmatchedVehicle = cur.unmatched
		}
		blocks = append(blocks, b)
		d = run
	}
	return blocks
}

func sameCover(a, b *dayCover) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.contractID == b.contractID && a.segmentType == b.segmentType
}
