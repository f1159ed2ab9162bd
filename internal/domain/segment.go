package domain

import "time"

type SegmentType string

const (
	SegmentMain      SegmentType = "main"
	SegmentExtension SegmentType = "extension"
	SegmentOverdue   SegmentType = "overdue"
)

// Segment is a maximal contiguous day-range of one coverage type for one
// contract. Segments are ephemeral: rebuilt on every recalculation, never
// persisted. Start and End are inclusive UTC midnights.
type Segment struct {
	Start time.Time   `json:"start"`
	End   time.Time   `json:"end"`
	Type  SegmentType `json:"type"`
	Days  int         `json:"days"`
}
