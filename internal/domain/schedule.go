package domain

type BlockType string

const (
	BlockRent BlockType = "rent"
	BlockFree BlockType = "free"
)

// ScheduleBlock is a merged run of consecutive same-type days used to
// render one vehicle's calendar row. StartDay is a zero-based offset into
// the visible range; Length is in days.
type ScheduleBlock struct {
	StartDay    int         `json:"start_day"`
	Length      int         `json:"length"`
	Type        BlockType   `json:"type"`
	ContractID  string      `json:"contract_id,omitempty"`
	SegmentType SegmentType `json:"segment_type,omitempty"`
	// UnmatchedVehicle flags a rent block whose contract, re-matched
	// independently against the roster, resolves to a different vehicle
	// than the row it is drawn on. Diagnostic only.
	UnmatchedVehicle bool `json:"unmatched_vehicle,omitempty"`
}

// VehicleScheduleRow is one row of the month calendar: a vehicle and the
// blocks tiling the visible day range.
type VehicleScheduleRow struct {
	Vehicle Vehicle         `json:"vehicle"`
	Blocks  []ScheduleBlock `json:"blocks"`
}
