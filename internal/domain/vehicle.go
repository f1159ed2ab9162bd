package domain

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "AVAILABLE"
	VehicleStatusRented      VehicleStatus = "RENTED"
	VehicleStatusMaintenance VehicleStatus = "MAINTENANCE"
	VehicleStatusRetired     VehicleStatus = "RETIRED"
)

type Vehicle struct {
	ID           string `json:"id"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Registration string `json:"registration"`
	// Label is the free-text description shown in pick lists; contract
	// references are matched against it as a last resort.
	Label          string        `json:"label,omitempty"`
	DailyRateCents int64         `json:"daily_rate_cents"`
	Status         VehicleStatus `json:"status"`
	CreatedOn      string        `json:"created_on"`
	UpdatedOn      string        `json:"updated_on"`
}
