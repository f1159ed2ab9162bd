package domain

type ContractStatus string

const (
	ContractStatusOpen      ContractStatus = "ouvert"
	ContractStatusClosed    ContractStatus = "ferme"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusSent      ContractStatus = "sent"
	ContractStatusSigned    ContractStatus = "signed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// IsClosed reports whether the contract no longer accrues rental days.
// A closed or cancelled contract never goes overdue, no matter how late
// the vehicle actually came back.
func (s ContractStatus) IsClosed() bool {
	return s == ContractStatusClosed || s == ContractStatusCompleted || s == ContractStatusCancelled
}

// ContractData is the derived-data envelope. It is owned entirely by the
// recalculation engine: nothing else writes these fields, and they are
// rebuilt from the contract's date/rate fields on every access.
type ContractData struct {
	OriginalDays         int   `json:"original_days"`
	ExtensionDays        int   `json:"extension_days"`
	OverdueDays          int   `json:"overdue_days"`
	OriginalAmountCents  int64 `json:"original_amount_cents"`
	ExtensionAmountCents int64 `json:"extension_amount_cents"`
	OverdueAmountCents   int64 `json:"overdue_amount_cents"`
}

// TotalCents returns the sum the top-level total must mirror.
func (d ContractData) TotalCents() int64 {
	return d.OriginalAmountCents + d.ExtensionAmountCents + d.OverdueAmountCents
}

type Contract struct {
	ID             string `json:"id"`
	ContractNumber string `json:"contract_number"`
	CustomerName   string `json:"customer_name"`

	// VehicleID is an explicit link and authoritative when present.
	// VehicleReference is free text entered by operators and resolved
	// heuristically against the roster.
	VehicleID        string `json:"vehicle_id,omitempty"`
	VehicleReference string `json:"vehicle_reference,omitempty"`

	// Calendar dates, yyyy-mm-dd. Inputs may carry a time-of-day suffix;
	// duration math is always day-granular.
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	// NumberOfDays, when positive, overrides EndDate for the base window.
	NumberOfDays int `json:"number_of_days,omitempty"`

	DailyRateCents int64 `json:"daily_rate_cents"`

	// Extension fields. ExtensionUntil wins when both are set.
	ExtensionUntil string `json:"extension_until,omitempty"`
	ExtendedDays   int    `json:"extended_days,omitempty"`

	Data ContractData `json:"contract_data"`

	// TotalAmountCents mirrors Data.TotalCents() for backward-compatible readers.
	TotalAmountCents     int64 `json:"total_amount_cents"`
	AdvancePaymentCents  int64 `json:"advance_payment_cents"`
	RemainingAmountCents int64 `json:"remaining_amount_cents"`

	Status ContractStatus `json:"status"`
	Notes  string         `json:"notes,omitempty"`

	CreatedOn string `json:"created_on"`
	UpdatedOn string `json:"updated_on"`
}
