package service

import (
	"context"
	"errors"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/engine"
)

// ErrInvalid marks caller mistakes so the transport layer can answer 400
// instead of 500.
var ErrInvalid = errors.New("invalid input")

// Clock supplies "now" for overdue detection. It is sampled exactly once
// per operation so a computation never sees two different instants.
// Injectable for tests.
type Clock func() time.Time

// ContractPatch is a partial contract update; nil fields are left as stored.
type ContractPatch struct {
	ContractNumber      *string                `json:"contract_number,omitempty"`
	CustomerName        *string                `json:"customer_name,omitempty"`
	VehicleID           *string                `json:"vehicle_id,omitempty"`
	VehicleReference    *string                `json:"vehicle_reference,omitempty"`
	StartDate           *string                `json:"start_date,omitempty"`
	EndDate             *string                `json:"end_date,omitempty"`
	NumberOfDays        *int                   `json:"number_of_days,omitempty"`
	DailyRateCents      *int64                 `json:"daily_rate_cents,omitempty"`
	ExtensionUntil      *string                `json:"extension_until,omitempty"`
	ExtendedDays        *int                   `json:"extended_days,omitempty"`
	AdvancePaymentCents *int64                 `json:"advance_payment_cents,omitempty"`
	Status              *domain.ContractStatus `json:"status,omitempty"`
	Notes               *string                `json:"notes,omitempty"`
}

type ContractService interface {
	List(ctx context.Context) ([]domain.Contract, error)
	Get(ctx context.Context, id string) (*domain.Contract, error)
	Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	Update(ctx context.Context, id string, patch *ContractPatch) (*domain.Contract, error)
	Delete(ctx context.Context, id string) error
	Segments(ctx context.Context, id string) ([]domain.Segment, error)
}

type VehicleService interface {
	List(ctx context.Context) ([]domain.Vehicle, error)
	Get(ctx context.Context, id string) (*domain.Vehicle, error)
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	// Resolve reports which roster vehicle a contract's reference maps to,
	// with the matcher's confidence tier, for diagnostics screens.
	Resolve(ctx context.Context, contractID string) (engine.MatchResult, error)
}

type ScheduleService interface {
	// MonthView returns one calendar row per roster vehicle, each tiled
	// with rent/free blocks for the requested month.
	MonthView(ctx context.Context, year int, month time.Month) ([]domain.VehicleScheduleRow, error)
}

type PaymentService interface {
	Record(ctx context.Context, contractID string, p *domain.Payment) (*domain.Payment, error)
	ListByContract(ctx context.Context, contractID string) ([]domain.Payment, error)
}
