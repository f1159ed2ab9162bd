package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/engine"
	"fleetrental-backend/internal/logger"
	"fleetrental-backend/internal/repository"
)

type contractService struct {
	contracts repository.ContractRepository
	vehicles  repository.VehicleRepository
	payments  repository.PaymentRepository
	now       Clock
}

func NewContractService(
	contracts repository.ContractRepository,
	vehicles repository.VehicleRepository,
	payments repository.PaymentRepository,
	now Clock,
) ContractService {
	if now == nil {
		now = time.Now
	}
	return &contractService{
		contracts: contracts,
		vehicles:  vehicles,
		payments:  payments,
		now:       now,
	}
}

// freshenContract applies the recalculation-on-access policy to one stored
// record: recalculate, and write the record back only when the stored
// derived envelope has drifted. The envelope is a cache of a pure function
// over the other fields and is never trusted as ground truth.
func freshenContract(ctx context.Context, repo repository.ContractRepository, stored *domain.Contract, now time.Time) (*domain.Contract, error) {
	fresh := engine.Recalculate(*stored, now)
	if engine.Diverged(*stored, fresh) {
		if err := repo.Update(ctx, &fresh); err != nil {
			return nil, fmt.Errorf("write back recalculated contract %s: %w", stored.ID, err)
		}
		logger.Info("corrected stale contract totals",
			"contract_id", fresh.ID,
			"total_cents", fresh.TotalAmountCents,
			"overdue_days", fresh.Data.OverdueDays)
	}
	return &fresh, nil
}

// withRemaining recomputes the derived remaining balance from recorded payments.
func (s *contractService) withRemaining(ctx context.Context, c *domain.Contract) error {
	paid, err := s.payments.SumByContract(ctx, c.ID)
	if err != nil {
		return fmt.Errorf("sum payments for contract %s: %w", c.ID, err)
	}
	remaining := c.TotalAmountCents - c.AdvancePaymentCents - paid
	if remaining < 0 {
		remaining = 0
	}
	c.RemainingAmountCents = remaining
	return nil
}

func (s *contractService) List(ctx context.Context) ([]domain.Contract, error) {
	stored, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	// Each contract's recalculation is independent of every other's.
	out := make([]domain.Contract, 0, len(stored))
	for i := range stored {
		fresh, err := freshenContract(ctx, s.contracts, &stored[i], now)
		if err != nil {
			return nil, err
		}
		if err := s.withRemaining(ctx, fresh); err != nil {
			return nil, err
		}
		out = append(out, *fresh)
	}
	return out, nil
}

func (s *contractService) Get(ctx context.Context, id string) (*domain.Contract, error) {
	stored, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	fresh, err := freshenContract(ctx, s.contracts, stored, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.withRemaining(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

func (s *contractService) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ContractNumber == "" {
		c.ContractNumber = "C-" + s.now().UTC().Format("20060102-150405")
	}
	if c.Status == "" {
		c.Status = domain.ContractStatusDraft
	}
	s.defaultRateFromVehicle(ctx, c)

	fresh := engine.Recalculate(*c, s.now())
	if err := s.contracts.Create(ctx, &fresh); err != nil {
		return nil, err
	}
	if err := s.withRemaining(ctx, &fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (s *contractService) Update(ctx context.Context, id string, patch *ContractPatch) (*domain.Contract, error) {
	stored, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyPatch(stored, patch)

	fresh := engine.Recalculate(*stored, s.now())
	if err := s.contracts.Update(ctx, &fresh); err != nil {
		return nil, err
	}
	if err := s.withRemaining(ctx, &fresh); err != nil {
		return nil, err
	}
	return &fresh, nil
}

func (s *contractService) Delete(ctx context.Context, id string) error {
	return s.contracts.Delete(ctx, id)
}

func (s *contractService) Segments(ctx context.Context, id string) ([]domain.Segment, error) {
	stored, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return engine.BuildSegments(stored, s.now()), nil
}

// defaultRateFromVehicle fills in a missing daily rate from the matched
// roster vehicle so that freshly created contracts price immediately.
func (s *contractService) defaultRateFromVehicle(ctx context.Context, c *domain.Contract) {
	if c.DailyRateCents > 0 {
		return
	}
	roster, err := s.vehicles.List(ctx)
	if err != nil {
		logger.Warn("could not load vehicle roster for rate defaulting", "error", err)
		return
	}
	res := engine.MatchVehicle(c, roster)
	if !res.Matched {
		return
	}
	v, err := s.vehicles.GetByID(ctx, res.VehicleID)
	if err != nil {
		// An explicit vehicle link may be stale; that is the operator's
		// problem to fix, not a reason to fail contract creation.
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Warn("could not load matched vehicle for rate defaulting",
				"vehicle_id", res.VehicleID, "error", err)
		}
		return
	}
	c.DailyRateCents = v.DailyRateCents
}

func applyPatch(c *domain.Contract, p *ContractPatch) {
	if p == nil {
		return
	}
	if p.ContractNumber != nil {
		c.ContractNumber = *p.ContractNumber
	}
	if p.CustomerName != nil {
		c.CustomerName = *p.CustomerName
	}
	if p.VehicleID != nil {
		c.VehicleID = *p.VehicleID
	}
	if p.VehicleReference != nil {
		c.VehicleReference = *p.VehicleReference
	}
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.NumberOfDays != nil {
		c.NumberOfDays = *p.NumberOfDays
	}
	if p.DailyRateCents != nil {
		c.DailyRateCents = *p.DailyRateCents
	}
	if p.ExtensionUntil != nil {
		c.ExtensionUntil = *p.ExtensionUntil
	}
	if p.ExtendedDays != nil {
		c.ExtendedDays = *p.ExtendedDays
	}
	if p.AdvancePaymentCents != nil {
		c.AdvancePaymentCents = *p.AdvancePaymentCents
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
}
