package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type paymentService struct {
	payments  repository.PaymentRepository
	contracts repository.ContractRepository
	now       Clock
}

func NewPaymentService(payments repository.PaymentRepository, contracts repository.ContractRepository, now Clock) PaymentService {
	if now == nil {
		now = time.Now
	}
	return &paymentService{payments: payments, contracts: contracts, now: now}
}

func (s *paymentService) Record(ctx context.Context, contractID string, p *domain.Payment) (*domain.Payment, error) {
	if p.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrInvalid)
	}
	// The contract must exist, and recording against it re-runs the
	// freshness step so its stored totals are current when the remaining
	// balance is next derived.
	stored, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if _, err := freshenContract(ctx, s.contracts, stored, s.now()); err != nil {
		return nil, err
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.ContractID = contractID
	if p.PaidOn == "" {
		p.PaidOn = s.now().UTC().Format("2006-01-02")
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *paymentService) ListByContract(ctx context.Context, contractID string) ([]domain.Payment, error) {
	if _, err := s.contracts.GetByID(ctx, contractID); err != nil {
		return nil, err
	}
	return s.payments.ListByContract(ctx, contractID)
}
