package repository

import (
	"context"
	"errors"

	"fleetrental-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

type ContractRepository interface {
	Create(ctx context.Context, c *domain.Contract) error
	GetByID(ctx context.Context, id string) (*domain.Contract, error)
	Update(ctx context.Context, c *domain.Contract) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Contract, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Vehicle, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	ListByContract(ctx context.Context, contractID string) ([]domain.Payment, error)
	SumByContract(ctx context.Context, contractID string) (int64, error)
}
