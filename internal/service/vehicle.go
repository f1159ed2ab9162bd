package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/engine"
	"fleetrental-backend/internal/repository"
)

type vehicleService struct {
	vehicles  repository.VehicleRepository
	contracts repository.ContractRepository
}

func NewVehicleService(vehicles repository.VehicleRepository, contracts repository.ContractRepository) VehicleService {
	return &vehicleService{vehicles: vehicles, contracts: contracts}
}

func (s *vehicleService) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}

func (s *vehicleService) Get(ctx context.Context, id string) (*domain.Vehicle, error) {
	return s.vehicles.GetByID(ctx, id)
}

func (s *vehicleService) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if v.Registration == "" {
		return nil, fmt.Errorf("%w: vehicle registration is required", ErrInvalid)
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	if err := s.vehicles.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) Update(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	if err := s.vehicles.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *vehicleService) Delete(ctx context.Context, id string) error {
	return s.vehicles.Delete(ctx, id)
}

func (s *vehicleService) Resolve(ctx context.Context, contractID string) (engine.MatchResult, error) {
	c, err := s.contracts.GetByID(ctx, contractID)
	if err != nil {
		return engine.MatchResult{}, err
	}
	roster, err := s.vehicles.List(ctx)
	if err != nil {
		return engine.MatchResult{}, err
	}
	return engine.MatchVehicle(c, roster), nil
}
