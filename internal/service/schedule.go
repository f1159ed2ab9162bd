package service

import (
	"context"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/engine"
	"fleetrental-backend/internal/repository"
)

type scheduleService struct {
	contracts repository.ContractRepository
	vehicles  repository.VehicleRepository
	now       Clock
}

func NewScheduleService(contracts repository.ContractRepository, vehicles repository.VehicleRepository, now Clock) ScheduleService {
	if now == nil {
		now = time.Now
	}
	return &scheduleService{contracts: contracts, vehicles: vehicles, now: now}
}

func (s *scheduleService) MonthView(ctx context.Context, year int, month time.Month) ([]domain.VehicleScheduleRow, error) {
	roster, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.contracts.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	viewStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInView := int(viewStart.AddDate(0, 1, 0).Sub(viewStart).Hours() / 24)

	// Attribute each contract to its matched vehicle; unmatched contracts
	// appear on no row and are already logged by the matcher.
	byVehicle := make(map[string][]domain.Contract)
	for i := range contracts {
		res := engine.MatchVehicle(&contracts[i], roster)
		if res.Matched {
			byVehicle[res.VehicleID] = append(byVehicle[res.VehicleID], contracts[i])
		}
	}

	rows := make([]domain.VehicleScheduleRow, 0, len(roster))
	for i := range roster {
		v := roster[i]
		rows = append(rows, domain.VehicleScheduleRow{
			Vehicle: v,
			Blocks:  engine.BuildBlocks(&v, byVehicle[v.ID], roster, viewStart, daysInView, now),
		})
	}
	return rows, nil
}
