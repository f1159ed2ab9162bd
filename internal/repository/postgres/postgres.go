package postgres

import (
	"database/sql"

	"fleetrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ContractRepository
	repository.VehicleRepository
	repository.PaymentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		ContractRepository: NewContractRepository(db),
		VehicleRepository:  NewVehicleRepository(db),
		PaymentRepository:  NewPaymentRepository(db),
	}
}
