package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

const contractColumns = `id, contract_number, customer_name, vehicle_id, vehicle_reference,
	start_date, end_date, number_of_days, daily_rate_cents, extension_until, extended_days,
	contract_data, total_amount_cents, advance_payment_cents, status, notes, created_on, updated_on`

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	data, err := json.Marshal(c.Data)
	if err != nil {
		return fmt.Errorf("marshal contract data: %w", err)
	}
	now := time.Now().UTC().Format(time.RFC3339)
	c.CreatedOn = now
	c.UpdatedOn = now
	query := `INSERT INTO contracts (` + contractColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.ContractNumber, c.CustomerName, c.VehicleID, c.VehicleReference,
		c.StartDate, c.EndDate, c.NumberOfDays, c.DailyRateCents, c.ExtensionUntil, c.ExtendedDays,
		data, c.TotalAmountCents, c.AdvancePaymentCents, c.Status, c.Notes, c.CreatedOn, c.UpdatedOn)
	return err
}

func (r *contractRepository) GetByID(ctx context.Context, id string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return c, err
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	data, err := json.Marshal(c.Data)
	if err != nil {
		return fmt.Errorf("marshal contract data: %w", err)
	}
	c.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE contracts SET contract_number=$1, customer_name=$2, vehicle_id=$3,
	          vehicle_reference=$4, start_date=$5, end_date=$6, number_of_days=$7,
	          daily_rate_cents=$8, extension_until=$9, extended_days=$10, contract_data=$11,
	          total_amount_cents=$12, advance_payment_cents=$13, status=$14, notes=$15,
	          updated_on=$16 WHERE id=$17`
	res, err := r.db.ExecContext(ctx, query,
		c.ContractNumber, c.CustomerName, c.VehicleID,
		c.VehicleReference, c.StartDate, c.EndDate, c.NumberOfDays,
		c.DailyRateCents, c.ExtensionUntil, c.ExtendedDays, data,
		c.TotalAmountCents, c.AdvancePaymentCents, c.Status, c.Notes,
		c.UpdatedOn, c.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *contractRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *contractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	return contracts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContract(row rowScanner) (*domain.Contract, error) {
	c := &domain.Contract{}
	var data []byte
	err := row.Scan(&c.ID, &c.ContractNumber, &c.CustomerName, &c.VehicleID, &c.VehicleReference,
		&c.StartDate, &c.EndDate, &c.NumberOfDays, &c.DailyRateCents, &c.ExtensionUntil, &c.ExtendedDays,
		&data, &c.TotalAmountCents, &c.AdvancePaymentCents, &c.Status, &c.Notes, &c.CreatedOn, &c.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &c.Data); err != nil {
			return nil, fmt.Errorf("unmarshal contract data for %s: %w", c.ID, err)
		}
	}
	return c, nil
}
