package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var contractCols = []string{
	"id", "contract_number", "customer_name", "vehicle_id", "vehicle_reference",
	"start_date", "end_date", "number_of_days", "daily_rate_cents", "extension_until", "extended_days",
	"contract_data", "total_amount_cents", "advance_payment_cents", "status", "notes", "created_on", "updated_on",
}

func sampleContract() *domain.Contract {
	return &domain.Contract{
		ID:             "c1",
		ContractNumber: "C-20240301-101500",
		CustomerName:   "Martin Dupont",
		VehicleID:      "v1",
		StartDate:      "2024-03-01",
		EndDate:        "2024-03-05",
		DailyRateCents: 20000,
		Data: domain.ContractData{
			OriginalDays:        5,
			OriginalAmountCents: 100000,
		},
		TotalAmountCents: 100000,
		Status:           domain.ContractStatusOpen,
	}
}

func contractRow(c *domain.Contract) *sqlmock.Rows {
	data, _ := json.Marshal(c.Data)
	return sqlmock.NewRows(contractCols).AddRow(
		c.ID, c.ContractNumber, c.CustomerName, c.VehicleID, c.VehicleReference,
		c.StartDate, c.EndDate, c.NumberOfDays, c.DailyRateCents, c.ExtensionUntil, c.ExtendedDays,
		data, c.TotalAmountCents, c.AdvancePaymentCents, c.Status, c.Notes, c.CreatedOn, c.UpdatedOn)
}

func TestContractRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)
	c := sampleContract()

	mock.ExpectExec("INSERT INTO contracts").
		WithArgs(c.ID, c.ContractNumber, c.CustomerName, c.VehicleID, c.VehicleReference,
			c.StartDate, c.EndDate, c.NumberOfDays, c.DailyRateCents, c.ExtensionUntil, c.ExtendedDays,
			sqlmock.AnyArg(), c.TotalAmountCents, c.AdvancePaymentCents, c.Status, c.Notes,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.NotEmpty(t, c.CreatedOn)
	assert.Equal(t, c.CreatedOn, c.UpdatedOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)
	want := sampleContract()

	mock.ExpectQuery("SELECT (.+) FROM contracts WHERE id").
		WithArgs("c1").
		WillReturnRows(contractRow(want))

	got, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, want.ContractNumber, got.ContractNumber)
	assert.Equal(t, int64(100000), got.TotalAmountCents)
	assert.Equal(t, 5, got.Data.OriginalDays)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM contracts WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(contractCols))

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)
	c := sampleContract()
	c.ID = "gone"

	mock.ExpectExec("UPDATE contracts SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), c)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)

	first := sampleContract()
	second := sampleContract()
	second.ID = "c2"
	second.ContractNumber = "C-20240302-090000"

	rows := contractRow(first)
	data, _ := json.Marshal(second.Data)
	rows.AddRow(second.ID, second.ContractNumber, second.CustomerName, second.VehicleID, second.VehicleReference,
		second.StartDate, second.EndDate, second.NumberOfDays, second.DailyRateCents, second.ExtensionUntil, second.ExtendedDays,
		data, second.TotalAmountCents, second.AdvancePaymentCents, second.Status, second.Notes, second.CreatedOn, second.UpdatedOn)

	mock.ExpectQuery("SELECT (.+) FROM contracts ORDER BY created_on DESC").
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewContractRepository(db)

	mock.ExpectExec("DELETE FROM contracts WHERE id").
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
