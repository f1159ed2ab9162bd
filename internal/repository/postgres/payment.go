package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	p.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO payments (id, contract_id, amount_cents, method, paid_on, note, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.ContractID, p.AmountCents, p.Method, p.PaidOn, p.Note, p.CreatedOn)
	return err
}

func (r *paymentRepository) ListByContract(ctx context.Context, contractID string) ([]domain.Payment, error) {
	query := `SELECT id, contract_id, amount_cents, method, paid_on, note, created_on
	          FROM payments WHERE contract_id = $1 ORDER BY paid_on, created_on`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ContractID, &p.AmountCents, &p.Method, &p.PaidOn, &p.Note, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) SumByContract(ctx context.Context, contractID string) (int64, error) {
	var sum int64
	query := `SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE contract_id = $1`
	err := r.db.QueryRowContext(ctx, query, contractID).Scan(&sum)
	return sum, err
}
