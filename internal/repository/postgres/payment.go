package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// CreateWithinTotal locks the contract row, re-checks the payment ceiling and
// inserts in a single transaction. Two concurrent payments on one contract
// serialize on the row lock, so they cannot both pass the check.
func (r *paymentRepository) CreateWithinTotal(ctx context.Context, p *domain.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var totalPrice int64
	err = tx.QueryRowContext(ctx,
		`SELECT total_price FROM rental_contracts WHERE id = $1 FOR UPDATE`, p.ContractID).Scan(&totalPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewNotFoundError("rental contract", p.ContractID)
	}
	if err != nil {
		return err
	}

	var paid int64
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE contract_id = $1`, p.ContractID).Scan(&paid)
	if err != nil {
		return err
	}

	if paid+p.Amount > totalPrice {
		return domain.NewValidationError(fmt.Sprintf("payment of %d exceeds total price: %d already paid of %d", p.Amount, paid, totalPrice))
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (contract_id, amount, method, reference, paid_on, created_on) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		p.ContractID, p.Amount, p.Method, p.Reference, p.PaidOn, time.Now()).Scan(&p.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *paymentRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, contract_id, amount, method, reference, paid_on, created_on FROM payments WHERE contract_id = $1 ORDER BY id`, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.ContractID, &p.Amount, &p.Method, &p.Reference, &p.PaidOn, &p.CreatedOn); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) SumByContract(ctx context.Context, contractID int32) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE contract_id = $1`, contractID).Scan(&sum)
	return sum, err
}
