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

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

const contractColumns = `id, customer_id, motorbike_id, discount_id, start_date, end_date, daily_rate, base_price, discount_amount, total_price, status, notes, created_on, updated_on`

func scanContract(row interface{ Scan(...interface{}) error }, c *domain.RentalContract) error {
	return row.Scan(&c.ID, &c.CustomerID, &c.MotorbikeID, &c.DiscountID, &c.StartDate, &c.EndDate, &c.DailyRate, &c.BasePrice, &c.DiscountAmount, &c.TotalPrice, &c.Status, &c.Notes, &c.CreatedOn, &c.UpdatedOn)
}

func (r *contractRepository) Create(ctx context.Context, c *domain.RentalContract) error {
	query := `INSERT INTO rental_contracts (customer_id, motorbike_id, discount_id, start_date, end_date, daily_rate, base_price, discount_amount, total_price, status, notes, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.CustomerID, c.MotorbikeID, c.DiscountID, c.StartDate, c.EndDate, c.DailyRate, c.BasePrice, c.DiscountAmount, c.TotalPrice, c.Status, c.Notes, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.RentalContract, error) {
	c := &domain.RentalContract{}
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE id = $1`
	err := scanContract(r.db.QueryRowContext(ctx, query, id), c)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("rental contract", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contractRepository) GetByIDWithRelated(ctx context.Context, id int32) (*domain.RentalContract, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payRows, err := r.db.QueryContext(ctx,
		`SELECT id, contract_id, amount, method, reference, paid_on, created_on FROM payments WHERE contract_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer payRows.Close()
	for payRows.Next() {
		var p domain.Payment
		if err := payRows.Scan(&p.ID, &p.ContractID, &p.Amount, &p.Method, &p.Reference, &p.PaidOn, &p.CreatedOn); err != nil {
			return nil, err
		}
		c.Payments = append(c.Payments, p)
	}
	if err := payRows.Err(); err != nil {
		return nil, err
	}

	incRows, err := r.db.QueryContext(ctx,
		`SELECT id, contract_id, type, severity, description, resolved, resolution_notes, resolution_cost, resolved_on, created_on, updated_on FROM incidents WHERE contract_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer incRows.Close()
	for incRows.Next() {
		var in domain.Incident
		if err := incRows.Scan(&in.ID, &in.ContractID, &in.Type, &in.Severity, &in.Description, &in.Resolved, &in.ResolutionNotes, &in.ResolutionCost, &in.ResolvedOn, &in.CreatedOn, &in.UpdatedOn); err != nil {
			return nil, err
		}
		c.Incidents = append(c.Incidents, in)
	}
	return c, incRows.Err()
}

func (r *contractRepository) Update(ctx context.Context, c *domain.RentalContract) error {
	query := `UPDATE rental_contracts SET discount_id=$1, start_date=$2, end_date=$3, daily_rate=$4, base_price=$5, discount_amount=$6, total_price=$7, status=$8, notes=$9, updated_on=$10 WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, c.DiscountID, c.StartDate, c.EndDate, c.DailyRate, c.BasePrice, c.DiscountAmount, c.TotalPrice, c.Status, c.Notes, time.Now(), c.ID)
	return err
}

// UpdateStatus is a compare-and-set: the WHERE clause pins the expected
// current status so concurrent transitions cannot both win.
func (r *contractRepository) UpdateStatus(ctx context.Context, contractID int32, from, to domain.ContractStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE rental_contracts SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4`,
		to, time.Now(), contractID, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewConflictError(fmt.Sprintf("contract %d is no longer %s", contractID, from))
	}
	return nil
}

func (r *contractRepository) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.RentalContract, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if customerID != 0 {
		query += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, customerID)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contracts []domain.RentalContract
	for rows.Next() {
		var c domain.RentalContract
		if err := scanContract(rows, &c); err != nil {
			return nil, 0, err
		}
		contracts = append(contracts, c)
	}
	return contracts, count, rows.Err()
}

func (r *contractRepository) CustomerHasOpenContract(ctx context.Context, customerID int32, excludeContractID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	            SELECT 1 FROM rental_contracts
	            WHERE customer_id = $1 AND id <> $2
	              AND status IN ('PENDING', 'ACTIVE', 'PROCESSING_INCIDENT'))`
	err := r.db.QueryRowContext(ctx, query, customerID, excludeContractID).Scan(&exists)
	return exists, err
}

func (r *contractRepository) ListEndingBefore(ctx context.Context, date string, status domain.ContractStatus) ([]domain.RentalContract, error) {
	query := `SELECT ` + contractColumns + ` FROM rental_contracts WHERE status = $1 AND end_date < $2 ORDER BY end_date`
	rows, err := r.db.QueryContext(ctx, query, status, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.RentalContract
	for rows.Next() {
		var c domain.RentalContract
		if err := scanContract(rows, &c); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
