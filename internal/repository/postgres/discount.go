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

type discountRepository struct {
	db *sql.DB
}

func NewDiscountRepository(db *sql.DB) repository.DiscountRepository {
	return &discountRepository{db: db}
}

func (r *discountRepository) Create(ctx context.Context, d *domain.Discount) error {
	query := `INSERT INTO discounts (name, description, start_date, end_date, is_active, percentage, fixed_amount, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRowContext(ctx, query, d.Name, d.Description, d.StartDate, d.EndDate, d.IsActive, d.Percentage, d.FixedAmount, time.Now(), time.Now()).Scan(&d.ID)
}

func (r *discountRepository) GetByID(ctx context.Context, id int32) (*domain.Discount, error) {
	d := &domain.Discount{}
	query := `SELECT id, name, description, start_date, end_date, is_active, percentage, fixed_amount, created_on, updated_on FROM discounts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name, &d.Description, &d.StartDate, &d.EndDate, &d.IsActive, &d.Percentage, &d.FixedAmount, &d.CreatedOn, &d.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("discount", id)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *discountRepository) Update(ctx context.Context, d *domain.Discount) error {
	query := `UPDATE discounts SET name=$1, description=$2, start_date=$3, end_date=$4, is_active=$5, percentage=$6, fixed_amount=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, d.Name, d.Description, d.StartDate, d.EndDate, d.IsActive, d.Percentage, d.FixedAmount, time.Now(), d.ID)
	return err
}

func (r *discountRepository) Delete(ctx context.Context, id int32) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM discounts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *discountRepository) List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Discount, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, name, description, start_date, end_date, is_active, percentage, fixed_amount, created_on, updated_on FROM discounts WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if activeOnly {
		query += " AND is_active = TRUE"
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var discounts []domain.Discount
	for rows.Next() {
		var d domain.Discount
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.StartDate, &d.EndDate, &d.IsActive, &d.Percentage, &d.FixedAmount, &d.CreatedOn, &d.UpdatedOn); err != nil {
			return nil, 0, err
		}
		discounts = append(discounts, d)
	}
	return discounts, count, rows.Err()
}
