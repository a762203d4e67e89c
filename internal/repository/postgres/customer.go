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

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, email, phone_number, address, identity_card, license_number, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.PhoneNumber, c.Address, c.IdentityCard, c.LicenseNumber, time.Now(), time.Now()).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone_number, address, identity_card, license_number, created_on, updated_on FROM customers WHERE id = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.IdentityCard, &c.LicenseNumber, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("customer", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, email, phone_number, address, identity_card, license_number, created_on, updated_on FROM customers WHERE email = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.IdentityCard, &c.LicenseNumber, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("customer", 0)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name=$1, email=$2, phone_number=$3, address=$4, identity_card=$5, license_number=$6, updated_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.Email, c.PhoneNumber, c.Address, c.IdentityCard, c.LicenseNumber, time.Now(), c.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id int32) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE customers SET deleted_on=$1 WHERE id=$2 AND deleted_on IS NULL`, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *customerRepository) List(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, name, email, phone_number, address, identity_card, license_number, created_on, updated_on FROM customers WHERE deleted_on IS NULL`

	args := []interface{}{}
	argIdx := 1
	if search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR email ILIKE $%d OR phone_number ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+search+"%")
		argIdx++
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

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.PhoneNumber, &c.Address, &c.IdentityCard, &c.LicenseNumber, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		customers = append(customers, c)
	}
	return customers, count, rows.Err()
}
