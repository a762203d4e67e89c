package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type employeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) repository.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (name, email, phone_number, password_hash, role, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.Name, e.Email, e.PhoneNumber, e.PasswordHash, e.Role, time.Now(), time.Now()).Scan(&e.ID)
}

func (r *employeeRepository) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, name, email, phone_number, password_hash, role, created_on, updated_on FROM employees WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.Email, &e.PhoneNumber, &e.PasswordHash, &e.Role, &e.CreatedOn, &e.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("employee", id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	e := &domain.Employee{}
	query := `SELECT id, name, email, phone_number, password_hash, role, created_on, updated_on FROM employees WHERE email = $1`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&e.ID, &e.Name, &e.Email, &e.PhoneNumber, &e.PasswordHash, &e.Role, &e.CreatedOn, &e.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("employee", 0)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees SET name=$1, email=$2, phone_number=$3, password_hash=$4, role=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, e.Name, e.Email, e.PhoneNumber, e.PasswordHash, e.Role, time.Now(), e.ID)
	return err
}

func (r *employeeRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM employees`).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone_number, password_hash, role, created_on, updated_on FROM employees ORDER BY id LIMIT $1 OFFSET $2`,
		pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.PhoneNumber, &e.PasswordHash, &e.Role, &e.CreatedOn, &e.UpdatedOn); err != nil {
			return nil, 0, err
		}
		employees = append(employees, e)
	}
	return employees, count, rows.Err()
}
