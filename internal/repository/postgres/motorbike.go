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

type motorbikeRepository struct {
	db *sql.DB
}

func NewMotorbikeRepository(db *sql.DB) repository.MotorbikeRepository {
	return &motorbikeRepository{db: db}
}

func (r *motorbikeRepository) Create(ctx context.Context, bike *domain.Motorbike) error {
	query := `INSERT INTO motorbikes (brand, model, year, license_plate, color, image_url, status, reserved_by, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, bike.Brand, bike.Model, bike.Year, bike.LicensePlate, bike.Color, bike.ImageURL, bike.Status, bike.ReservedBy, time.Now(), time.Now()).Scan(&bike.ID)
}

func (r *motorbikeRepository) GetByID(ctx context.Context, id int32) (*domain.Motorbike, error) {
	bike := &domain.Motorbike{}
	query := `SELECT id, brand, model, year, license_plate, color, image_url, status, reserved_by, created_on, updated_on FROM motorbikes WHERE id = $1 AND deleted_on IS NULL`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&bike.ID, &bike.Brand, &bike.Model, &bike.Year, &bike.LicensePlate, &bike.Color, &bike.ImageURL, &bike.Status, &bike.ReservedBy, &bike.CreatedOn, &bike.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("motorbike", id)
	}
	if err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *motorbikeRepository) Update(ctx context.Context, bike *domain.Motorbike) error {
	query := `UPDATE motorbikes SET brand=$1, model=$2, year=$3, license_plate=$4, color=$5, image_url=$6, status=$7, reserved_by=$8, updated_on=$9 WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, bike.Brand, bike.Model, bike.Year, bike.LicensePlate, bike.Color, bike.ImageURL, bike.Status, bike.ReservedBy, time.Now(), bike.ID)
	return err
}

func (r *motorbikeRepository) Delete(ctx context.Context, id int32) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE motorbikes SET deleted_on=$1 WHERE id=$2 AND deleted_on IS NULL`, time.Now(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *motorbikeRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Motorbike, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, brand, model, year, license_plate, color, image_url, status, reserved_by, created_on, updated_on
	          FROM motorbikes WHERE deleted_on IS NULL`

	args := []interface{}{}
	argIdx := 1
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

	query += fmt.Sprintf(" ORDER BY id LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bikes []domain.Motorbike
	for rows.Next() {
		var b domain.Motorbike
		if err := rows.Scan(&b.ID, &b.Brand, &b.Model, &b.Year, &b.LicensePlate, &b.Color, &b.ImageURL, &b.Status, &b.ReservedBy, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, 0, err
		}
		bikes = append(bikes, b)
	}
	return bikes, count, rows.Err()
}

// ClaimForRental is the double-booking guard: the status check and the status
// write are one conditional UPDATE, so of two concurrent claims only one sees
// a row in the expected status.
func (r *motorbikeRepository) ClaimForRental(ctx context.Context, bikeID int32, from, to domain.MotorbikeStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE motorbikes SET status=$1, updated_on=$2 WHERE id=$3 AND status=$4 AND deleted_on IS NULL`,
		to, time.Now(), bikeID, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewConflictError(fmt.Sprintf("motorbike %d is no longer %s", bikeID, from))
	}
	return nil
}

func (r *motorbikeRepository) Release(ctx context.Context, bikeID int32, from domain.MotorbikeStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE motorbikes SET status=$1, reserved_by=NULL, updated_on=$2 WHERE id=$3 AND status=$4`,
		domain.MotorbikeStatusAvailable, time.Now(), bikeID, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewConflictError(fmt.Sprintf("motorbike %d is no longer %s", bikeID, from))
	}
	return nil
}

// Restore undoes a claim for a rental that never went anywhere. The claim
// leaves reserved_by untouched, so a bike that still carries a reservation
// goes back to RESERVED for that customer; anything else lands on AVAILABLE.
func (r *motorbikeRepository) Restore(ctx context.Context, bikeID int32, from domain.MotorbikeStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE motorbikes SET status = CASE WHEN reserved_by IS NOT NULL THEN $1 ELSE $2 END, updated_on=$3 WHERE id=$4 AND status=$5`,
		domain.MotorbikeStatusReserved, domain.MotorbikeStatusAvailable, time.Now(), bikeID, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NewConflictError(fmt.Sprintf("motorbike %d is no longer %s", bikeID, from))
	}
	return nil
}

func (r *motorbikeRepository) GetActivePriceList(ctx context.Context, bikeID int32) (*domain.PriceList, error) {
	entry := &domain.PriceList{}
	query := `SELECT id, motorbike_id, daily_rate, is_active, created_on FROM price_lists WHERE motorbike_id = $1 AND is_active = TRUE ORDER BY created_on DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, bikeID).Scan(&entry.ID, &entry.MotorbikeID, &entry.DailyRate, &entry.IsActive, &entry.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// CreatePriceList deactivates the bike's current entry and inserts the new
// one in a single transaction, so exactly one row per bike is active.
func (r *motorbikeRepository) CreatePriceList(ctx context.Context, entry *domain.PriceList) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if entry.IsActive {
		if _, err := tx.ExecContext(ctx,
			`UPDATE price_lists SET is_active = FALSE WHERE motorbike_id = $1 AND is_active = TRUE`,
			entry.MotorbikeID); err != nil {
			return err
		}
	}

	query := `INSERT INTO price_lists (motorbike_id, daily_rate, is_active, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := tx.QueryRowContext(ctx, query, entry.MotorbikeID, entry.DailyRate, entry.IsActive, time.Now()).Scan(&entry.ID); err != nil {
		return err
	}
	return tx.Commit()
}
