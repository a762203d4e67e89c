package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type incidentRepository struct {
	db *sql.DB
}

func NewIncidentRepository(db *sql.DB) repository.IncidentRepository {
	return &incidentRepository{db: db}
}

func (r *incidentRepository) Create(ctx context.Context, in *domain.Incident) error {
	query := `INSERT INTO incidents (contract_id, type, severity, description, resolved, resolution_notes, resolution_cost, image_paths, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	return r.db.QueryRowContext(ctx, query, in.ContractID, in.Type, in.Severity, in.Description, in.Resolved, in.ResolutionNotes, in.ResolutionCost, pq.Array(in.ImagePaths), time.Now(), time.Now()).Scan(&in.ID)
}

func (r *incidentRepository) GetByID(ctx context.Context, id int32) (*domain.Incident, error) {
	in := &domain.Incident{}
	query := `SELECT id, contract_id, type, severity, description, resolved, resolution_notes, resolution_cost, resolved_on, image_paths, created_on, updated_on FROM incidents WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&in.ID, &in.ContractID, &in.Type, &in.Severity, &in.Description, &in.Resolved, &in.ResolutionNotes, &in.ResolutionCost, &in.ResolvedOn, pq.Array(&in.ImagePaths), &in.CreatedOn, &in.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("incident", id)
	}
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (r *incidentRepository) Update(ctx context.Context, in *domain.Incident) error {
	query := `UPDATE incidents SET resolved=$1, resolution_notes=$2, resolution_cost=$3, resolved_on=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, in.Resolved, in.ResolutionNotes, in.ResolutionCost, in.ResolvedOn, time.Now(), in.ID)
	return err
}

func (r *incidentRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.Incident, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, contract_id, type, severity, description, resolved, resolution_notes, resolution_cost, resolved_on, image_paths, created_on, updated_on FROM incidents WHERE contract_id = $1 ORDER BY id`, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incidents []domain.Incident
	for rows.Next() {
		var in domain.Incident
		if err := rows.Scan(&in.ID, &in.ContractID, &in.Type, &in.Severity, &in.Description, &in.Resolved, &in.ResolutionNotes, &in.ResolutionCost, &in.ResolvedOn, pq.Array(&in.ImagePaths), &in.CreatedOn, &in.UpdatedOn); err != nil {
			return nil, err
		}
		incidents = append(incidents, in)
	}
	return incidents, rows.Err()
}

func (r *incidentRepository) AddImage(ctx context.Context, incidentID int32, path string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE incidents SET image_paths = array_append(image_paths, $1), updated_on=$2 WHERE id=$3`, path, time.Now(), incidentID)
	return err
}
