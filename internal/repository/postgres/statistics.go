package postgres

import (
	"context"
	"database/sql"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type statisticsRepository struct {
	db *sql.DB
}

func NewStatisticsRepository(db *sql.DB) repository.StatisticsRepository {
	return &statisticsRepository{db: db}
}

// RevenueByMonth aggregates completed contract totals per month. Months are
// yyyy-mm strings; both bounds inclusive.
func (r *statisticsRepository) RevenueByMonth(ctx context.Context, fromMonth, toMonth string) ([]domain.MonthlyRevenue, error) {
	query := `SELECT to_char(created_on, 'YYYY-MM') AS month, COALESCE(SUM(total_price), 0), COUNT(*)
	          FROM rental_contracts
	          WHERE status = 'COMPLETED'
	            AND to_char(created_on, 'YYYY-MM') BETWEEN $1 AND $2
	          GROUP BY month ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query, fromMonth, toMonth)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.MonthlyRevenue
	for rows.Next() {
		var m domain.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.Revenue, &m.Contracts); err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

func (r *statisticsRepository) ContractCountsByStatus(ctx context.Context) ([]domain.ContractStatusCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM rental_contracts GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.ContractStatusCount
	for rows.Next() {
		var c domain.ContractStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}

func (r *statisticsRepository) IncidentCountsByType(ctx context.Context) ([]domain.IncidentTypeCount, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT type, COUNT(*) FROM incidents GROUP BY type ORDER BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.IncidentTypeCount
	for rows.Next() {
		var c domain.IncidentTypeCount
		if err := rows.Scan(&c.Type, &c.Count); err != nil {
			return nil, err
		}
		results = append(results, c)
	}
	return results, rows.Err()
}
