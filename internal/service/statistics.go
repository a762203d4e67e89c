package service

import (
	"context"
	"regexp"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

type statisticsService struct {
	statsRepo repository.StatisticsRepository
}

func NewStatisticsService(statsRepo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{statsRepo: statsRepo}
}

func (s *statisticsService) RevenueByMonth(ctx context.Context, fromMonth, toMonth string) ([]domain.MonthlyRevenue, error) {
	if !monthPattern.MatchString(fromMonth) || !monthPattern.MatchString(toMonth) {
		return nil, domain.NewValidationError("months must be yyyy-mm")
	}
	if fromMonth > toMonth {
		return nil, domain.NewValidationError("from month must not be after to month")
	}
	rows, err := s.statsRepo.RevenueByMonth(ctx, fromMonth, toMonth)
	if err != nil {
		return nil, wrapSystem(err)
	}
	return rows, nil
}

func (s *statisticsService) ContractCountsByStatus(ctx context.Context) ([]domain.ContractStatusCount, error) {
	rows, err := s.statsRepo.ContractCountsByStatus(ctx)
	if err != nil {
		return nil, wrapSystem(err)
	}
	return rows, nil
}

func (s *statisticsService) IncidentCountsByType(ctx context.Context) ([]domain.IncidentTypeCount, error) {
	rows, err := s.statsRepo.IncidentCountsByType(ctx)
	if err != nil {
		return nil, wrapSystem(err)
	}
	return rows, nil
}
