package service

import (
	"context"
	"fmt"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type motorbikeService struct {
	motorbikeRepo repository.MotorbikeRepository
}

func NewMotorbikeService(motorbikeRepo repository.MotorbikeRepository) MotorbikeService {
	return &motorbikeService{motorbikeRepo: motorbikeRepo}
}

func (s *motorbikeService) AddMotorbike(ctx context.Context, bike *domain.Motorbike, dailyRate int64) error {
	violations := validateMotorbike(bike)
	if dailyRate <= 0 {
		violations = append(violations, "daily rate must be positive")
	}
	if len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}

	if bike.Status == "" {
		bike.Status = domain.MotorbikeStatusAvailable
	}
	if err := s.motorbikeRepo.Create(ctx, bike); err != nil {
		return wrapSystem(err)
	}
	entry := &domain.PriceList{
		MotorbikeID: bike.ID,
		DailyRate:   dailyRate,
		IsActive:    true,
	}
	if err := s.motorbikeRepo.CreatePriceList(ctx, entry); err != nil {
		return wrapSystem(err)
	}
	return nil
}

func (s *motorbikeService) GetMotorbike(ctx context.Context, id int32) (*domain.Motorbike, *domain.PriceList, error) {
	bike, err := s.motorbikeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, wrapSystem(err)
	}
	priceList, err := s.motorbikeRepo.GetActivePriceList(ctx, id)
	if err != nil && !domain.IsNotFound(err) {
		return nil, nil, wrapSystem(err)
	}
	return bike, priceList, nil
}

func (s *motorbikeService) UpdateMotorbike(ctx context.Context, bike *domain.Motorbike) error {
	if violations := validateMotorbike(bike); len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	current, err := s.motorbikeRepo.GetByID(ctx, bike.ID)
	if err != nil {
		return wrapSystem(err)
	}
	// Status changes for rented bikes go through the contract lifecycle, not
	// here.
	if current.Status == domain.MotorbikeStatusRented && bike.Status != domain.MotorbikeStatusRented {
		return domain.NewValidationError(fmt.Sprintf("motorbike %d is rented; complete or cancel its contract first", bike.ID))
	}
	if err := s.motorbikeRepo.Update(ctx, bike); err != nil {
		return wrapSystem(err)
	}
	return nil
}

func (s *motorbikeService) DeleteMotorbike(ctx context.Context, id int32) error {
	bike, err := s.motorbikeRepo.GetByID(ctx, id)
	if err != nil {
		return wrapSystem(err)
	}
	if bike.Status == domain.MotorbikeStatusRented {
		return domain.NewValidationError(fmt.Sprintf("motorbike %d is rented and cannot be deleted", id))
	}
	found, err := s.motorbikeRepo.Delete(ctx, id)
	if err != nil {
		return wrapSystem(err)
	}
	if !found {
		return domain.NewNotFoundError("motorbike", id)
	}
	return nil
}

func (s *motorbikeService) ListMotorbikes(ctx context.Context, status string, page, pageSize int32) ([]domain.Motorbike, int32, error) {
	bikes, count, err := s.motorbikeRepo.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, wrapSystem(err)
	}
	return bikes, count, nil
}

func (s *motorbikeService) SetDailyRate(ctx context.Context, bikeID int32, dailyRate int64) error {
	if dailyRate <= 0 {
		return domain.NewValidationError("daily rate must be positive")
	}
	if _, err := s.motorbikeRepo.GetByID(ctx, bikeID); err != nil {
		return wrapSystem(err)
	}
	// CreatePriceList deactivates the previous entry, so rate history is kept
	// and running contracts keep their snapshotted rate.
	entry := &domain.PriceList{
		MotorbikeID: bikeID,
		DailyRate:   dailyRate,
		IsActive:    true,
	}
	if err := s.motorbikeRepo.CreatePriceList(ctx, entry); err != nil {
		return wrapSystem(err)
	}
	return nil
}

func validateMotorbike(bike *domain.Motorbike) []string {
	var violations []string
	if bike.LicensePlate == "" {
		violations = append(violations, "license plate is required")
	}
	if bike.Model == "" {
		violations = append(violations, "model is required")
	}
	if bike.Status != "" && !domain.ValidMotorbikeStatus(bike.Status) {
		violations = append(violations, fmt.Sprintf("unknown motorbike status %q", bike.Status))
	}
	if bike.Status == domain.MotorbikeStatusReserved && bike.ReservedBy == nil {
		violations = append(violations, "reserved motorbike needs a reserving customer")
	}
	return violations
}
