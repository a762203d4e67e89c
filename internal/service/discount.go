package service

import (
	"context"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/utils"
)

type discountService struct {
	discountRepo repository.DiscountRepository
}

func NewDiscountService(discountRepo repository.DiscountRepository) DiscountService {
	return &discountService{discountRepo: discountRepo}
}

func validateDiscount(d *domain.Discount) []string {
	var violations []string
	if d.Name == "" {
		violations = append(violations, "discount name is required")
	}
	if _, err := utils.ParseDate(d.StartDate); err != nil {
		violations = append(violations, "start date must be yyyy-mm-dd")
	}
	if _, err := utils.ParseDate(d.EndDate); err != nil {
		violations = append(violations, "end date must be yyyy-mm-dd")
	}
	if d.StartDate > d.EndDate {
		violations = append(violations, "start date must not be after end date")
	}
	switch {
	case d.Percentage == nil && d.FixedAmount == nil:
		violations = append(violations, "either a percentage or a fixed amount is required")
	case d.Percentage != nil && d.FixedAmount != nil:
		violations = append(violations, "percentage and fixed amount are mutually exclusive")
	case d.Percentage != nil && (*d.Percentage < 1 || *d.Percentage > 100):
		violations = append(violations, "percentage must be between 1 and 100")
	case d.FixedAmount != nil && *d.FixedAmount <= 0:
		violations = append(violations, "fixed amount must be positive")
	}
	return violations
}

func (s *discountService) AddDiscount(ctx context.Context, discount *domain.Discount) error {
	if violations := validateDiscount(discount); len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	if err := s.discountRepo.Create(ctx, discount); err != nil {
		return wrapSystem(err)
	}
	return nil
}

func (s *discountService) GetDiscount(ctx context.Context, id int32) (*domain.Discount, error) {
	discount, err := s.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapSystem(err)
	}
	return discount, nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, discount *domain.Discount) error {
	if violations := validateDiscount(discount); len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	if _, err := s.discountRepo.GetByID(ctx, discount.ID); err != nil {
		return wrapSystem(err)
	}
	if err := s.discountRepo.Update(ctx, discount); err != nil {
		return wrapSystem(err)
	}
	return nil
}

func (s *discountService) DeleteDiscount(ctx context.Context, id int32) error {
	found, err := s.discountRepo.Delete(ctx, id)
	if err != nil {
		return wrapSystem(err)
	}
	if !found {
		return domain.NewNotFoundError("discount", id)
	}
	return nil
}

func (s *discountService) ListDiscounts(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Discount, int32, error) {
	discounts, count, err := s.discountRepo.List(ctx, activeOnly, page, pageSize)
	if err != nil {
		return nil, 0, wrapSystem(err)
	}
	return discounts, count, nil
}
