package validation

import (
	"context"
	"fmt"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/utils"
)

// ContractValidator enforces the business rules around creating and
// activating rental contracts. Methods return every violated rule, not just
// the first, so callers can surface them all at once.
type ContractValidator struct {
	contracts repository.ContractRepository
}

func NewContractValidator(contracts repository.ContractRepository) *ContractValidator {
	return &ContractValidator{contracts: contracts}
}

// ForCalculateRentalPrice checks that a quote may be computed at all: the
// motorbike is rentable by this customer and a supplied discount is currently
// applicable. No I/O.
func (v *ContractValidator) ForCalculateRentalPrice(bike *domain.Motorbike, discount *domain.Discount, customerID int32, quoteDate string) []string {
	var violations []string

	if !bike.RentableBy(customerID) {
		violations = append(violations, fmt.Sprintf("motorbike %d is not available for rent (status %s)", bike.ID, bike.Status))
	}

	if discount != nil {
		if !discount.IsActive {
			violations = append(violations, fmt.Sprintf("discount %d is not active", discount.ID))
		} else if quoteDate < discount.StartDate || quoteDate > discount.EndDate {
			violations = append(violations, fmt.Sprintf("discount %d is outside its validity window", discount.ID))
		}
	}

	return violations
}

// ForCreate additionally checks the customer has no other open contract, the
// requested date range is non-empty and forward-looking, and the computed
// discount amount does not exceed the base price. The open-contract check is
// a repository lookup.
func (v *ContractValidator) ForCreate(ctx context.Context, customerID int32, bike *domain.Motorbike, discount *domain.Discount, startDate, endDate, today string, basePrice, discountAmount int64) ([]string, error) {
	violations := v.ForCalculateRentalPrice(bike, discount, customerID, today)

	violations = append(violations, validateDateRange(startDate, endDate, today)...)

	if discountAmount > basePrice {
		violations = append(violations, "discount amount exceeds base price")
	}

	hasOpen, err := v.contracts.CustomerHasOpenContract(ctx, customerID, 0)
	if err != nil {
		return nil, err
	}
	if hasOpen {
		violations = append(violations, fmt.Sprintf("customer %d already has an open rental contract", customerID))
	}

	return violations, nil
}

// ForUpdateBeforeActivation re-validates the creation rules against a contract
// still in PENDING state, gating the PENDING -> ACTIVE transition.
func (v *ContractValidator) ForUpdateBeforeActivation(ctx context.Context, contract *domain.RentalContract, bike *domain.Motorbike, discount *domain.Discount, today string) ([]string, error) {
	var violations []string

	if contract.Status != domain.ContractStatusPending {
		violations = append(violations, fmt.Sprintf("contract %d is not pending (status %s)", contract.ID, contract.Status))
	}

	// The bike was claimed at creation time, so RENTED by this contract is
	// the expected state here.
	if bike.Status != domain.MotorbikeStatusRented && !bike.RentableBy(contract.CustomerID) {
		violations = append(violations, fmt.Sprintf("motorbike %d is not available for rent (status %s)", bike.ID, bike.Status))
	}

	if discount != nil && !discount.ApplicableOn(today) {
		violations = append(violations, fmt.Sprintf("discount %d is no longer applicable", discount.ID))
	}

	if contract.EndDate < today {
		violations = append(violations, "rental period has already ended")
	}

	if contract.DiscountAmount > contract.BasePrice {
		violations = append(violations, "discount amount exceeds base price")
	}

	hasOpen, err := v.contracts.CustomerHasOpenContract(ctx, contract.CustomerID, contract.ID)
	if err != nil {
		return nil, err
	}
	if hasOpen {
		violations = append(violations, fmt.Sprintf("customer %d already has another open rental contract", contract.CustomerID))
	}

	return violations, nil
}

func validateDateRange(startDate, endDate, today string) []string {
	var violations []string

	start, err := utils.ParseDate(startDate)
	if err != nil {
		violations = append(violations, fmt.Sprintf("invalid start date: %v", err))
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		violations = append(violations, fmt.Sprintf("invalid end date: %v", err))
	}
	if len(violations) > 0 {
		return violations
	}

	if _, err := utils.InclusiveDays(start, end); err != nil {
		violations = append(violations, "end date must not be before start date")
	}
	if startDate < today {
		violations = append(violations, "start date must not be in the past")
	}

	return violations
}
