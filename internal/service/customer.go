package service

import (
	"context"
	"fmt"
	"strings"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	contractRepo repository.ContractRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, contractRepo repository.ContractRepository) CustomerService {
	return &customerService{customerRepo: customerRepo, contractRepo: contractRepo}
}

func validateCustomer(c *domain.Customer) []string {
	var violations []string
	if c.Name == "" {
		violations = append(violations, "customer name is required")
	}
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		violations = append(violations, "a valid email is required")
	}
	if c.PhoneNumber == "" {
		violations = append(violations, "phone number is required")
	}
	if c.IdentityCard == "" {
		violations = append(violations, "identity card number is required")
	}
	if c.LicenseNumber == "" {
		violations = append(violations, "driving license number is required")
	}
	return violations
}

func (s *customerService) AddCustomer(ctx context.Context, customer *domain.Customer) error {
	if violations := validateCustomer(customer); len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	if existing, err := s.customerRepo.GetByEmail(ctx, customer.Email); err == nil && existing != nil {
		return domain.NewConflictError(fmt.Sprintf("a customer with email %s already exists", customer.Email))
	} else if err != nil && !domain.IsNotFound(err) {
		return wrapSystem(err)
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return wrapSystem(err)
	}
	return nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapSystem(err)
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if violations := validateCustomer(customer); len(violations) > 0 {
		return domain.NewValidationError(violations...)
	}
	if _, err := s.customerRepo.GetByID(ctx, customer.ID); err != nil {
		return wrapSystem(err)
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return wrapSystem(err)
	}
	return nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int32) error {
	open, err := s.contractRepo.CustomerHasOpenContract(ctx, id, 0)
	if err != nil {
		return wrapSystem(err)
	}
	if open {
		return domain.NewValidationError(fmt.Sprintf("customer %d has an open contract and cannot be deleted", id))
	}
	found, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		return wrapSystem(err)
	}
	if !found {
		return domain.NewNotFoundError("customer", id)
	}
	return nil
}

func (s *customerService) ListCustomers(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error) {
	customers, count, err := s.customerRepo.List(ctx, search, page, pageSize)
	if err != nil {
		return nil, 0, wrapSystem(err)
	}
	return customers, count, nil
}
