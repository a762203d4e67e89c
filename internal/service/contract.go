package service

import (
	"context"
	"fmt"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository"
	"motorent-backend/internal/utils"
	"motorent-backend/internal/validation"
)

type contractService struct {
	contractRepo  repository.ContractRepository
	motorbikeRepo repository.MotorbikeRepository
	discountRepo  repository.DiscountRepository
	customerRepo  repository.CustomerRepository
	incidentRepo  repository.IncidentRepository
	paymentRepo   repository.PaymentRepository
	noteRepo      repository.NotificationRepository
	emailSvc      EmailService

	contractVal *validation.ContractValidator
	incidentVal *validation.IncidentValidator
	paymentVal  *validation.PaymentValidator
}

func NewContractService(
	contractRepo repository.ContractRepository,
	motorbikeRepo repository.MotorbikeRepository,
	discountRepo repository.DiscountRepository,
	customerRepo repository.CustomerRepository,
	incidentRepo repository.IncidentRepository,
	paymentRepo repository.PaymentRepository,
	noteRepo repository.NotificationRepository,
	emailSvc EmailService,
) ContractService {
	return &contractService{
		contractRepo:  contractRepo,
		motorbikeRepo: motorbikeRepo,
		discountRepo:  discountRepo,
		customerRepo:  customerRepo,
		incidentRepo:  incidentRepo,
		paymentRepo:   paymentRepo,
		noteRepo:      noteRepo,
		emailSvc:      emailSvc,
		contractVal:   validation.NewContractValidator(contractRepo),
		incidentVal:   validation.NewIncidentValidator(),
		paymentVal:    validation.NewPaymentValidator(),
	}
}

func today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// wrapSystem converts unexpected failures to a SystemError so internal detail
// never reaches the caller. Domain errors pass through untouched.
func wrapSystem(err error) error {
	if err == nil {
		return nil
	}
	if domain.IsValidation(err) || domain.IsNotFound(err) || domain.IsConflict(err) {
		return err
	}
	logger.Error("Unexpected failure in contract lifecycle", "error", err)
	return domain.NewSystemError(err)
}

// loadDiscount resolves an optional discount reference.
func (s *contractService) loadDiscount(ctx context.Context, discountID *int32) (*domain.Discount, error) {
	if discountID == nil {
		return nil, nil
	}
	return s.discountRepo.GetByID(ctx, *discountID)
}

func (s *contractService) CalculateRentalPrice(ctx context.Context, customerID, motorbikeID int32, discountID *int32, startDate, endDate string) (*utils.Quote, error) {
	bike, err := s.motorbikeRepo.GetByID(ctx, motorbikeID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	discount, err := s.loadDiscount(ctx, discountID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	if violations := s.contractVal.ForCalculateRentalPrice(bike, discount, customerID, today()); len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	priceList, err := s.motorbikeRepo.GetActivePriceList(ctx, motorbikeID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	quote, err := utils.CalculateRentalPrice(priceList, discount, startDate, endDate, today())
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (s *contractService) CreateContract(ctx context.Context, employeeID int32, input CreateContractInput) (*domain.RentalContract, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	bike, err := s.motorbikeRepo.GetByID(ctx, input.MotorbikeID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	discount, err := s.loadDiscount(ctx, input.DiscountID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	priceList, err := s.motorbikeRepo.GetActivePriceList(ctx, input.MotorbikeID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	quote, err := utils.CalculateRentalPrice(priceList, discount, input.StartDate, input.EndDate, today())
	if err != nil {
		return nil, err
	}

	violations, err := s.contractVal.ForCreate(ctx, input.CustomerID, bike, discount, input.StartDate, input.EndDate, today(), quote.BasePrice, quote.DiscountAmount)
	if err != nil {
		return nil, wrapSystem(err)
	}
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	// Claim the bike before writing the contract. The conditional update is
	// the double-booking guard: a concurrent request racing for the same bike
	// gets a ConflictError here.
	if err := s.motorbikeRepo.ClaimForRental(ctx, bike.ID, bike.Status, domain.MotorbikeStatusRented); err != nil {
		return nil, wrapSystem(err)
	}

	contract := &domain.RentalContract{
		CustomerID:     input.CustomerID,
		MotorbikeID:    input.MotorbikeID,
		DiscountID:     input.DiscountID,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		DailyRate:      quote.DailyRate,
		BasePrice:      quote.BasePrice,
		DiscountAmount: quote.DiscountAmount,
		TotalPrice:     quote.TotalPrice,
		Status:         domain.ContractStatusPending,
		Notes:          input.Notes,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		// Undo the claim so the bike is not stranded in RENTED; a bike taken
		// from RESERVED keeps its reservation.
		if relErr := s.motorbikeRepo.Restore(ctx, bike.ID, domain.MotorbikeStatusRented); relErr != nil {
			logger.Error("Failed to release motorbike after contract create failure", "motorbike_id", bike.ID, "error", relErr)
		}
		return nil, wrapSystem(err)
	}

	_ = s.emailSvc.SendContractCreatedNotification(ctx, customer.Email, customer.Name, contract.ID, contract.TotalPrice)
	s.notify(ctx, employeeID, "Contract Created",
		fmt.Sprintf("Contract %d created for %s (motorbike %d)", contract.ID, customer.Name, bike.ID),
		"CONTRACT_CREATED", contract.ID)

	return contract, nil
}

func (s *contractService) ActivateContract(ctx context.Context, employeeID, contractID int32) (*domain.RentalContract, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	bike, err := s.motorbikeRepo.GetByID(ctx, contract.MotorbikeID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	discount, err := s.loadDiscount(ctx, contract.DiscountID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	violations, err := s.contractVal.ForUpdateBeforeActivation(ctx, contract, bike, discount, today())
	if err != nil {
		return nil, wrapSystem(err)
	}
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	if err := s.contractRepo.UpdateStatus(ctx, contractID, domain.ContractStatusPending, domain.ContractStatusActive); err != nil {
		return nil, wrapSystem(err)
	}
	contract.Status = domain.ContractStatusActive

	if customer, err := s.customerRepo.GetByID(ctx, contract.CustomerID); err == nil {
		_ = s.emailSvc.SendContractActivatedNotification(ctx, customer.Email, customer.Name, contract.ID)
	}

	return contract, nil
}

func (s *contractService) CancelContract(ctx context.Context, employeeID, contractID int32, reason string) (*domain.RentalContract, error) {
	contract, err := s.contractRepo.GetByID(ctx, contractID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	if !domain.CanTransition(contract.Status, domain.ContractStatusCancelled) {
		return nil, domain.NewValidationError(fmt.Sprintf("contract %d cannot be cancelled (status %s)", contractID, contract.Status))
	}

	if err := s.contractRepo.UpdateStatus(ctx, contractID, contract.Status, domain.ContractStatusCancelled); err != nil {
		return nil, wrapSystem(err)
	}
	contract.Status = domain.ContractStatusCancelled

	// The rental never ran its course, so a reservation on the bike survives
	// the cancellation.
	if err := s.motorbikeRepo.Restore(ctx, contract.MotorbikeID, domain.MotorbikeStatusRented); err != nil {
		logger.Error("Failed to restore motorbike after cancellation", "motorbike_id", contract.MotorbikeID, "error", err)
	}

	if customer, err := s.customerRepo.GetByID(ctx, contract.CustomerID); err == nil {
		_ = s.emailSvc.SendContractCancelledNotification(ctx, customer.Email, customer.Name, contract.ID, reason)
	}
	s.notify(ctx, employeeID, "Contract Cancelled",
		fmt.Sprintf("Contract %d cancelled: %s", contract.ID, reason),
		"CONTRACT_CANCELLED", contract.ID)

	return contract, nil
}

func (s *contractService) CompleteContract(ctx context.Context, employeeID, contractID int32) (*domain.RentalContract, error) {
	contract, err := s.contractRepo.GetByIDWithRelated(ctx, contractID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	if contract.Status != domain.ContractStatusActive {
		return nil, domain.NewValidationError(fmt.Sprintf("contract %d is not active (status %s)", contractID, contract.Status))
	}
	if n := contract.OpenIncidents(); n > 0 {
		return nil, domain.NewValidationError(fmt.Sprintf("contract %d has %d open incidents", contractID, n))
	}

	if err := s.contractRepo.UpdateStatus(ctx, contractID, domain.ContractStatusActive, domain.ContractStatusCompleted); err != nil {
		return nil, wrapSystem(err)
	}
	contract.Status = domain.ContractStatusCompleted

	if err := s.motorbikeRepo.Release(ctx, contract.MotorbikeID, domain.MotorbikeStatusRented); err != nil {
		logger.Error("Failed to release motorbike after completion", "motorbike_id", contract.MotorbikeID, "error", err)
	}

	if customer, err := s.customerRepo.GetByID(ctx, contract.CustomerID); err == nil {
		_ = s.emailSvc.SendContractCompletedNotification(ctx, customer.Email, customer.Name, contract.ID, contract.TotalPrice)
	}

	return contract, nil
}

func (s *contractService) ReportIncident(ctx context.Context, employeeID int32, input ReportIncidentInput) (*domain.Incident, error) {
	contract, err := s.contractRepo.GetByID(ctx, input.ContractID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	if violations := s.incidentVal.ForCreate(contract); len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	// Transition first: the compare-and-set serializes concurrent incident
	// reports against the same contract.
	if err := s.contractRepo.UpdateStatus(ctx, input.ContractID, domain.ContractStatusActive, domain.ContractStatusProcessingIncident); err != nil {
		return nil, wrapSystem(err)
	}

	incident := &domain.Incident{
		ContractID:  input.ContractID,
		Type:        input.Type,
		Severity:    input.Severity,
		Description: input.Description,
	}
	if err := s.incidentRepo.Create(ctx, incident); err != nil {
		if revErr := s.contractRepo.UpdateStatus(ctx, input.ContractID, domain.ContractStatusProcessingIncident, domain.ContractStatusActive); revErr != nil {
			logger.Error("Failed to revert contract status after incident create failure", "contract_id", input.ContractID, "error", revErr)
		}
		return nil, wrapSystem(err)
	}

	if customer, err := s.customerRepo.GetByID(ctx, contract.CustomerID); err == nil {
		_ = s.emailSvc.SendIncidentReportedNotification(ctx, customer.Email, customer.Name, contract.ID, incident.Type)
	}
	s.notify(ctx, employeeID, "Incident Reported",
		fmt.Sprintf("%s incident (%s) reported on contract %d", incident.Type, incident.Severity, contract.ID),
		"INCIDENT_REPORTED", contract.ID)

	return incident, nil
}

func (s *contractService) CompleteIncident(ctx context.Context, employeeID int32, input CompleteIncidentInput) (*domain.RentalContract, error) {
	contract, err := s.contractRepo.GetByID(ctx, input.ContractID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	incident, err := s.incidentRepo.GetByID(ctx, input.IncidentID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	violations := s.incidentVal.ForComplete(incident, contract, input.ResolutionNotes, input.ResolutionCost, input.ResolvedOn)
	if len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	incident.Resolved = true
	incident.ResolutionNotes = input.ResolutionNotes
	incident.ResolutionCost = input.ResolutionCost
	incident.ResolvedOn = input.ResolvedOn
	if err := s.incidentRepo.Update(ctx, incident); err != nil {
		return nil, wrapSystem(err)
	}

	// With other incidents still open the contract stays in
	// PROCESSING_INCIDENT.
	incidents, err := s.incidentRepo.ListByContract(ctx, input.ContractID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	for _, in := range incidents {
		if !in.Resolved {
			return contract, nil
		}
	}

	// All incidents resolved: back to ACTIVE, or straight to COMPLETED when
	// the rental period is already over.
	target := domain.ContractStatusActive
	if contract.EndDate < today() {
		target = domain.ContractStatusCompleted
	}
	if err := s.contractRepo.UpdateStatus(ctx, input.ContractID, domain.ContractStatusProcessingIncident, target); err != nil {
		return nil, wrapSystem(err)
	}
	contract.Status = target

	if target == domain.ContractStatusCompleted {
		if err := s.motorbikeRepo.Release(ctx, contract.MotorbikeID, domain.MotorbikeStatusRented); err != nil {
			logger.Error("Failed to release motorbike after completion", "motorbike_id", contract.MotorbikeID, "error", err)
		}
		if customer, err := s.customerRepo.GetByID(ctx, contract.CustomerID); err == nil {
			_ = s.emailSvc.SendContractCompletedNotification(ctx, customer.Email, customer.Name, contract.ID, contract.TotalPrice)
		}
	}

	return contract, nil
}

func (s *contractService) ProcessPayment(ctx context.Context, employeeID int32, input ProcessPaymentInput) (*domain.Payment, error) {
	contract, err := s.contractRepo.GetByIDWithRelated(ctx, input.ContractID)
	if err != nil {
		return nil, wrapSystem(err)
	}

	if violations := s.paymentVal.ForProcessPayment(contract, input.Amount, input.Method); len(violations) > 0 {
		return nil, domain.NewValidationError(violations...)
	}

	payment := &domain.Payment{
		ContractID: input.ContractID,
		Amount:     input.Amount,
		Method:     input.Method,
		Reference:  input.Reference,
		PaidOn:     time.Now(),
	}
	// The repository re-checks the ceiling inside a transaction; a concurrent
	// payment that got there first turns this into a ValidationError.
	if err := s.paymentRepo.CreateWithinTotal(ctx, payment); err != nil {
		return nil, wrapSystem(err)
	}

	if customer, err := s.customerRepo.GetByID(ctx, contract.CustomerID); err == nil {
		outstanding := contract.TotalPrice - contract.PaidAmount() - payment.Amount
		_ = s.emailSvc.SendPaymentReceivedNotification(ctx, customer.Email, customer.Name, contract.ID, payment.Amount, outstanding)
	}

	return payment, nil
}

func (s *contractService) GetContract(ctx context.Context, contractID int32) (*domain.RentalContract, error) {
	contract, err := s.contractRepo.GetByIDWithRelated(ctx, contractID)
	if err != nil {
		return nil, wrapSystem(err)
	}
	return contract, nil
}

func (s *contractService) ListContracts(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.RentalContract, int32, error) {
	contracts, count, err := s.contractRepo.List(ctx, customerID, status, page, pageSize)
	if err != nil {
		return nil, 0, wrapSystem(err)
	}
	return contracts, count, nil
}

// notify records an in-app notification for the acting employee. Failures are
// logged, never surfaced.
func (s *contractService) notify(ctx context.Context, employeeID int32, title, message, eventType string, contractID int32) {
	if employeeID == 0 {
		return
	}
	note := &domain.Notification{
		EmployeeID: employeeID,
		Title:      title,
		Message:    message,
		Attributes: map[string]string{
			"type":        eventType,
			"contract_id": fmt.Sprintf("%d", contractID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to create notification", "error", err)
	}
}
