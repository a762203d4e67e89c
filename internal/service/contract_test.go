package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
)

type contractFixture struct {
	contracts  *MockContractRepo
	motorbikes *MockMotorbikeRepo
	discounts  *MockDiscountRepo
	customers  *MockCustomerRepo
	incidents  *MockIncidentRepo
	payments   *MockPaymentRepo
	notes      *MockNotificationRepo
	email      *MockEmailService
	svc        ContractService
}

func newContractFixture() *contractFixture {
	f := &contractFixture{
		contracts:  new(MockContractRepo),
		motorbikes: new(MockMotorbikeRepo),
		discounts:  new(MockDiscountRepo),
		customers:  new(MockCustomerRepo),
		incidents:  new(MockIncidentRepo),
		payments:   new(MockPaymentRepo),
		notes:      new(MockNotificationRepo),
		email:      new(MockEmailService),
	}
	f.svc = NewContractService(f.contracts, f.motorbikes, f.discounts, f.customers, f.incidents, f.payments, f.notes, f.email)
	return f
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func int32Ptr(v int32) *int32 { return &v }

func testCustomer() *domain.Customer {
	return &domain.Customer{ID: 1, Name: "Nguyen Van A", Email: "a@example.com"}
}

func testBike(status domain.MotorbikeStatus) *domain.Motorbike {
	return &domain.Motorbike{ID: 10, Brand: "Honda", Model: "Wave Alpha", LicensePlate: "59-X1 234.56", Status: status}
}

func testPriceList() *domain.PriceList {
	return &domain.PriceList{ID: 5, MotorbikeID: 10, DailyRate: 100000, IsActive: true}
}

func testDiscount() *domain.Discount {
	return &domain.Discount{
		ID:         3,
		Name:       "Summer Promo",
		StartDate:  futureDate(-10),
		EndDate:    futureDate(30),
		IsActive:   true,
		Percentage: int32Ptr(10),
	}
}

func TestCreateContract(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending contract with discounted price", func(t *testing.T) {
		f := newContractFixture()

		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusAvailable), nil)
		f.discounts.On("GetByID", ctx, int32(3)).Return(testDiscount(), nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(0)).Return(false, nil)
		f.motorbikes.On("ClaimForRental", ctx, int32(10), domain.MotorbikeStatusAvailable, domain.MotorbikeStatusRented).Return(nil)
		f.contracts.On("Create", ctx, mock.AnythingOfType("*domain.RentalContract")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.RentalContract).ID = 42
		}).Return(nil)
		f.email.On("SendContractCreatedNotification", ctx, "a@example.com", "Nguyen Van A", int32(42), int64(270000)).Return(nil)
		f.notes.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		contract, err := f.svc.CreateContract(ctx, 7, CreateContractInput{
			CustomerID:  1,
			MotorbikeID: 10,
			DiscountID:  int32Ptr(3),
			StartDate:   futureDate(1),
			EndDate:     futureDate(3), // 3 days inclusive
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusPending, contract.Status)
		assert.Equal(t, int64(100000), contract.DailyRate)
		assert.Equal(t, int64(300000), contract.BasePrice)
		assert.Equal(t, int64(30000), contract.DiscountAmount)
		assert.Equal(t, int64(270000), contract.TotalPrice)
		f.contracts.AssertExpectations(t)
		f.motorbikes.AssertExpectations(t)
	})

	t.Run("rejects a bike that is not available", func(t *testing.T) {
		f := newContractFixture()

		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusRented), nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(0)).Return(false, nil)

		_, err := f.svc.CreateContract(ctx, 7, CreateContractInput{
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(1),
			EndDate:     futureDate(3),
		})

		assert.True(t, domain.IsValidation(err))
		f.contracts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.motorbikes.AssertNotCalled(t, "ClaimForRental", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("allows a reserved bike only for the reserving customer", func(t *testing.T) {
		f := newContractFixture()

		bike := testBike(domain.MotorbikeStatusReserved)
		bike.ReservedBy = int32Ptr(1)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(bike, nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(0)).Return(false, nil)
		f.motorbikes.On("ClaimForRental", ctx, int32(10), domain.MotorbikeStatusReserved, domain.MotorbikeStatusRented).Return(nil)
		f.contracts.On("Create", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(nil)
		f.email.On("SendContractCreatedNotification", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.notes.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		_, err := f.svc.CreateContract(ctx, 7, CreateContractInput{
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(1),
			EndDate:     futureDate(3),
		})
		assert.NoError(t, err)
		f.motorbikes.AssertExpectations(t)
	})

	t.Run("rejects a customer with an open contract", func(t *testing.T) {
		f := newContractFixture()

		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusAvailable), nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(0)).Return(true, nil)

		_, err := f.svc.CreateContract(ctx, 7, CreateContractInput{
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(1),
			EndDate:     futureDate(3),
		})

		assert.True(t, domain.IsValidation(err))
		f.contracts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("surfaces a conflict when the bike is claimed concurrently", func(t *testing.T) {
		f := newContractFixture()

		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusAvailable), nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(0)).Return(false, nil)
		f.motorbikes.On("ClaimForRental", ctx, int32(10), domain.MotorbikeStatusAvailable, domain.MotorbikeStatusRented).
			Return(domain.NewConflictError("motorbike 10 was claimed by another request"))

		_, err := f.svc.CreateContract(ctx, 7, CreateContractInput{
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(1),
			EndDate:     futureDate(3),
		})

		assert.True(t, domain.IsConflict(err))
		f.contracts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("restores the bike when persisting the contract fails", func(t *testing.T) {
		f := newContractFixture()

		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusAvailable), nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(0)).Return(false, nil)
		f.motorbikes.On("ClaimForRental", ctx, int32(10), domain.MotorbikeStatusAvailable, domain.MotorbikeStatusRented).Return(nil)
		f.contracts.On("Create", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(assert.AnError)
		f.motorbikes.On("Restore", ctx, int32(10), domain.MotorbikeStatusRented).Return(nil)

		_, err := f.svc.CreateContract(ctx, 7, CreateContractInput{
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(1),
			EndDate:     futureDate(3),
		})

		assert.Error(t, err)
		f.motorbikes.AssertCalled(t, "Restore", ctx, int32(10), domain.MotorbikeStatusRented)
	})

	t.Run("rolls a reserved bike back with its reservation intact", func(t *testing.T) {
		f := newContractFixture()

		bike := testBike(domain.MotorbikeStatusReserved)
		bike.ReservedBy = int32Ptr(1)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(bike, nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(0)).Return(false, nil)
		f.motorbikes.On("ClaimForRental", ctx, int32(10), domain.MotorbikeStatusReserved, domain.MotorbikeStatusRented).Return(nil)
		f.contracts.On("Create", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(assert.AnError)
		f.motorbikes.On("Restore", ctx, int32(10), domain.MotorbikeStatusRented).Return(nil)

		_, err := f.svc.CreateContract(ctx, 7, CreateContractInput{
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(1),
			EndDate:     futureDate(3),
		})

		// Restore keeps reserved_by, so the failed create hands the bike
		// back to the reserving customer instead of the open pool.
		assert.Error(t, err)
		f.motorbikes.AssertCalled(t, "Restore", ctx, int32(10), domain.MotorbikeStatusRented)
		f.motorbikes.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCalculateRentalPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("prices three days with a ten percent discount", func(t *testing.T) {
		f := newContractFixture()

		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusAvailable), nil)
		f.discounts.On("GetByID", ctx, int32(3)).Return(testDiscount(), nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(testPriceList(), nil)

		quote, err := f.svc.CalculateRentalPrice(ctx, 1, 10, int32Ptr(3), futureDate(1), futureDate(3))

		assert.NoError(t, err)
		assert.Equal(t, int32(3), quote.Days)
		assert.Equal(t, int64(300000), quote.BasePrice)
		assert.Equal(t, int64(30000), quote.DiscountAmount)
		assert.Equal(t, int64(270000), quote.TotalPrice)
	})

	t.Run("fails when the bike has no active price list", func(t *testing.T) {
		f := newContractFixture()

		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusAvailable), nil)
		f.motorbikes.On("GetActivePriceList", ctx, int32(10)).Return(nil, domain.NewNotFoundError("price list", 10))

		_, err := f.svc.CalculateRentalPrice(ctx, 1, 10, nil, futureDate(1), futureDate(3))
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestActivateContract(t *testing.T) {
	ctx := context.Background()

	t.Run("activates a pending contract", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:          42,
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(0),
			EndDate:     futureDate(3),
			BasePrice:   300000,
			TotalPrice:  300000,
			Status:      domain.ContractStatusPending,
		}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusRented), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(42)).Return(false, nil)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusPending, domain.ContractStatusActive).Return(nil)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.email.On("SendContractActivatedNotification", ctx, "a@example.com", "Nguyen Van A", int32(42)).Return(nil)

		got, err := f.svc.ActivateContract(ctx, 7, 42)

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusActive, got.Status)
		f.contracts.AssertExpectations(t)
	})

	t.Run("rejects activation of a non-pending contract", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:          42,
			CustomerID:  1,
			MotorbikeID: 10,
			StartDate:   futureDate(0),
			EndDate:     futureDate(3),
			Status:      domain.ContractStatusCancelled,
		}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.motorbikes.On("GetByID", ctx, int32(10)).Return(testBike(domain.MotorbikeStatusRented), nil)
		f.contracts.On("CustomerHasOpenContract", ctx, int32(1), int32(42)).Return(false, nil)

		_, err := f.svc.ActivateContract(ctx, 7, 42)

		assert.True(t, domain.IsValidation(err))
		f.contracts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReportIncident(t *testing.T) {
	ctx := context.Background()

	t.Run("moves an active contract into incident processing", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{ID: 42, CustomerID: 1, Status: domain.ContractStatusActive}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusActive, domain.ContractStatusProcessingIncident).Return(nil)
		f.incidents.On("Create", ctx, mock.AnythingOfType("*domain.Incident")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Incident).ID = 9
		}).Return(nil)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.email.On("SendIncidentReportedNotification", ctx, "a@example.com", "Nguyen Van A", int32(42), domain.IncidentTypeMechanicalIssue).Return(nil)
		f.notes.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		incident, err := f.svc.ReportIncident(ctx, 7, ReportIncidentInput{
			ContractID:  42,
			Type:        domain.IncidentTypeMechanicalIssue,
			Severity:    domain.IncidentSeverityMedium,
			Description: "front brake seized",
		})

		assert.NoError(t, err)
		assert.Equal(t, int32(9), incident.ID)
		f.contracts.AssertExpectations(t)
		f.incidents.AssertExpectations(t)
	})

	t.Run("rejects incidents on a pending contract", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{ID: 42, Status: domain.ContractStatusPending}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)

		_, err := f.svc.ReportIncident(ctx, 7, ReportIncidentInput{
			ContractID:  42,
			Type:        domain.IncidentTypeTheft,
			Severity:    domain.IncidentSeverityCritical,
			Description: "bike missing",
		})

		assert.True(t, domain.IsValidation(err))
		f.incidents.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reverts the contract when persisting the incident fails", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{ID: 42, CustomerID: 1, Status: domain.ContractStatusActive}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusActive, domain.ContractStatusProcessingIncident).Return(nil)
		f.incidents.On("Create", ctx, mock.AnythingOfType("*domain.Incident")).Return(assert.AnError)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusProcessingIncident, domain.ContractStatusActive).Return(nil)

		_, err := f.svc.ReportIncident(ctx, 7, ReportIncidentInput{
			ContractID:  42,
			Type:        domain.IncidentTypeOther,
			Severity:    domain.IncidentSeverityLow,
			Description: "scratched fairing",
		})

		assert.Error(t, err)
		f.contracts.AssertCalled(t, "UpdateStatus", ctx, int32(42), domain.ContractStatusProcessingIncident, domain.ContractStatusActive)
	})
}

func TestCompleteIncident(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("returns the contract to active before the end date", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:          42,
			CustomerID:  1,
			MotorbikeID: 10,
			EndDate:     futureDate(3),
			Status:      domain.ContractStatusProcessingIncident,
		}
		incident := &domain.Incident{ID: 9, ContractID: 42}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.incidents.On("GetByID", ctx, int32(9)).Return(incident, nil)
		f.incidents.On("Update", ctx, mock.AnythingOfType("*domain.Incident")).Return(nil)
		f.incidents.On("ListByContract", ctx, int32(42)).Return([]domain.Incident{
			{ID: 9, ContractID: 42, Resolved: true},
		}, nil)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusProcessingIncident, domain.ContractStatusActive).Return(nil)

		got, err := f.svc.CompleteIncident(ctx, 7, CompleteIncidentInput{
			IncidentID:      9,
			ContractID:      42,
			ResolutionNotes: "replaced brake pads",
			ResolutionCost:  150000,
			ResolvedOn:      &now,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusActive, got.Status)
		f.motorbikes.AssertNotCalled(t, "Release", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("completes the contract when the rental period is over", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:          42,
			CustomerID:  1,
			MotorbikeID: 10,
			EndDate:     futureDate(-1),
			TotalPrice:  270000,
			Status:      domain.ContractStatusProcessingIncident,
		}
		incident := &domain.Incident{ID: 9, ContractID: 42}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.incidents.On("GetByID", ctx, int32(9)).Return(incident, nil)
		f.incidents.On("Update", ctx, mock.AnythingOfType("*domain.Incident")).Return(nil)
		f.incidents.On("ListByContract", ctx, int32(42)).Return([]domain.Incident{
			{ID: 9, ContractID: 42, Resolved: true},
		}, nil)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusProcessingIncident, domain.ContractStatusCompleted).Return(nil)
		f.motorbikes.On("Release", ctx, int32(10), domain.MotorbikeStatusRented).Return(nil)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.email.On("SendContractCompletedNotification", ctx, "a@example.com", "Nguyen Van A", int32(42), int64(270000)).Return(nil)

		got, err := f.svc.CompleteIncident(ctx, 7, CompleteIncidentInput{
			IncidentID:      9,
			ContractID:      42,
			ResolutionNotes: "police report filed, bike recovered",
			ResolutionCost:  500000,
			ResolvedOn:      &now,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusCompleted, got.Status)
		f.motorbikes.AssertExpectations(t)
	})

	t.Run("keeps processing while another incident is open", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:          42,
			CustomerID:  1,
			MotorbikeID: 10,
			EndDate:     futureDate(3),
			Status:      domain.ContractStatusProcessingIncident,
		}
		incident := &domain.Incident{ID: 9, ContractID: 42}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.incidents.On("GetByID", ctx, int32(9)).Return(incident, nil)
		f.incidents.On("Update", ctx, mock.AnythingOfType("*domain.Incident")).Return(nil)
		f.incidents.On("ListByContract", ctx, int32(42)).Return([]domain.Incident{
			{ID: 9, ContractID: 42, Resolved: true},
			{ID: 11, ContractID: 42, Resolved: false},
		}, nil)

		got, err := f.svc.CompleteIncident(ctx, 7, CompleteIncidentInput{
			IncidentID:      9,
			ContractID:      42,
			ResolutionNotes: "tyre patched",
			ResolutionCost:  50000,
			ResolvedOn:      &now,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusProcessingIncident, got.Status)
		f.contracts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects completion without resolution notes", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{ID: 42, Status: domain.ContractStatusProcessingIncident}
		incident := &domain.Incident{ID: 9, ContractID: 42}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.incidents.On("GetByID", ctx, int32(9)).Return(incident, nil)

		_, err := f.svc.CompleteIncident(ctx, 7, CompleteIncidentInput{
			IncidentID: 9,
			ContractID: 42,
			ResolvedOn: &now,
		})

		assert.True(t, domain.IsValidation(err))
		f.incidents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestProcessPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("records a payment within the total", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:         42,
			CustomerID: 1,
			TotalPrice: 270000,
			Status:     domain.ContractStatusActive,
			Payments:   []domain.Payment{{ID: 1, ContractID: 42, Amount: 100000}},
		}
		f.contracts.On("GetByIDWithRelated", ctx, int32(42)).Return(contract, nil)
		f.payments.On("CreateWithinTotal", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.email.On("SendPaymentReceivedNotification", ctx, "a@example.com", "Nguyen Van A", int32(42), int64(170000), int64(0)).Return(nil)

		payment, err := f.svc.ProcessPayment(ctx, 7, ProcessPaymentInput{
			ContractID: 42,
			Amount:     170000,
			Method:     domain.PaymentMethodCash,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(170000), payment.Amount)
		f.payments.AssertExpectations(t)
	})

	t.Run("rejects a payment exceeding the total price", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:         42,
			TotalPrice: 270000,
			Status:     domain.ContractStatusActive,
			Payments:   []domain.Payment{{ID: 1, ContractID: 42, Amount: 200000}},
		}
		f.contracts.On("GetByIDWithRelated", ctx, int32(42)).Return(contract, nil)

		_, err := f.svc.ProcessPayment(ctx, 7, ProcessPaymentInput{
			ContractID: 42,
			Amount:     100000,
			Method:     domain.PaymentMethodBankTransfer,
		})

		assert.True(t, domain.IsValidation(err))
		f.payments.AssertNotCalled(t, "CreateWithinTotal", mock.Anything, mock.Anything)
	})

	t.Run("rejects payments on a cancelled contract", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{ID: 42, TotalPrice: 270000, Status: domain.ContractStatusCancelled}
		f.contracts.On("GetByIDWithRelated", ctx, int32(42)).Return(contract, nil)

		_, err := f.svc.ProcessPayment(ctx, 7, ProcessPaymentInput{
			ContractID: 42,
			Amount:     100000,
			Method:     domain.PaymentMethodCash,
		})

		assert.True(t, domain.IsValidation(err))
	})
}

func TestCancelContract(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels a pending contract and restores the bike", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{ID: 42, CustomerID: 1, MotorbikeID: 10, Status: domain.ContractStatusPending}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusPending, domain.ContractStatusCancelled).Return(nil)
		f.motorbikes.On("Restore", ctx, int32(10), domain.MotorbikeStatusRented).Return(nil)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.email.On("SendContractCancelledNotification", ctx, "a@example.com", "Nguyen Van A", int32(42), "customer no-show").Return(nil)
		f.notes.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		got, err := f.svc.CancelContract(ctx, 7, 42, "customer no-show")

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusCancelled, got.Status)
		f.motorbikes.AssertExpectations(t)
	})

	t.Run("rejects cancelling a completed contract", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{ID: 42, Status: domain.ContractStatusCompleted}
		f.contracts.On("GetByID", ctx, int32(42)).Return(contract, nil)

		_, err := f.svc.CancelContract(ctx, 7, 42, "")

		assert.True(t, domain.IsValidation(err))
		f.contracts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCompleteContract(t *testing.T) {
	ctx := context.Background()

	t.Run("completes an active contract without open incidents", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:          42,
			CustomerID:  1,
			MotorbikeID: 10,
			TotalPrice:  270000,
			Status:      domain.ContractStatusActive,
		}
		f.contracts.On("GetByIDWithRelated", ctx, int32(42)).Return(contract, nil)
		f.contracts.On("UpdateStatus", ctx, int32(42), domain.ContractStatusActive, domain.ContractStatusCompleted).Return(nil)
		f.motorbikes.On("Release", ctx, int32(10), domain.MotorbikeStatusRented).Return(nil)
		f.customers.On("GetByID", ctx, int32(1)).Return(testCustomer(), nil)
		f.email.On("SendContractCompletedNotification", ctx, "a@example.com", "Nguyen Van A", int32(42), int64(270000)).Return(nil)

		got, err := f.svc.CompleteContract(ctx, 7, 42)

		assert.NoError(t, err)
		assert.Equal(t, domain.ContractStatusCompleted, got.Status)
	})

	t.Run("rejects completion while incidents are open", func(t *testing.T) {
		f := newContractFixture()

		contract := &domain.RentalContract{
			ID:        42,
			Status:    domain.ContractStatusActive,
			Incidents: []domain.Incident{{ID: 9, ContractID: 42, Resolved: false}},
		}
		f.contracts.On("GetByIDWithRelated", ctx, int32(42)).Return(contract, nil)

		_, err := f.svc.CompleteContract(ctx, 7, 42)

		assert.True(t, domain.IsValidation(err))
		f.contracts.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
