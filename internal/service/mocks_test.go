package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"motorent-backend/internal/domain"
)

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockCustomerRepo) List(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error) {
	args := m.Called(ctx, query, page, pageSize)
	return args.Get(0).([]domain.Customer), args.Get(1).(int32), args.Error(2)
}

// MockEmployeeRepo
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) GetByID(ctx context.Context, id int32) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeRepo) Update(ctx context.Context, employee *domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
func (m *MockEmployeeRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Employee), args.Get(1).(int32), args.Error(2)
}

// MockMotorbikeRepo
type MockMotorbikeRepo struct {
	mock.Mock
}

func (m *MockMotorbikeRepo) Create(ctx context.Context, bike *domain.Motorbike) error {
	args := m.Called(ctx, bike)
	return args.Error(0)
}
func (m *MockMotorbikeRepo) GetByID(ctx context.Context, id int32) (*domain.Motorbike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorbike), args.Error(1)
}
func (m *MockMotorbikeRepo) Update(ctx context.Context, bike *domain.Motorbike) error {
	args := m.Called(ctx, bike)
	return args.Error(0)
}
func (m *MockMotorbikeRepo) Delete(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockMotorbikeRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Motorbike, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Motorbike), args.Get(1).(int32), args.Error(2)
}
func (m *MockMotorbikeRepo) ClaimForRental(ctx context.Context, bikeID int32, from, to domain.MotorbikeStatus) error {
	args := m.Called(ctx, bikeID, from, to)
	return args.Error(0)
}
func (m *MockMotorbikeRepo) Release(ctx context.Context, bikeID int32, from domain.MotorbikeStatus) error {
	args := m.Called(ctx, bikeID, from)
	return args.Error(0)
}
func (m *MockMotorbikeRepo) Restore(ctx context.Context, bikeID int32, from domain.MotorbikeStatus) error {
	args := m.Called(ctx, bikeID, from)
	return args.Error(0)
}
func (m *MockMotorbikeRepo) GetActivePriceList(ctx context.Context, bikeID int32) (*domain.PriceList, error) {
	args := m.Called(ctx, bikeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PriceList), args.Error(1)
}
func (m *MockMotorbikeRepo) CreatePriceList(ctx context.Context, entry *domain.PriceList) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockDiscountRepo
type MockDiscountRepo struct {
	mock.Mock
}

func (m *MockDiscountRepo) Create(ctx context.Context, discount *domain.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}
func (m *MockDiscountRepo) GetByID(ctx context.Context, id int32) (*domain.Discount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Discount), args.Error(1)
}
func (m *MockDiscountRepo) Update(ctx context.Context, discount *domain.Discount) error {
	args := m.Called(ctx, discount)
	return args.Error(0)
}
func (m *MockDiscountRepo) Delete(ctx context.Context, id int32) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockDiscountRepo) List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Discount, int32, error) {
	args := m.Called(ctx, activeOnly, page, pageSize)
	return args.Get(0).([]domain.Discount), args.Get(1).(int32), args.Error(2)
}

// MockContractRepo
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, contract *domain.RentalContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) GetByID(ctx context.Context, id int32) (*domain.RentalContract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}
func (m *MockContractRepo) GetByIDWithRelated(ctx context.Context, id int32) (*domain.RentalContract, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalContract), args.Error(1)
}
func (m *MockContractRepo) Update(ctx context.Context, contract *domain.RentalContract) error {
	args := m.Called(ctx, contract)
	return args.Error(0)
}
func (m *MockContractRepo) UpdateStatus(ctx context.Context, contractID int32, from, to domain.ContractStatus) error {
	args := m.Called(ctx, contractID, from, to)
	return args.Error(0)
}
func (m *MockContractRepo) List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.RentalContract, int32, error) {
	args := m.Called(ctx, customerID, status, page, pageSize)
	return args.Get(0).([]domain.RentalContract), args.Get(1).(int32), args.Error(2)
}
func (m *MockContractRepo) CustomerHasOpenContract(ctx context.Context, customerID int32, excludeContractID int32) (bool, error) {
	args := m.Called(ctx, customerID, excludeContractID)
	return args.Bool(0), args.Error(1)
}
func (m *MockContractRepo) ListEndingBefore(ctx context.Context, date string, status domain.ContractStatus) ([]domain.RentalContract, error) {
	args := m.Called(ctx, date, status)
	return args.Get(0).([]domain.RentalContract), args.Error(1)
}

// MockIncidentRepo
type MockIncidentRepo struct {
	mock.Mock
}

func (m *MockIncidentRepo) Create(ctx context.Context, incident *domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}
func (m *MockIncidentRepo) GetByID(ctx context.Context, id int32) (*domain.Incident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}
func (m *MockIncidentRepo) Update(ctx context.Context, incident *domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}
func (m *MockIncidentRepo) ListByContract(ctx context.Context, contractID int32) ([]domain.Incident, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.Incident), args.Error(1)
}
func (m *MockIncidentRepo) AddImage(ctx context.Context, incidentID int32, path string) error {
	args := m.Called(ctx, incidentID, path)
	return args.Error(0)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) CreateWithinTotal(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByContract(ctx context.Context, contractID int32) ([]domain.Payment, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) SumByContract(ctx context.Context, contractID int32) (int64, error) {
	args := m.Called(ctx, contractID)
	return args.Get(0).(int64), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, employeeID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, employeeID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, employeeID int32) error {
	args := m.Called(ctx, id, employeeID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendContractCreatedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error {
	args := m.Called(ctx, email, name, contractID, totalPrice)
	return args.Error(0)
}
func (m *MockEmailService) SendContractActivatedNotification(ctx context.Context, email, name string, contractID int32) error {
	args := m.Called(ctx, email, name, contractID)
	return args.Error(0)
}
func (m *MockEmailService) SendContractCompletedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error {
	args := m.Called(ctx, email, name, contractID, totalPrice)
	return args.Error(0)
}
func (m *MockEmailService) SendContractCancelledNotification(ctx context.Context, email, name string, contractID int32, reason string) error {
	args := m.Called(ctx, email, name, contractID, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendIncidentReportedNotification(ctx context.Context, email, name string, contractID int32, incidentType domain.IncidentType) error {
	args := m.Called(ctx, email, name, contractID, incidentType)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceivedNotification(ctx context.Context, email, name string, contractID int32, amount, outstanding int64) error {
	args := m.Called(ctx, email, name, contractID, amount, outstanding)
	return args.Error(0)
}
func (m *MockEmailService) SendExpiryReminder(ctx context.Context, email, name string, contractID int32, endDate string) error {
	args := m.Called(ctx, email, name, contractID, endDate)
	return args.Error(0)
}
