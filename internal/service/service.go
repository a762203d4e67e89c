package service

import (
	"context"
	"io"
	"time"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/utils"
)

// CreateContractInput is the request payload for opening a rental contract.
type CreateContractInput struct {
	CustomerID  int32
	MotorbikeID int32
	DiscountID  *int32
	StartDate   string // yyyy-mm-dd
	EndDate     string // yyyy-mm-dd
	Notes       string
}

// ReportIncidentInput describes a new incident against an active contract.
type ReportIncidentInput struct {
	ContractID  int32
	Type        domain.IncidentType
	Severity    domain.IncidentSeverity
	Description string
}

// CompleteIncidentInput carries the resolution fields for closing an incident.
type CompleteIncidentInput struct {
	IncidentID      int32
	ContractID      int32
	ResolutionNotes string
	ResolutionCost  int64
	ResolvedOn      *time.Time
}

// ProcessPaymentInput records a payment against a contract.
type ProcessPaymentInput struct {
	ContractID int32
	Amount     int64
	Method     domain.PaymentMethod
	Reference  string
}

// ContractService drives a rental contract through its lifecycle. Every
// transition is validated before any write; on validation failure nothing is
// persisted.
type ContractService interface {
	CalculateRentalPrice(ctx context.Context, customerID, motorbikeID int32, discountID *int32, startDate, endDate string) (*utils.Quote, error)
	CreateContract(ctx context.Context, employeeID int32, input CreateContractInput) (*domain.RentalContract, error)
	ActivateContract(ctx context.Context, employeeID, contractID int32) (*domain.RentalContract, error)
	CancelContract(ctx context.Context, employeeID, contractID int32, reason string) (*domain.RentalContract, error)
	CompleteContract(ctx context.Context, employeeID, contractID int32) (*domain.RentalContract, error)
	ReportIncident(ctx context.Context, employeeID int32, input ReportIncidentInput) (*domain.Incident, error)
	CompleteIncident(ctx context.Context, employeeID int32, input CompleteIncidentInput) (*domain.RentalContract, error)
	ProcessPayment(ctx context.Context, employeeID int32, input ProcessPaymentInput) (*domain.Payment, error)
	GetContract(ctx context.Context, contractID int32) (*domain.RentalContract, error)
	ListContracts(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.RentalContract, int32, error)
}

type MotorbikeService interface {
	AddMotorbike(ctx context.Context, bike *domain.Motorbike, dailyRate int64) error
	GetMotorbike(ctx context.Context, id int32) (*domain.Motorbike, *domain.PriceList, error)
	UpdateMotorbike(ctx context.Context, bike *domain.Motorbike) error
	DeleteMotorbike(ctx context.Context, id int32) error
	ListMotorbikes(ctx context.Context, status string, page, pageSize int32) ([]domain.Motorbike, int32, error)
	SetDailyRate(ctx context.Context, bikeID int32, dailyRate int64) error
}

type DiscountService interface {
	AddDiscount(ctx context.Context, discount *domain.Discount) error
	GetDiscount(ctx context.Context, id int32) (*domain.Discount, error)
	UpdateDiscount(ctx context.Context, discount *domain.Discount) error
	DeleteDiscount(ctx context.Context, id int32) error
	ListDiscounts(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Discount, int32, error)
}

type CustomerService interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) error
	ListCustomers(ctx context.Context, search string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, string, *domain.Employee, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	// SeedAdmin creates the configured admin employee when no employees exist.
	SeedAdmin(ctx context.Context, name, email, password string) error
}

type StatisticsService interface {
	RevenueByMonth(ctx context.Context, fromMonth, toMonth string) ([]domain.MonthlyRevenue, error)
	ContractCountsByStatus(ctx context.Context) ([]domain.ContractStatusCount, error)
	IncidentCountsByType(ctx context.Context) ([]domain.IncidentTypeCount, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, employeeID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, employeeID, notificationID int32) error
}

// IncidentImageService attaches photos to incidents via the image store.
type IncidentImageService interface {
	AttachImages(ctx context.Context, incidentID int32, files []IncidentImageUpload) ([]string, error)
	OpenImage(ctx context.Context, path string) (io.ReadCloser, error)
}

// IncidentImageUpload is one uploaded photo: name, content and the sniffed
// header bytes for type validation.
type IncidentImageUpload struct {
	Name   string
	Header []byte
	Reader io.Reader
}

// EmailService sends customer-facing rental notifications. All sends are
// fire-and-forget from the lifecycle's perspective.
type EmailService interface {
	SendContractCreatedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error
	SendContractActivatedNotification(ctx context.Context, email, name string, contractID int32) error
	SendContractCompletedNotification(ctx context.Context, email, name string, contractID int32, totalPrice int64) error
	SendContractCancelledNotification(ctx context.Context, email, name string, contractID int32, reason string) error
	SendIncidentReportedNotification(ctx context.Context, email, name string, contractID int32, incidentType domain.IncidentType) error
	SendPaymentReceivedNotification(ctx context.Context, email, name string, contractID int32, amount, outstanding int64) error
	SendExpiryReminder(ctx context.Context, email, name string, contractID int32, endDate string) error
}
