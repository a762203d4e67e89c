package repository

import (
	"context"

	"motorent-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) (bool, error)
	List(ctx context.Context, query string, page, pageSize int32) ([]domain.Customer, int32, error)
}

type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	GetByID(ctx context.Context, id int32) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Employee, int32, error)
}

type MotorbikeRepository interface {
	Create(ctx context.Context, bike *domain.Motorbike) error
	GetByID(ctx context.Context, id int32) (*domain.Motorbike, error)
	Update(ctx context.Context, bike *domain.Motorbike) error
	Delete(ctx context.Context, id int32) (bool, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Motorbike, int32, error)

	// ClaimForRental transitions a motorbike out of a rentable status in one
	// conditional update. Returns domain.ConflictError when another request
	// already claimed the bike (zero rows updated).
	ClaimForRental(ctx context.Context, bikeID int32, from, to domain.MotorbikeStatus) error
	// Release puts a bike back to AVAILABLE from the given status and clears
	// any reservation. Used when a rental actually ran its course.
	Release(ctx context.Context, bikeID int32, from domain.MotorbikeStatus) error
	// Restore undoes a claim for a rental that never started: the bike
	// returns to RESERVED when it still carries a reservation, otherwise to
	// AVAILABLE.
	Restore(ctx context.Context, bikeID int32, from domain.MotorbikeStatus) error

	GetActivePriceList(ctx context.Context, bikeID int32) (*domain.PriceList, error)
	CreatePriceList(ctx context.Context, entry *domain.PriceList) error
}

type DiscountRepository interface {
	Create(ctx context.Context, discount *domain.Discount) error
	GetByID(ctx context.Context, id int32) (*domain.Discount, error)
	Update(ctx context.Context, discount *domain.Discount) error
	Delete(ctx context.Context, id int32) (bool, error)
	List(ctx context.Context, activeOnly bool, page, pageSize int32) ([]domain.Discount, int32, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.RentalContract) error
	GetByID(ctx context.Context, id int32) (*domain.RentalContract, error)
	// GetByIDWithRelated loads the contract together with its payments and
	// incidents.
	GetByIDWithRelated(ctx context.Context, id int32) (*domain.RentalContract, error)
	Update(ctx context.Context, contract *domain.RentalContract) error
	// UpdateStatus performs a compare-and-set on the contract status. Returns
	// domain.ConflictError when the contract is no longer in the expected
	// status.
	UpdateStatus(ctx context.Context, contractID int32, from, to domain.ContractStatus) error
	List(ctx context.Context, customerID int32, status string, page, pageSize int32) ([]domain.RentalContract, int32, error)
	// CustomerHasOpenContract reports whether the customer already has a
	// contract in PENDING, ACTIVE or PROCESSING_INCIDENT status.
	CustomerHasOpenContract(ctx context.Context, customerID int32, excludeContractID int32) (bool, error)
	ListEndingBefore(ctx context.Context, date string, status domain.ContractStatus) ([]domain.RentalContract, error)
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *domain.Incident) error
	GetByID(ctx context.Context, id int32) (*domain.Incident, error)
	Update(ctx context.Context, incident *domain.Incident) error
	ListByContract(ctx context.Context, contractID int32) ([]domain.Incident, error)
	AddImage(ctx context.Context, incidentID int32, path string) error
}

type PaymentRepository interface {
	// CreateWithinTotal inserts the payment only if existing payments plus the
	// new amount stay within the contract's total price. The check and the
	// insert run in one transaction with the contract row locked, so two
	// concurrent payments cannot both pass the ceiling check.
	CreateWithinTotal(ctx context.Context, payment *domain.Payment) error
	ListByContract(ctx context.Context, contractID int32) ([]domain.Payment, error)
	SumByContract(ctx context.Context, contractID int32) (int64, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, employeeID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, employeeID int32) error
}

type StatisticsRepository interface {
	RevenueByMonth(ctx context.Context, fromMonth, toMonth string) ([]domain.MonthlyRevenue, error)
	ContractCountsByStatus(ctx context.Context) ([]domain.ContractStatusCount, error)
	IncidentCountsByType(ctx context.Context) ([]domain.IncidentTypeCount, error)
}
