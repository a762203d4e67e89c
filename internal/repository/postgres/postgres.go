package postgres

import (
	"database/sql"

	"motorent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.EmployeeRepository
	repository.MotorbikeRepository
	repository.DiscountRepository
	repository.ContractRepository
	repository.IncidentRepository
	repository.PaymentRepository
	repository.NotificationRepository
	repository.StatisticsRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		CustomerRepository:     NewCustomerRepository(db),
		EmployeeRepository:     NewEmployeeRepository(db),
		MotorbikeRepository:    NewMotorbikeRepository(db),
		DiscountRepository:     NewDiscountRepository(db),
		ContractRepository:     NewContractRepository(db),
		IncidentRepository:     NewIncidentRepository(db),
		PaymentRepository:      NewPaymentRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		StatisticsRepository:   NewStatisticsRepository(db),
	}
}
