package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

func TestContractRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()

	contract := &domain.RentalContract{
		CustomerID:     1,
		MotorbikeID:    10,
		StartDate:      "2026-09-01",
		EndDate:        "2026-09-03",
		DailyRate:      100000,
		BasePrice:      300000,
		DiscountAmount: 30000,
		TotalPrice:     270000,
		Status:         domain.ContractStatusPending,
	}

	mock.ExpectQuery("INSERT INTO rental_contracts").
		WithArgs(contract.CustomerID, contract.MotorbikeID, nil, contract.StartDate, contract.EndDate,
			contract.DailyRate, contract.BasePrice, contract.DiscountAmount, contract.TotalPrice,
			contract.Status, contract.Notes, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	err = repo.Create(ctx, contract)
	assert.NoError(t, err)
	assert.Equal(t, int32(42), contract.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()

	t.Run("transitions when the expected status holds", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_contracts SET status").
			WithArgs(domain.ContractStatusActive, sqlmock.AnyArg(), int32(42), domain.ContractStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 42, domain.ContractStatusPending, domain.ContractStatusActive)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflicts when another transition won", func(t *testing.T) {
		mock.ExpectExec("UPDATE rental_contracts SET status").
			WithArgs(domain.ContractStatusActive, sqlmock.AnyArg(), int32(42), domain.ContractStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 42, domain.ContractStatusPending, domain.ContractStatusActive)
		assert.True(t, domain.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestContractRepository_CustomerHasOpenContract(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int32(1), int32(0)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	open, err := repo.CustomerHasOpenContract(ctx, 1, 0)
	assert.NoError(t, err)
	assert.True(t, open)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContractRepository_GetByIDWithRelated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewContractRepository(db)
	ctx := context.Background()
	now := time.Now()

	contractRows := sqlmock.NewRows([]string{"id", "customer_id", "motorbike_id", "discount_id", "start_date", "end_date", "daily_rate", "base_price", "discount_amount", "total_price", "status", "notes", "created_on", "updated_on"}).
		AddRow(42, 1, 10, nil, "2026-09-01", "2026-09-03", 100000, 300000, 0, 300000, "ACTIVE", "", now, now)
	mock.ExpectQuery("SELECT (.+) FROM rental_contracts WHERE id = \\$1").
		WithArgs(int32(42)).
		WillReturnRows(contractRows)

	paymentRows := sqlmock.NewRows([]string{"id", "contract_id", "amount", "method", "reference", "paid_on", "created_on"}).
		AddRow(7, 42, 100000, "CASH", "", now, now)
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE contract_id = \\$1").
		WithArgs(int32(42)).
		WillReturnRows(paymentRows)

	incidentRows := sqlmock.NewRows([]string{"id", "contract_id", "type", "severity", "description", "resolved", "resolution_notes", "resolution_cost", "resolved_on", "created_on", "updated_on"}).
		AddRow(9, 42, "MECHANICAL_ISSUE", "MEDIUM", "flat tyre", false, "", 0, nil, now, now)
	mock.ExpectQuery("SELECT (.+) FROM incidents WHERE contract_id = \\$1").
		WithArgs(int32(42)).
		WillReturnRows(incidentRows)

	contract, err := repo.GetByIDWithRelated(ctx, 42)
	assert.NoError(t, err)
	assert.Len(t, contract.Payments, 1)
	assert.Len(t, contract.Incidents, 1)
	assert.Equal(t, int64(100000), contract.PaidAmount())
	assert.Equal(t, 1, contract.OpenIncidents())
	assert.NoError(t, mock.ExpectationsWereMet())
}
