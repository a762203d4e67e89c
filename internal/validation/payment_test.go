package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

func TestForProcessPayment(t *testing.T) {
	v := NewPaymentValidator()

	activeContract := func(paid int64) *domain.RentalContract {
		c := &domain.RentalContract{ID: 42, TotalPrice: 270000, Status: domain.ContractStatusActive}
		if paid > 0 {
			c.Payments = []domain.Payment{{ID: 1, ContractID: 42, Amount: paid}}
		}
		return c
	}

	t.Run("accepts a payment up to the exact total", func(t *testing.T) {
		assert.Empty(t, v.ForProcessPayment(activeContract(100000), 170000, domain.PaymentMethodCash))
	})

	t.Run("rejects a payment pushing the sum over the total", func(t *testing.T) {
		assert.NotEmpty(t, v.ForProcessPayment(activeContract(200000), 100000, domain.PaymentMethodCash))
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		assert.NotEmpty(t, v.ForProcessPayment(activeContract(0), 0, domain.PaymentMethodCash))
		assert.NotEmpty(t, v.ForProcessPayment(activeContract(0), -500, domain.PaymentMethodCash))
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		assert.NotEmpty(t, v.ForProcessPayment(activeContract(0), 100000, domain.PaymentMethod("CRYPTO")))
	})

	t.Run("rejects cancelled and completed contracts", func(t *testing.T) {
		for _, status := range []domain.ContractStatus{domain.ContractStatusCancelled, domain.ContractStatusCompleted} {
			c := &domain.RentalContract{ID: 42, TotalPrice: 270000, Status: status}
			assert.NotEmpty(t, v.ForProcessPayment(c, 100000, domain.PaymentMethodCash), "status %s", status)
		}
	})

	t.Run("allows payments during incident processing", func(t *testing.T) {
		c := &domain.RentalContract{ID: 42, TotalPrice: 270000, Status: domain.ContractStatusProcessingIncident}
		assert.Empty(t, v.ForProcessPayment(c, 100000, domain.PaymentMethodBankTransfer))
	})
}
