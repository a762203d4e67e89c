package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"motorent-backend/internal/domain"
)

func TestIncidentForCreate(t *testing.T) {
	v := NewIncidentValidator()

	t.Run("allows incidents on an active contract", func(t *testing.T) {
		contract := &domain.RentalContract{ID: 42, Status: domain.ContractStatusActive}
		assert.Empty(t, v.ForCreate(contract))
	})

	t.Run("rejects every other status", func(t *testing.T) {
		for _, status := range []domain.ContractStatus{
			domain.ContractStatusPending,
			domain.ContractStatusProcessingIncident,
			domain.ContractStatusCompleted,
			domain.ContractStatusCancelled,
		} {
			contract := &domain.RentalContract{ID: 42, Status: status}
			assert.NotEmpty(t, v.ForCreate(contract), "status %s", status)
		}
	})
}

func TestIncidentForComplete(t *testing.T) {
	v := NewIncidentValidator()
	now := time.Now()

	processing := &domain.RentalContract{ID: 42, Status: domain.ContractStatusProcessingIncident}

	t.Run("passes a full resolution", func(t *testing.T) {
		incident := &domain.Incident{ID: 9, ContractID: 42}
		assert.Empty(t, v.ForComplete(incident, processing, "replaced clutch cable", 120000, &now))
	})

	t.Run("requires notes and a resolved date", func(t *testing.T) {
		incident := &domain.Incident{ID: 9, ContractID: 42}
		violations := v.ForComplete(incident, processing, "", 0, nil)
		assert.Len(t, violations, 2)
	})

	t.Run("rejects a negative cost", func(t *testing.T) {
		incident := &domain.Incident{ID: 9, ContractID: 42}
		assert.NotEmpty(t, v.ForComplete(incident, processing, "notes", -1, &now))
	})

	t.Run("rejects an incident from another contract", func(t *testing.T) {
		incident := &domain.Incident{ID: 9, ContractID: 99}
		assert.NotEmpty(t, v.ForComplete(incident, processing, "notes", 0, &now))
	})

	t.Run("rejects an already resolved incident", func(t *testing.T) {
		incident := &domain.Incident{ID: 9, ContractID: 42, Resolved: true}
		assert.NotEmpty(t, v.ForComplete(incident, processing, "notes", 0, &now))
	})

	t.Run("rejects a contract not processing an incident", func(t *testing.T) {
		incident := &domain.Incident{ID: 9, ContractID: 42}
		active := &domain.RentalContract{ID: 42, Status: domain.ContractStatusActive}
		assert.NotEmpty(t, v.ForComplete(incident, active, "notes", 0, &now))
	})
}
