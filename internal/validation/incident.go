package validation

import (
	"fmt"
	"time"

	"motorent-backend/internal/domain"
)

// IncidentValidator authorizes incident transitions against the owning
// contract's state. It never performs the transitions itself; the lifecycle
// service does, after validation passes. No I/O.
type IncidentValidator struct{}

func NewIncidentValidator() *IncidentValidator {
	return &IncidentValidator{}
}

// ForCreate authorizes reporting a new incident: the contract must be ACTIVE.
func (v *IncidentValidator) ForCreate(contract *domain.RentalContract) []string {
	var violations []string
	if contract.Status != domain.ContractStatusActive {
		violations = append(violations, fmt.Sprintf("incidents can only be reported on an active contract (status %s)", contract.Status))
	}
	return violations
}

// ForUpdate checks the incident belongs to the contract and is still open.
func (v *IncidentValidator) ForUpdate(incident *domain.Incident, contract *domain.RentalContract) []string {
	var violations []string
	if incident.ContractID != contract.ID {
		violations = append(violations, fmt.Sprintf("incident %d does not belong to contract %d", incident.ID, contract.ID))
	}
	if incident.Resolved {
		violations = append(violations, fmt.Sprintf("incident %d is already resolved", incident.ID))
	}
	return violations
}

// ForComplete authorizes resolving an incident: unresolved, owning contract
// in PROCESSING_INCIDENT, resolution fields present, cost non-negative.
func (v *IncidentValidator) ForComplete(incident *domain.Incident, contract *domain.RentalContract, notes string, cost int64, resolvedOn *time.Time) []string {
	violations := v.ForUpdate(incident, contract)

	if contract.Status != domain.ContractStatusProcessingIncident {
		violations = append(violations, fmt.Sprintf("contract %d is not processing an incident (status %s)", contract.ID, contract.Status))
	}
	if notes == "" {
		violations = append(violations, "resolution notes are required")
	}
	if resolvedOn == nil {
		violations = append(violations, "resolved date is required")
	}
	if cost < 0 {
		violations = append(violations, "resolution cost must not be negative")
	}

	return violations
}
