package domain

import "time"

type IncidentType string

const (
	IncidentTypeTrafficAccident    IncidentType = "TRAFFIC_ACCIDENT"
	IncidentTypeMechanicalIssue    IncidentType = "MECHANICAL_ISSUE"
	IncidentTypePoliceIntervention IncidentType = "POLICE_INTERVENTION"
	IncidentTypeTheft              IncidentType = "THEFT"
	IncidentTypeOther              IncidentType = "OTHER"
)

type IncidentSeverity string

const (
	IncidentSeverityLow      IncidentSeverity = "LOW"
	IncidentSeverityMedium   IncidentSeverity = "MEDIUM"
	IncidentSeverityHigh     IncidentSeverity = "HIGH"
	IncidentSeverityCritical IncidentSeverity = "CRITICAL"
)

type Incident struct {
	ID          int32            `json:"id"`
	ContractID  int32            `json:"contract_id"`
	Type        IncidentType     `json:"type"`
	Severity    IncidentSeverity `json:"severity"`
	Description string           `json:"description"`
	// Resolution fields, set once when the incident is completed.
	Resolved        bool       `json:"resolved"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	ResolutionCost  int64      `json:"resolution_cost"`
	ResolvedOn      *time.Time `json:"resolved_on,omitempty"`
	ImagePaths      []string   `json:"image_paths,omitempty"`
	CreatedOn       time.Time  `json:"created_on"`
	UpdatedOn       time.Time  `json:"updated_on"`
}
