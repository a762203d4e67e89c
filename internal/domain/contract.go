package domain

import "time"

type ContractStatus string

const (
	ContractStatusPending            ContractStatus = "PENDING"
	ContractStatusActive             ContractStatus = "ACTIVE"
	ContractStatusProcessingIncident ContractStatus = "PROCESSING_INCIDENT"
	ContractStatusCompleted          ContractStatus = "COMPLETED"
	ContractStatusCancelled          ContractStatus = "CANCELLED"
)

// ContractTransitions is the allowed status graph. Transitions are
// one-directional except the incident detour back to ACTIVE.
var ContractTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusPending:            {ContractStatusActive, ContractStatusCancelled},
	ContractStatusActive:             {ContractStatusProcessingIncident, ContractStatusCompleted, ContractStatusCancelled},
	ContractStatusProcessingIncident: {ContractStatusActive, ContractStatusCompleted},
	ContractStatusCompleted:          {},
	ContractStatusCancelled:          {},
}

// CanTransition reports whether from -> to is an allowed contract status change.
func CanTransition(from, to ContractStatus) bool {
	for _, s := range ContractTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type RentalContract struct {
	ID          int32   `json:"id"`
	CustomerID  int32   `json:"customer_id"`
	MotorbikeID int32   `json:"motorbike_id"`
	DiscountID  *int32  `json:"discount_id,omitempty"`
	StartDate   string  `json:"start_date"` // yyyy-mm-dd
	EndDate     string  `json:"end_date"`   // yyyy-mm-dd
	// Price snapshot fields, captured at contract creation time. All later
	// calculations use these snapshots, not live price list entries.
	DailyRate      int64          `json:"daily_rate"`
	BasePrice      int64          `json:"base_price"`
	DiscountAmount int64          `json:"discount_amount"`
	TotalPrice     int64          `json:"total_price"`
	Status         ContractStatus `json:"status"`
	Notes          string         `json:"notes,omitempty"`
	Payments       []Payment      `json:"payments,omitempty"`
	Incidents      []Incident     `json:"incidents,omitempty"`
	CreatedOn      time.Time      `json:"created_on"`
	UpdatedOn      time.Time      `json:"updated_on"`
}

// PaidAmount is the sum of all recorded payments.
func (c *RentalContract) PaidAmount() int64 {
	var total int64
	for _, p := range c.Payments {
		total += p.Amount
	}
	return total
}

// OpenIncidents counts incidents that have not been resolved yet.
func (c *RentalContract) OpenIncidents() int {
	n := 0
	for _, in := range c.Incidents {
		if !in.Resolved {
			n++
		}
	}
	return n
}
