package domain

import "time"

type MotorbikeStatus string

const (
	MotorbikeStatusAvailable        MotorbikeStatus = "AVAILABLE"
	MotorbikeStatusRented           MotorbikeStatus = "RENTED"
	MotorbikeStatusUnderMaintenance MotorbikeStatus = "UNDER_MAINTENANCE"
	MotorbikeStatusReserved         MotorbikeStatus = "RESERVED"
	MotorbikeStatusOutOfService     MotorbikeStatus = "OUT_OF_SERVICE"
	MotorbikeStatusDamaged          MotorbikeStatus = "DAMAGED"
)

// ValidMotorbikeStatus reports whether s is one of the known statuses.
func ValidMotorbikeStatus(s MotorbikeStatus) bool {
	switch s {
	case MotorbikeStatusAvailable, MotorbikeStatusRented, MotorbikeStatusUnderMaintenance,
		MotorbikeStatusReserved, MotorbikeStatusOutOfService, MotorbikeStatusDamaged:
		return true
	}
	return false
}

type Motorbike struct {
	ID           int32           `json:"id"`
	Brand        string          `json:"brand"`
	Model        string          `json:"model"`
	Year         int32           `json:"year"`
	LicensePlate string          `json:"license_plate"`
	Color        string          `json:"color"`
	ImageURL     string          `json:"image_url,omitempty"`
	Status       MotorbikeStatus `json:"status"`
	// ReservedBy holds the customer a RESERVED bike is held for.
	ReservedBy *int32     `json:"reserved_by,omitempty"`
	CreatedOn  time.Time  `json:"created_on"`
	UpdatedOn  time.Time  `json:"updated_on"`
	DeletedOn  *time.Time `json:"deleted_on,omitempty"`
}

// RentableBy reports whether the bike can be attached to a new contract for
// the given customer: AVAILABLE, or RESERVED for that same customer.
func (m *Motorbike) RentableBy(customerID int32) bool {
	if m.Status == MotorbikeStatusAvailable {
		return true
	}
	return m.Status == MotorbikeStatusReserved && m.ReservedBy != nil && *m.ReservedBy == customerID
}

// PriceList is a motorbike's active rate card. Pricing uses the entry that is
// active at quote time; a bike without one cannot be rented.
type PriceList struct {
	ID          int32     `json:"id"`
	MotorbikeID int32     `json:"motorbike_id"`
	DailyRate   int64     `json:"daily_rate"`
	IsActive    bool      `json:"is_active"`
	CreatedOn   time.Time `json:"created_on"`
}
