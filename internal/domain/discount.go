package domain

import "time"

// Discount is either a percentage off the base price or a fixed amount,
// depending on which field is set. Applicable only while active and inside
// its validity window (both ends inclusive).
type Discount struct {
	ID          int32     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   string    `json:"start_date"` // yyyy-mm-dd
	EndDate     string    `json:"end_date"`   // yyyy-mm-dd
	IsActive    bool      `json:"is_active"`
	Percentage  *int32    `json:"percentage,omitempty"`
	FixedAmount *int64    `json:"fixed_amount,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// ApplicableOn reports whether the discount can be applied on the given date.
func (d *Discount) ApplicableOn(date string) bool {
	if !d.IsActive {
		return false
	}
	return date >= d.StartDate && date <= d.EndDate
}
