package domain

import "time"

type Customer struct {
	ID            int32      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	PhoneNumber   string     `json:"phone_number"`
	Address       string     `json:"address,omitempty"`
	IdentityCard  string     `json:"identity_card"`
	LicenseNumber string     `json:"license_number"`
	CreatedOn     time.Time  `json:"created_on"`
	UpdatedOn     time.Time  `json:"updated_on"`
	DeletedOn     *time.Time `json:"deleted_on,omitempty"`
}
