package domain

import "time"

type EmployeeRole string

const (
	EmployeeRoleAdmin EmployeeRole = "ADMIN"
	EmployeeRoleStaff EmployeeRole = "STAFF"
)

type Employee struct {
	ID           int32        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PhoneNumber  string       `json:"phone_number"`
	PasswordHash string       `json:"-"`
	Role         EmployeeRole `json:"role"`
	CreatedOn    time.Time    `json:"created_on"`
	UpdatedOn    time.Time    `json:"updated_on"`
}
