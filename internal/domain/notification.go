package domain

type Notification struct {
	ID         int32             `json:"id"`
	EmployeeID int32             `json:"employee_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  string            `json:"created_on"`
}
