package employee

import (
	"time"
)

// Role controls what an account may do. Managers decide absence requests
// and see department-wide views.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Position     *string
	HireDate     *time.Time
	DepartmentID *string

	Address *Address

	Login        string
	PasswordHash string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	DepartmentName *string
}

// Address is the employee's postal address, stored in its own table and
// written together with the employee row.
type Address struct {
	ID     string
	Street string
	Number string
	City   string
	Zip    string
}
