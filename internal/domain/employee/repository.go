package employee

import (
	"context"
)

// EmployeeRepository defines data access for employees and their addresses.
type EmployeeRepository interface {
	// Create inserts an employee and its address in one transaction
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID, address and department included
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByLogin retrieves an employee by login, password hash included.
	// Used by authentication.
	GetByLogin(ctx context.Context, login string) (Employee, error)

	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// ListByDepartment retrieves all employees of a department
	ListByDepartment(ctx context.Context, departmentID string) ([]Employee, error)

	// Update persists employee and address changes in one transaction
	Update(ctx context.Context, emp Employee) error

	// Delete removes an employee and its address
	Delete(ctx context.Context, id string) error
}
