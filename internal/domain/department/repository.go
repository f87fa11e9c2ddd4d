package department

import (
	"context"
)

// DepartmentRepository defines data access for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept Department) error
	Delete(ctx context.Context, id string) error
}
