package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/worktime-backend-go/internal/domain/department"
	"github.com/attendly/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	dept.ID = uuid.NewString()

	query := `
		INSERT INTO departments (id, name, manager)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.ID, dept.Name, dept.Manager).Scan(&dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return dept, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepository) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, manager, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.Manager, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return dept, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepository) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, manager, created_at, updated_at
		FROM departments
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Manager, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate departments: %w", err)
	}

	return departments, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments SET
			name = $2,
			manager = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, dept.ID, dept.Name, dept.Manager)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}
