package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/worktime-backend-go/internal/domain/employee"
	"github.com/attendly/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.id, e.first_name, e.last_name, e.email, e.phone, e.position,
	e.hire_date, e.department_id, e.login, e.password_hash, e.role,
	e.created_at, e.updated_at,
	a.id, a.street, a.number, a.city, a.zip,
	d.name AS department_name
`

const employeeJoins = `
	FROM employees e
	LEFT JOIN addresses a ON a.employee_id = e.id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanEmployee(row interface{ Scan(dest ...any) error }) (employee.Employee, error) {
	var emp employee.Employee
	var addrID, addrStreet, addrNumber, addrCity, addrZip *string

	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.Position,
		&emp.HireDate, &emp.DepartmentID, &emp.Login, &emp.PasswordHash, &emp.Role,
		&emp.CreatedAt, &emp.UpdatedAt,
		&addrID, &addrStreet, &addrNumber, &addrCity, &addrZip,
		&emp.DepartmentName,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if addrID != nil {
		emp.Address = &employee.Address{
			ID:     *addrID,
			Street: *addrStreet,
			Number: *addrNumber,
			City:   *addrCity,
			Zip:    *addrZip,
		}
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository. The employee row and its
// address row are written in one transaction.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = uuid.NewString()

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		query := `
			INSERT INTO employees (
				id, first_name, last_name, email, phone, position,
				hire_date, department_id, login, password_hash, role
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
			) RETURNING created_at, updated_at
		`

		err := q.QueryRow(ctx, query,
			emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Position,
			emp.HireDate, emp.DepartmentID, emp.Login, emp.PasswordHash, emp.Role,
		).Scan(&emp.CreatedAt, &emp.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		if emp.Address != nil {
			emp.Address.ID = uuid.NewString()
			_, err = q.Exec(ctx, `
				INSERT INTO addresses (id, employee_id, street, number, city, zip)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, emp.Address.ID, emp.ID, emp.Address.Street, emp.Address.Number, emp.Address.City, emp.Address.Zip)
			if err != nil {
				return fmt.Errorf("failed to create address: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `WHERE e.id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByLogin implements employee.EmployeeRepository.
func (r *employeeRepository) GetByLogin(ctx context.Context, login string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + employeeJoins + `WHERE e.login = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, login))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by login: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.list(ctx, `SELECT `+employeeColumns+employeeJoins+`ORDER BY e.last_name, e.first_name`)
}

// ListByDepartment implements employee.EmployeeRepository.
func (r *employeeRepository) ListByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return r.list(ctx,
		`SELECT `+employeeColumns+employeeJoins+`WHERE e.department_id = $1 ORDER BY e.last_name, e.first_name`,
		departmentID,
	)
}

func (r *employeeRepository) list(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		tag, err := q.Exec(ctx, `
			UPDATE employees SET
				first_name = $2,
				last_name = $3,
				email = $4,
				phone = $5,
				position = $6,
				hire_date = $7,
				department_id = $8,
				updated_at = NOW()
			WHERE id = $1
		`, emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Position, emp.HireDate, emp.DepartmentID)
		if err != nil {
			return fmt.Errorf("failed to update employee: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return employee.ErrEmployeeNotFound
		}

		if emp.Address != nil {
			_, err = q.Exec(ctx, `
				INSERT INTO addresses (id, employee_id, street, number, city, zip)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (employee_id) DO UPDATE SET
					street = EXCLUDED.street,
					number = EXCLUDED.number,
					city = EXCLUDED.city,
					zip = EXCLUDED.zip
			`, uuid.NewString(), emp.ID, emp.Address.Street, emp.Address.Number, emp.Address.City, emp.Address.Zip)
			if err != nil {
				return fmt.Errorf("failed to upsert address: %w", err)
			}
		}

		return nil
	})
}

// Delete implements employee.EmployeeRepository. The addresses row goes
// with the employee via ON DELETE CASCADE.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
