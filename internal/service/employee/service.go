package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/worktime-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	response := employee.EmployeeResponse{
		ID:             emp.ID,
		FirstName:      emp.FirstName,
		LastName:       emp.LastName,
		Email:          emp.Email,
		Phone:          emp.Phone,
		Position:       emp.Position,
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		Login:          emp.Login,
		Role:           string(emp.Role),
	}
	if emp.HireDate != nil {
		hireDate := emp.HireDate.Format("2006-01-02")
		response.HireDate = &hireDate
	}
	if emp.Address != nil {
		response.Address = &employee.AddressResponse{
			Street: emp.Address.Street,
			Number: emp.Address.Number,
			City:   emp.Address.City,
			Zip:    emp.Address.Zip,
		}
	}
	return response
}

// mapUniqueViolation translates a unique constraint violation into the
// matching domain error, nil for anything else.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		if strings.Contains(pgErr.ConstraintName, "login") {
			return employee.ErrLoginExists
		}
		return employee.ErrEmailExists
	}
	return nil
}

func parseDatePtr(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Position:     req.Position,
		HireDate:     parseDatePtr(req.HireDate),
		DepartmentID: req.DepartmentID,
		Login:        req.Login,
		PasswordHash: string(hash),
		Role:         employee.Role(req.Role),
	}

	if req.Address != nil {
		emp.Address = &employee.Address{
			Street: req.Address.Street,
			Number: req.Address.Number,
			City:   req.Address.City,
			Zip:    req.Address.Zip,
		}
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return employee.EmployeeResponse{}, dupErr
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return mapEmployeesToResponses(employees), nil
}

// ListByDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.ListByDepartment(ctx, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by department: %w", err)
	}

	return mapEmployeesToResponses(employees), nil
}

func mapEmployeesToResponses(employees []employee.Employee) []employee.EmployeeResponse {
	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}
	return responses
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.Email = req.Email
	emp.Phone = req.Phone
	emp.Position = req.Position
	emp.HireDate = parseDatePtr(req.HireDate)
	emp.DepartmentID = req.DepartmentID

	if req.Address != nil {
		emp.Address = &employee.Address{
			Street: req.Address.Street,
			Number: req.Address.Number,
			City:   req.Address.City,
			Zip:    req.Address.Zip,
		}
	}

	if err := s.EmployeeRepository.Update(ctx, emp); err != nil {
		if dupErr := mapUniqueViolation(err); dupErr != nil {
			return employee.EmployeeResponse{}, dupErr
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.EmployeeRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	return nil
}
