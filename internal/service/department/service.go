package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/worktime-backend-go/internal/domain/department"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository) *DepartmentServiceImpl {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepository,
	}
}

func mapDepartmentToResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:      dept.ID,
		Name:    dept.Name,
		Manager: dept.Manager,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:    req.Name,
		Manager: req.Manager,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return mapDepartmentToResponse(created), nil
}

// Get implements department.DepartmentService.
func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.DepartmentResponse{}, department.ErrDepartmentNotFound
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to get department: %w", err)
	}

	return mapDepartmentToResponse(dept), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, mapDepartmentToResponse(dept))
	}

	return responses, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept := department.Department{
		ID:      req.ID,
		Name:    req.Name,
		Manager: req.Manager,
	}

	if err := s.DepartmentRepository.Update(ctx, dept); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return department.DepartmentResponse{}, err
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}

	return mapDepartmentToResponse(dept), nil
}

// Delete implements department.DepartmentService.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.DepartmentRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, department.ErrDepartmentNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}

	return nil
}
