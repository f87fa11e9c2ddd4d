package employee

import (
	"github.com/attendly/worktime-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type AddressRequest struct {
	Street string `json:"street"`
	Number string `json:"number"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

type CreateEmployeeRequest struct {
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone"`
	Position     *string         `json:"position"`
	HireDate     *string         `json:"hire_date"` // YYYY-MM-DD
	DepartmentID *string         `json:"department_id"`
	Address      *AddressRequest `json:"address"`
	Login        string          `json:"login"`
	Password     string          `json:"password"`
	Role         string          `json:"role"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if validator.IsEmpty(r.Login) {
		errs = append(errs, validator.ValidationError{
			Field:   "login",
			Message: "login is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleEmployee), string(RoleManager)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be either employee or manager",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string          `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone"`
	Position     *string         `json:"position"`
	HireDate     *string         `json:"hire_date"`
	DepartmentID *string         `json:"department_id"`
	Address      *AddressRequest `json:"address"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AddressResponse struct {
	Street string `json:"street"`
	Number string `json:"number"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

type EmployeeResponse struct {
	ID             string           `json:"id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Phone          *string          `json:"phone"`
	Position       *string          `json:"position"`
	HireDate       *string          `json:"hire_date"`
	DepartmentID   *string          `json:"department_id"`
	DepartmentName *string          `json:"department_name,omitempty"`
	Address        *AddressResponse `json:"address,omitempty"`
	Login          string           `json:"login"`
	Role           string           `json:"role"`
}
