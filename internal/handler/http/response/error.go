package response

import (
	"errors"
	"net/http"

	"github.com/attendly/worktime-backend-go/internal/domain/auth"
	"github.com/attendly/worktime-backend-go/internal/domain/department"
	"github.com/attendly/worktime-backend-go/internal/domain/employee"
	"github.com/attendly/worktime-backend-go/internal/domain/workbreak"
	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	"github.com/attendly/worktime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrManagerPrivilegeRequired):
		Forbidden(w, err.Error())

	// Workday lifecycle errors
	case errors.Is(err, workday.ErrRecordNotFound):
		NotFound(w, "Workday record not found")
	case errors.Is(err, workday.ErrDayNotStarted),
		errors.Is(err, workday.ErrDayAlreadyStarted),
		errors.Is(err, workday.ErrDayAlreadyEnded):
		Conflict(w, err.Error())

	// Approval workflow errors
	case errors.Is(err, workday.ErrConflictingDecision):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, workday.ErrAlreadyDecided):
		Conflict(w, err.Error())

	// Break errors
	case errors.Is(err, workbreak.ErrBreakNotFound):
		NotFound(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrLoginExists):
		Conflict(w, "Login is already taken")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email is already registered")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name is already taken")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
