package workday

import (
	"github.com/attendly/worktime-backend-go/internal/pkg/validator"
)

// ========================================
// WORKDAY DTOs
// ========================================

type CreateWorkDayRequest struct {
	EmployeeID string `json:"employee_id"`
	Workday    string `json:"workday"` // YYYY-MM-DD
	Vacation   bool   `json:"vacation"`
	SickLeave  bool   `json:"sick_leave"`
	Delegation bool   `json:"delegation"`
}

func (r *CreateWorkDayRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Workday); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "workday",
			Message: "workday must be a valid date in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecisionRequest struct {
	WorkDayID string `json:"workday_id"`
	Accepted  bool   `json:"accepted"`
	Rejected  bool   `json:"rejected"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkDayID) {
		errs = append(errs, validator.ValidationError{
			Field:   "workday_id",
			Message: "workday_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkDayResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Workday    string  `json:"workday"`
	Status     string  `json:"status"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`

	Delay           bool `json:"delay"`
	Deficit         int  `json:"deficit"`
	Overhours       bool `json:"overhours"`
	OvertimeMinutes int  `json:"overtime_minutes"`
	WorkMinutes     int  `json:"work_minutes"`

	Vacation   bool   `json:"vacation"`
	SickLeave  bool   `json:"sick_leave"`
	Delegation bool   `json:"delegation"`
	Approval   string `json:"approval"`

	BreaksCount  int `json:"breaks_count"`
	BreakMinutes int `json:"break_minutes"`

	EmployeeName   *string `json:"employee_name,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
}

type ListWorkDayResponse struct {
	TotalCount int               `json:"total_count"`
	WorkDays   []WorkDayResponse `json:"workdays"`
}

type SummaryResponse struct {
	From string `json:"from"`
	To   string `json:"to"`

	TotalOvertimeCount   int   `json:"total_overtime_count"`
	TotalOvertimeMinutes int   `json:"total_overtime_minutes"`
	TotalDelays          int   `json:"total_delays"`
	TotalDeficit         int   `json:"total_deficit"`
	TotalUsedVacation    int   `json:"total_used_vacation"`
	TotalPlannedVacation int   `json:"total_planned_vacation"`
	TotalWorkMinutes     int64 `json:"total_work_minutes"`
}
