package workday

import (
	"context"
	"time"
)

// WorkDayService defines business logic for the workday lifecycle, the
// approval workflow and period summaries. Clock times come in from the
// caller so threshold behavior stays deterministic under test.
type WorkDayService interface {
	// Create registers a new workday record (ordinary day or absence entry)
	Create(ctx context.Context, req CreateWorkDayRequest) (WorkDayResponse, error)

	// StartDay records clock-in and derives the delay flag
	StartDay(ctx context.Context, workDayID string, now time.Time) (WorkDayResponse, error)

	// EndDay records clock-out, derives work time, overtime and deficit,
	// and folds in closed-break totals
	EndDay(ctx context.Context, workDayID string, now time.Time) (WorkDayResponse, error)

	// Decide resolves the approval workflow for an absence entry
	Decide(ctx context.Context, req DecisionRequest) (WorkDayResponse, error)

	// ListByEmployee retrieves an employee's records, optionally range-bound
	ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) (ListWorkDayResponse, error)

	// ListFiltered retrieves records for one of the flag-filtered views
	// (overtime, delays, vacation, sick leave, deficit)
	ListFiltered(ctx context.Context, filter WorkDayFilter) (ListWorkDayResponse, error)

	// ToAcceptByEmployee lists an employee's absence entries awaiting a decision
	ToAcceptByEmployee(ctx context.Context, employeeID string, from, to *time.Time) (ListWorkDayResponse, error)

	// ToAcceptByDepartment lists a department's absence entries awaiting a decision
	ToAcceptByDepartment(ctx context.Context, departmentID string) (ListWorkDayResponse, error)

	// Decided lists an employee's accepted or rejected entries in a range
	Decided(ctx context.Context, employeeID string, approval ApprovalStatus, from, to *time.Time) (ListWorkDayResponse, error)

	// SummaryByEmployee aggregates an employee's records over a range
	SummaryByEmployee(ctx context.Context, employeeID string, from, to time.Time) (SummaryResponse, error)

	// SummaryByDepartment aggregates a department's records over a range
	SummaryByDepartment(ctx context.Context, departmentID string, from, to time.Time) (SummaryResponse, error)
}
