package workday

import (
	"time"
)

// WorkDayStatus tracks the work-time lifecycle of a record.
type WorkDayStatus string

const (
	StatusOpen    WorkDayStatus = "open"
	StatusStarted WorkDayStatus = "started"
	StatusEnded   WorkDayStatus = "ended"
)

// ApprovalStatus tracks the decision lifecycle of vacation, sick leave and
// delegation entries. It is independent of WorkDayStatus.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalAccepted ApprovalStatus = "accepted"
	ApprovalRejected ApprovalStatus = "rejected"
)

// WorkDayRecord is one employee's attendance entry for one calendar day.
type WorkDayRecord struct {
	ID         string
	EmployeeID string
	Workday    time.Time

	Status    WorkDayStatus
	StartTime *time.Time
	EndTime   *time.Time

	// Derived at the start/end transitions, never supplied by callers.
	Delay           bool
	Deficit         int
	Overhours       bool
	OvertimeMinutes int
	WorkMinutes     int

	// Category flags, set at creation.
	Vacation   bool
	SickLeave  bool
	Delegation bool

	Approval ApprovalStatus

	// Folded in from closed breaks at day end.
	BreaksCount  int
	BreakMinutes int

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName   *string
	DepartmentName *string
}

// BreakSummary carries the closed-break totals folded into a record when the
// day is ended.
type BreakSummary struct {
	Count   int
	Minutes int
}
