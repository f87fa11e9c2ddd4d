package workday

import (
	"context"
	"time"
)

// WorkDayFilter narrows List queries. Nil/zero fields are not applied.
// AwaitingDecision selects records with a category flag set and a pending
// approval; it is mutually exclusive with Approval.
type WorkDayFilter struct {
	EmployeeID   string
	DepartmentID string

	From *time.Time
	To   *time.Time

	Overhours        bool
	Delay            bool
	Vacation         bool
	SickLeave        bool
	Delegation       bool
	DeficitOnly      bool
	AwaitingDecision bool
	Approval         *ApprovalStatus
}

// WorkDayRepository defines data access for workday records.
type WorkDayRepository interface {
	// Create inserts a new record and returns it with its assigned ID.
	Create(ctx context.Context, record WorkDayRecord) (WorkDayRecord, error)

	// GetByID retrieves a record by ID
	GetByID(ctx context.Context, id string) (WorkDayRecord, error)

	// Update persists the mutable fields of an existing record in one
	// statement; a failed transition therefore commits nothing.
	Update(ctx context.Context, record WorkDayRecord) error

	// List retrieves records matching the filter, joined with employee and
	// department names for responses.
	List(ctx context.Context, filter WorkDayFilter) ([]WorkDayRecord, error)
}
