package workbreak

import (
	"context"
)

// BreakRepository defines data access for break intervals.
type BreakRepository interface {
	// Create inserts a new open interval and returns it with its assigned ID.
	Create(ctx context.Context, interval BreakInterval) (BreakInterval, error)

	// GetByID retrieves an interval by ID
	GetByID(ctx context.Context, id string) (BreakInterval, error)

	// GetByWorkDayRecordID retrieves all intervals belonging to a record
	GetByWorkDayRecordID(ctx context.Context, workDayRecordID string) ([]BreakInterval, error)

	// Update persists the end time and duration of a closed interval
	Update(ctx context.Context, interval BreakInterval) error
}
