package workbreak

import (
	"context"
	"time"
)

// BreakService defines business logic for break tracking.
type BreakService interface {
	// Open starts a new break for an existing workday record
	Open(ctx context.Context, req OpenBreakRequest, now time.Time) (BreakResponse, error)

	// Close ends an open break and fixes its duration in whole minutes
	Close(ctx context.Context, breakID string, now time.Time) (BreakResponse, error)

	// ListByWorkDay retrieves all breaks recorded for a workday record
	ListByWorkDay(ctx context.Context, workDayID string) ([]BreakResponse, error)
}
