package workbreak

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/worktime-backend-go/internal/domain/workbreak"
	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	"github.com/jackc/pgx/v5"
)

type BreakServiceImpl struct {
	workbreak.BreakRepository
	workday.WorkDayRepository
}

func NewBreakService(
	breakRepository workbreak.BreakRepository,
	workDayRepository workday.WorkDayRepository,
) *BreakServiceImpl {
	return &BreakServiceImpl{
		BreakRepository:   breakRepository,
		WorkDayRepository: workDayRepository,
	}
}

func mapBreakToResponse(interval workbreak.BreakInterval) workbreak.BreakResponse {
	response := workbreak.BreakResponse{
		ID:              interval.ID,
		WorkDayRecordID: interval.WorkDayRecordID,
		StartTime:       interval.StartTime.Format("15:04:05"),
		Minutes:         interval.Minutes,
	}
	if interval.EndTime != nil {
		end := interval.EndTime.Format("15:04:05")
		response.EndTime = &end
	}
	return response
}

// Open implements workbreak.BreakService. The owning workday record must
// exist; nothing stops several breaks being open on the same record at
// once, closing targets a break by ID.
func (s *BreakServiceImpl) Open(ctx context.Context, req workbreak.OpenBreakRequest, now time.Time) (workbreak.BreakResponse, error) {
	if err := req.Validate(); err != nil {
		return workbreak.BreakResponse{}, err
	}

	if _, err := s.WorkDayRepository.GetByID(ctx, req.WorkDayRecordID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workbreak.BreakResponse{}, workday.ErrRecordNotFound
		}
		return workbreak.BreakResponse{}, fmt.Errorf("failed to get workday record: %w", err)
	}

	interval := workbreak.BreakInterval{
		WorkDayRecordID: req.WorkDayRecordID,
		StartTime:       now,
	}

	created, err := s.BreakRepository.Create(ctx, interval)
	if err != nil {
		return workbreak.BreakResponse{}, fmt.Errorf("failed to create break: %w", err)
	}

	return mapBreakToResponse(created), nil
}

// Close implements workbreak.BreakService. A break that is already closed
// does not count as an open break, so a second close reports not-found.
func (s *BreakServiceImpl) Close(ctx context.Context, breakID string, now time.Time) (workbreak.BreakResponse, error) {
	interval, err := s.BreakRepository.GetByID(ctx, breakID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workbreak.BreakResponse{}, workbreak.ErrBreakNotFound
		}
		return workbreak.BreakResponse{}, fmt.Errorf("failed to get break: %w", err)
	}

	if _, err := s.WorkDayRepository.GetByID(ctx, interval.WorkDayRecordID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workbreak.BreakResponse{}, workday.ErrRecordNotFound
		}
		return workbreak.BreakResponse{}, fmt.Errorf("failed to get workday record: %w", err)
	}

	if err := interval.Close(now); err != nil {
		return workbreak.BreakResponse{}, err
	}

	if err := s.BreakRepository.Update(ctx, interval); err != nil {
		return workbreak.BreakResponse{}, fmt.Errorf("failed to update break: %w", err)
	}

	return mapBreakToResponse(interval), nil
}

// ListByWorkDay implements workbreak.BreakService.
func (s *BreakServiceImpl) ListByWorkDay(ctx context.Context, workDayID string) ([]workbreak.BreakResponse, error) {
	intervals, err := s.BreakRepository.GetByWorkDayRecordID(ctx, workDayID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}

	responses := make([]workbreak.BreakResponse, 0, len(intervals))
	for _, interval := range intervals {
		responses = append(responses, mapBreakToResponse(interval))
	}

	return responses, nil
}
