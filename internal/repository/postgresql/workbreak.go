package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/worktime-backend-go/internal/domain/workbreak"
	"github.com/attendly/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) workbreak.BreakRepository {
	return &breakRepository{db: db}
}

// Create implements workbreak.BreakRepository.
func (r *breakRepository) Create(ctx context.Context, interval workbreak.BreakInterval) (workbreak.BreakInterval, error) {
	q := GetQuerier(ctx, r.db)

	interval.ID = uuid.NewString()

	query := `
		INSERT INTO breaks (id, workday_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		interval.ID,
		interval.WorkDayRecordID,
		interval.StartTime,
	).Scan(&interval.CreatedAt, &interval.UpdatedAt)

	if err != nil {
		return workbreak.BreakInterval{}, fmt.Errorf("failed to create break: %w", err)
	}

	return interval, nil
}

// GetByID implements workbreak.BreakRepository.
func (r *breakRepository) GetByID(ctx context.Context, id string) (workbreak.BreakInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, workday_id, start_time, end_time, minutes, created_at, updated_at
		FROM breaks
		WHERE id = $1
	`

	var interval workbreak.BreakInterval
	err := q.QueryRow(ctx, query, id).Scan(
		&interval.ID, &interval.WorkDayRecordID,
		&interval.StartTime, &interval.EndTime, &interval.Minutes,
		&interval.CreatedAt, &interval.UpdatedAt,
	)
	if err != nil {
		return workbreak.BreakInterval{}, fmt.Errorf("failed to get break: %w", err)
	}

	return interval, nil
}

// GetByWorkDayRecordID implements workbreak.BreakRepository.
func (r *breakRepository) GetByWorkDayRecordID(ctx context.Context, workDayRecordID string) ([]workbreak.BreakInterval, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, workday_id, start_time, end_time, minutes, created_at, updated_at
		FROM breaks
		WHERE workday_id = $1
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, workDayRecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaks: %w", err)
	}
	defer rows.Close()

	var intervals []workbreak.BreakInterval
	for rows.Next() {
		var interval workbreak.BreakInterval
		if err := rows.Scan(
			&interval.ID, &interval.WorkDayRecordID,
			&interval.StartTime, &interval.EndTime, &interval.Minutes,
			&interval.CreatedAt, &interval.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan break: %w", err)
		}
		intervals = append(intervals, interval)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate breaks: %w", err)
	}

	return intervals, nil
}

// Update implements workbreak.BreakRepository.
func (r *breakRepository) Update(ctx context.Context, interval workbreak.BreakInterval) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE breaks SET
			end_time = $2,
			minutes = $3,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, interval.ID, interval.EndTime, interval.Minutes)
	if err != nil {
		return fmt.Errorf("failed to update break: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workbreak.ErrBreakNotFound
	}

	return nil
}
