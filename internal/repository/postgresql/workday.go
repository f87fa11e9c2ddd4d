package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	"github.com/attendly/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type workDayRepository struct {
	db *database.DB
}

func NewWorkDayRepository(db *database.DB) workday.WorkDayRepository {
	return &workDayRepository{db: db}
}

const workDayColumns = `
	w.id, w.employee_id, w.workday, w.status,
	w.start_time, w.end_time,
	w.delay, w.deficit, w.overhours, w.overtime_minutes, w.work_minutes,
	w.vacation, w.sick_leave, w.delegation, w.approval,
	w.breaks_count, w.break_minutes,
	w.created_at, w.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	d.name AS department_name
`

const workDayJoins = `
	FROM workdays w
	JOIN employees e ON e.id = w.employee_id
	LEFT JOIN departments d ON d.id = e.department_id
`

func scanWorkDay(row interface{ Scan(dest ...any) error }) (workday.WorkDayRecord, error) {
	var record workday.WorkDayRecord
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Workday, &record.Status,
		&record.StartTime, &record.EndTime,
		&record.Delay, &record.Deficit, &record.Overhours, &record.OvertimeMinutes, &record.WorkMinutes,
		&record.Vacation, &record.SickLeave, &record.Delegation, &record.Approval,
		&record.BreaksCount, &record.BreakMinutes,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName, &record.DepartmentName,
	)
	return record, err
}

// Create implements workday.WorkDayRepository.
func (r *workDayRepository) Create(ctx context.Context, record workday.WorkDayRecord) (workday.WorkDayRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO workdays (
			id, employee_id, workday, status,
			vacation, sick_leave, delegation, approval
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Workday,
		record.Status,
		record.Vacation,
		record.SickLeave,
		record.Delegation,
		record.Approval,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		return workday.WorkDayRecord{}, fmt.Errorf("failed to create workday record: %w", err)
	}

	return record, nil
}

// GetByID implements workday.WorkDayRepository.
func (r *workDayRepository) GetByID(ctx context.Context, id string) (workday.WorkDayRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workDayColumns + workDayJoins + `WHERE w.id = $1`

	record, err := scanWorkDay(q.QueryRow(ctx, query, id))
	if err != nil {
		return workday.WorkDayRecord{}, fmt.Errorf("failed to get workday record: %w", err)
	}

	return record, nil
}

// Update implements workday.WorkDayRepository. All mutable fields are
// written in one statement.
func (r *workDayRepository) Update(ctx context.Context, record workday.WorkDayRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workdays SET
			status = $2,
			start_time = $3,
			end_time = $4,
			delay = $5,
			deficit = $6,
			overhours = $7,
			overtime_minutes = $8,
			work_minutes = $9,
			approval = $10,
			breaks_count = $11,
			break_minutes = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.Status,
		record.StartTime,
		record.EndTime,
		record.Delay,
		record.Deficit,
		record.Overhours,
		record.OvertimeMinutes,
		record.WorkMinutes,
		record.Approval,
		record.BreaksCount,
		record.BreakMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update workday record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workday.ErrRecordNotFound
	}

	return nil
}

// List implements workday.WorkDayRepository.
func (r *workDayRepository) List(ctx context.Context, filter workday.WorkDayFilter) ([]workday.WorkDayRecord, error) {
	q := GetQuerier(ctx, r.db)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + workDayColumns + workDayJoins + `WHERE 1=1`)

	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.EmployeeID != "" {
		sb.WriteString(` AND w.employee_id = ` + arg(filter.EmployeeID))
	}
	if filter.DepartmentID != "" {
		sb.WriteString(` AND e.department_id = ` + arg(filter.DepartmentID))
	}
	if filter.From != nil {
		sb.WriteString(` AND w.workday >= ` + arg(*filter.From))
	}
	if filter.To != nil {
		sb.WriteString(` AND w.workday <= ` + arg(*filter.To))
	}
	if filter.Overhours {
		sb.WriteString(` AND w.overhours = TRUE`)
	}
	if filter.Delay {
		sb.WriteString(` AND w.delay = TRUE`)
	}
	if filter.Vacation {
		sb.WriteString(` AND w.vacation = TRUE`)
	}
	if filter.SickLeave {
		sb.WriteString(` AND w.sick_leave = TRUE`)
	}
	if filter.Delegation {
		sb.WriteString(` AND w.delegation = TRUE`)
	}
	if filter.DeficitOnly {
		sb.WriteString(` AND w.deficit > 0`)
	}
	if filter.AwaitingDecision {
		sb.WriteString(` AND (w.vacation = TRUE OR w.sick_leave = TRUE OR w.delegation = TRUE)`)
		sb.WriteString(` AND w.approval = 'pending'`)
	}
	if filter.Approval != nil {
		sb.WriteString(` AND w.approval = ` + arg(string(*filter.Approval)))
	}

	sb.WriteString(` ORDER BY w.workday ASC`)

	rows, err := q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workday records: %w", err)
	}
	defer rows.Close()

	var records []workday.WorkDayRecord
	for rows.Next() {
		record, err := scanWorkDay(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workday record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workday records: %w", err)
	}

	return records, nil
}
