package workday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/worktime-backend-go/internal/domain/workbreak"
	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	"github.com/jackc/pgx/v5"
)

type WorkDayServiceImpl struct {
	workday.WorkDayRepository
	workbreak.BreakRepository
	policy workday.Policy
}

func NewWorkDayService(
	workDayRepository workday.WorkDayRepository,
	breakRepository workbreak.BreakRepository,
	policy workday.Policy,
) *WorkDayServiceImpl {
	return &WorkDayServiceImpl{
		WorkDayRepository: workDayRepository,
		BreakRepository:   breakRepository,
		policy:            policy,
	}
}

// timePtrToString formats a nullable clock time for responses.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("15:04:05")
	return &formatted
}

func mapWorkDayToResponse(record workday.WorkDayRecord) workday.WorkDayResponse {
	return workday.WorkDayResponse{
		ID:         record.ID,
		EmployeeID: record.EmployeeID,
		Workday:    record.Workday.Format("2006-01-02"),
		Status:     string(record.Status),
		StartTime:  timePtrToString(record.StartTime),
		EndTime:    timePtrToString(record.EndTime),

		Delay:           record.Delay,
		Deficit:         record.Deficit,
		Overhours:       record.Overhours,
		OvertimeMinutes: record.OvertimeMinutes,
		WorkMinutes:     record.WorkMinutes,

		Vacation:   record.Vacation,
		SickLeave:  record.SickLeave,
		Delegation: record.Delegation,
		Approval:   string(record.Approval),

		BreaksCount:  record.BreaksCount,
		BreakMinutes: record.BreakMinutes,

		EmployeeName:   record.EmployeeName,
		DepartmentName: record.DepartmentName,
	}
}

func mapWorkDaysToList(records []workday.WorkDayRecord) workday.ListWorkDayResponse {
	responses := make([]workday.WorkDayResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapWorkDayToResponse(record))
	}
	return workday.ListWorkDayResponse{
		TotalCount: len(responses),
		WorkDays:   responses,
	}
}

// Create implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Create(ctx context.Context, req workday.CreateWorkDayRequest) (workday.WorkDayResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.WorkDayResponse{}, err
	}

	day, _ := time.Parse("2006-01-02", req.Workday)

	record := workday.WorkDayRecord{
		EmployeeID: req.EmployeeID,
		Workday:    day,
		Status:     workday.StatusOpen,
		Vacation:   req.Vacation,
		SickLeave:  req.SickLeave,
		Delegation: req.Delegation,
		Approval:   workday.ApprovalPending,
	}

	created, err := s.WorkDayRepository.Create(ctx, record)
	if err != nil {
		return workday.WorkDayResponse{}, fmt.Errorf("failed to create workday record: %w", err)
	}

	return mapWorkDayToResponse(created), nil
}

// StartDay implements workday.WorkDayService.
func (s *WorkDayServiceImpl) StartDay(ctx context.Context, workDayID string, now time.Time) (workday.WorkDayResponse, error) {
	record, err := s.WorkDayRepository.GetByID(ctx, workDayID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.WorkDayResponse{}, workday.ErrRecordNotFound
		}
		return workday.WorkDayResponse{}, fmt.Errorf("failed to get workday record: %w", err)
	}

	if err := record.Start(now, s.policy); err != nil {
		return workday.WorkDayResponse{}, err
	}

	if err := s.WorkDayRepository.Update(ctx, record); err != nil {
		return workday.WorkDayResponse{}, fmt.Errorf("failed to update workday record: %w", err)
	}

	return mapWorkDayToResponse(record), nil
}

// EndDay implements workday.WorkDayService. Closed-break totals are folded
// into the record as part of the end transition; open breaks are ignored.
func (s *WorkDayServiceImpl) EndDay(ctx context.Context, workDayID string, now time.Time) (workday.WorkDayResponse, error) {
	record, err := s.WorkDayRepository.GetByID(ctx, workDayID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.WorkDayResponse{}, workday.ErrRecordNotFound
		}
		return workday.WorkDayResponse{}, fmt.Errorf("failed to get workday record: %w", err)
	}

	intervals, err := s.BreakRepository.GetByWorkDayRecordID(ctx, workDayID)
	if err != nil {
		return workday.WorkDayResponse{}, fmt.Errorf("failed to load breaks: %w", err)
	}

	var breaks workday.BreakSummary
	for _, interval := range intervals {
		if interval.Closed() {
			breaks.Count++
			breaks.Minutes += interval.Minutes
		}
	}

	if err := record.End(now, breaks, s.policy); err != nil {
		return workday.WorkDayResponse{}, err
	}

	if err := s.WorkDayRepository.Update(ctx, record); err != nil {
		return workday.WorkDayResponse{}, fmt.Errorf("failed to update workday record: %w", err)
	}

	return mapWorkDayToResponse(record), nil
}

// Decide implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Decide(ctx context.Context, req workday.DecisionRequest) (workday.WorkDayResponse, error) {
	if err := req.Validate(); err != nil {
		return workday.WorkDayResponse{}, err
	}

	record, err := s.WorkDayRepository.GetByID(ctx, req.WorkDayID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workday.WorkDayResponse{}, workday.ErrRecordNotFound
		}
		return workday.WorkDayResponse{}, fmt.Errorf("failed to get workday record: %w", err)
	}

	if err := record.Decide(req.Accepted, req.Rejected); err != nil {
		return workday.WorkDayResponse{}, err
	}

	if err := s.WorkDayRepository.Update(ctx, record); err != nil {
		return workday.WorkDayResponse{}, fmt.Errorf("failed to update workday record: %w", err)
	}

	return mapWorkDayToResponse(record), nil
}

// ListByEmployee implements workday.WorkDayService.
func (s *WorkDayServiceImpl) ListByEmployee(ctx context.Context, employeeID string, from, to *time.Time) (workday.ListWorkDayResponse, error) {
	return s.ListFiltered(ctx, workday.WorkDayFilter{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
	})
}

// ListFiltered implements workday.WorkDayService.
func (s *WorkDayServiceImpl) ListFiltered(ctx context.Context, filter workday.WorkDayFilter) (workday.ListWorkDayResponse, error) {
	records, err := s.WorkDayRepository.List(ctx, filter)
	if err != nil {
		return workday.ListWorkDayResponse{}, fmt.Errorf("failed to list workday records: %w", err)
	}

	return mapWorkDaysToList(records), nil
}

// ToAcceptByEmployee implements workday.WorkDayService.
func (s *WorkDayServiceImpl) ToAcceptByEmployee(ctx context.Context, employeeID string, from, to *time.Time) (workday.ListWorkDayResponse, error) {
	return s.ListFiltered(ctx, workday.WorkDayFilter{
		EmployeeID:       employeeID,
		From:             from,
		To:               to,
		AwaitingDecision: true,
	})
}

// ToAcceptByDepartment implements workday.WorkDayService.
func (s *WorkDayServiceImpl) ToAcceptByDepartment(ctx context.Context, departmentID string) (workday.ListWorkDayResponse, error) {
	return s.ListFiltered(ctx, workday.WorkDayFilter{
		DepartmentID:     departmentID,
		AwaitingDecision: true,
	})
}

// Decided implements workday.WorkDayService.
func (s *WorkDayServiceImpl) Decided(ctx context.Context, employeeID string, approval workday.ApprovalStatus, from, to *time.Time) (workday.ListWorkDayResponse, error) {
	return s.ListFiltered(ctx, workday.WorkDayFilter{
		EmployeeID: employeeID,
		From:       from,
		To:         to,
		Approval:   &approval,
	})
}

// SummaryByEmployee implements workday.WorkDayService.
func (s *WorkDayServiceImpl) SummaryByEmployee(ctx context.Context, employeeID string, from, to time.Time) (workday.SummaryResponse, error) {
	return s.summarize(ctx, workday.WorkDayFilter{
		EmployeeID: employeeID,
		From:       &from,
		To:         &to,
	}, from, to)
}

// SummaryByDepartment implements workday.WorkDayService.
func (s *WorkDayServiceImpl) SummaryByDepartment(ctx context.Context, departmentID string, from, to time.Time) (workday.SummaryResponse, error) {
	return s.summarize(ctx, workday.WorkDayFilter{
		DepartmentID: departmentID,
		From:         &from,
		To:           &to,
	}, from, to)
}

func (s *WorkDayServiceImpl) summarize(ctx context.Context, filter workday.WorkDayFilter, from, to time.Time) (workday.SummaryResponse, error) {
	records, err := s.WorkDayRepository.List(ctx, filter)
	if err != nil {
		return workday.SummaryResponse{}, fmt.Errorf("failed to list workday records: %w", err)
	}

	summary := workday.Summarize(records, from, to, time.Now())

	return workday.SummaryResponse{
		From:                 summary.From.Format("2006-01-02"),
		To:                   summary.To.Format("2006-01-02"),
		TotalOvertimeCount:   summary.TotalOvertimeCount,
		TotalOvertimeMinutes: summary.TotalOvertimeMinutes,
		TotalDelays:          summary.TotalDelays,
		TotalDeficit:         summary.TotalDeficit,
		TotalUsedVacation:    summary.TotalUsedVacation,
		TotalPlannedVacation: summary.TotalPlannedVacation,
		TotalWorkMinutes:     summary.TotalWorkMinutes,
	}, nil
}
