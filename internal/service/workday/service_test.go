package workday

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/attendly/worktime-backend-go/internal/domain/workbreak"
	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkDayRepo struct {
	records map[string]workday.WorkDayRecord
	nextID  int
}

func newFakeWorkDayRepo() *fakeWorkDayRepo {
	return &fakeWorkDayRepo{records: make(map[string]workday.WorkDayRecord)}
}

func (r *fakeWorkDayRepo) Create(_ context.Context, record workday.WorkDayRecord) (workday.WorkDayRecord, error) {
	r.nextID++
	record.ID = fmt.Sprintf("wd-%d", r.nextID)
	r.records[record.ID] = record
	return record, nil
}

func (r *fakeWorkDayRepo) GetByID(_ context.Context, id string) (workday.WorkDayRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return workday.WorkDayRecord{}, pgx.ErrNoRows
	}
	return record, nil
}

func (r *fakeWorkDayRepo) Update(_ context.Context, record workday.WorkDayRecord) error {
	if _, ok := r.records[record.ID]; !ok {
		return workday.ErrRecordNotFound
	}
	r.records[record.ID] = record
	return nil
}

func (r *fakeWorkDayRepo) List(_ context.Context, filter workday.WorkDayFilter) ([]workday.WorkDayRecord, error) {
	var out []workday.WorkDayRecord
	for _, record := range r.records {
		if filter.EmployeeID != "" && record.EmployeeID != filter.EmployeeID {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

type fakeBreakRepo struct {
	intervals map[string]workbreak.BreakInterval
	nextID    int
}

func newFakeBreakRepo() *fakeBreakRepo {
	return &fakeBreakRepo{intervals: make(map[string]workbreak.BreakInterval)}
}

func (r *fakeBreakRepo) Create(_ context.Context, interval workbreak.BreakInterval) (workbreak.BreakInterval, error) {
	r.nextID++
	interval.ID = fmt.Sprintf("br-%d", r.nextID)
	r.intervals[interval.ID] = interval
	return interval, nil
}

func (r *fakeBreakRepo) GetByID(_ context.Context, id string) (workbreak.BreakInterval, error) {
	interval, ok := r.intervals[id]
	if !ok {
		return workbreak.BreakInterval{}, pgx.ErrNoRows
	}
	return interval, nil
}

func (r *fakeBreakRepo) GetByWorkDayRecordID(_ context.Context, workDayRecordID string) ([]workbreak.BreakInterval, error) {
	var out []workbreak.BreakInterval
	for _, interval := range r.intervals {
		if interval.WorkDayRecordID == workDayRecordID {
			out = append(out, interval)
		}
	}
	return out, nil
}

func (r *fakeBreakRepo) Update(_ context.Context, interval workbreak.BreakInterval) error {
	if _, ok := r.intervals[interval.ID]; !ok {
		return workbreak.ErrBreakNotFound
	}
	r.intervals[interval.ID] = interval
	return nil
}

func clock(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 16, hour, min, sec, 0, time.UTC)
}

func newTestService() (*WorkDayServiceImpl, *fakeWorkDayRepo, *fakeBreakRepo) {
	workDayRepo := newFakeWorkDayRepo()
	breakRepo := newFakeBreakRepo()
	return NewWorkDayService(workDayRepo, breakRepo, workday.DefaultPolicy()), workDayRepo, breakRepo
}

func TestWorkDayService_Create(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()

	result, err := svc.Create(ctx, workday.CreateWorkDayRequest{
		EmployeeID: "emp-1",
		Workday:    "2026-03-16",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "emp-1", result.EmployeeID)
	assert.Equal(t, "2026-03-16", result.Workday)
	assert.Equal(t, string(workday.StatusOpen), result.Status)
	assert.Equal(t, string(workday.ApprovalPending), result.Approval)

	stored, err := repo.GetByID(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, workday.StatusOpen, stored.Status)
}

func TestWorkDayService_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.Create(ctx, workday.CreateWorkDayRequest{
		EmployeeID: "",
		Workday:    "not-a-date",
	})

	assert.Error(t, err)
}

func TestWorkDayService_StartDay(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	created, err := svc.Create(ctx, workday.CreateWorkDayRequest{EmployeeID: "emp-1", Workday: "2026-03-16"})
	require.NoError(t, err)

	result, err := svc.StartDay(ctx, created.ID, clock(8, 5, 0))

	require.NoError(t, err)
	assert.Equal(t, string(workday.StatusStarted), result.Status)
	assert.False(t, result.Delay)
	require.NotNil(t, result.StartTime)
	assert.Equal(t, "08:05:00", *result.StartTime)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, workday.StatusStarted, stored.Status)
}

func TestWorkDayService_StartDay_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	_, err := svc.StartDay(ctx, "missing", clock(8, 0, 0))

	assert.ErrorIs(t, err, workday.ErrRecordNotFound)
}

func TestWorkDayService_StartDay_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	created, err := svc.Create(ctx, workday.CreateWorkDayRequest{EmployeeID: "emp-1", Workday: "2026-03-16"})
	require.NoError(t, err)

	_, err = svc.StartDay(ctx, created.ID, clock(8, 0, 0))
	require.NoError(t, err)
	_, err = svc.StartDay(ctx, created.ID, clock(8, 30, 0))

	assert.ErrorIs(t, err, workday.ErrDayAlreadyStarted)
}

func TestWorkDayService_EndDay_FoldsClosedBreaksOnly(t *testing.T) {
	ctx := context.Background()
	svc, _, breakRepo := newTestService()
	created, err := svc.Create(ctx, workday.CreateWorkDayRequest{EmployeeID: "emp-1", Workday: "2026-03-16"})
	require.NoError(t, err)
	_, err = svc.StartDay(ctx, created.ID, clock(8, 0, 0))
	require.NoError(t, err)

	closedEnd := clock(12, 30, 0)
	_, err = breakRepo.Create(ctx, workbreak.BreakInterval{
		WorkDayRecordID: created.ID,
		StartTime:       clock(12, 0, 0),
		EndTime:         &closedEnd,
		Minutes:         30,
	})
	require.NoError(t, err)
	_, err = breakRepo.Create(ctx, workbreak.BreakInterval{
		WorkDayRecordID: created.ID,
		StartTime:       clock(15, 0, 0),
	})
	require.NoError(t, err)

	result, err := svc.EndDay(ctx, created.ID, clock(17, 0, 0))

	require.NoError(t, err)
	assert.Equal(t, string(workday.StatusEnded), result.Status)
	assert.Equal(t, 540, result.WorkMinutes)
	assert.True(t, result.Overhours)
	assert.Equal(t, 60, result.OvertimeMinutes)
	assert.Equal(t, 1, result.BreaksCount)
	assert.Equal(t, 30, result.BreakMinutes)
}

func TestWorkDayService_EndDay_NotStarted(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	created, err := svc.Create(ctx, workday.CreateWorkDayRequest{EmployeeID: "emp-1", Workday: "2026-03-16"})
	require.NoError(t, err)

	_, err = svc.EndDay(ctx, created.ID, clock(16, 0, 0))

	assert.ErrorIs(t, err, workday.ErrDayNotStarted)
}

func TestWorkDayService_Decide(t *testing.T) {
	ctx := context.Background()
	svc, repo, _ := newTestService()
	created, err := svc.Create(ctx, workday.CreateWorkDayRequest{
		EmployeeID: "emp-1",
		Workday:    "2026-03-20",
		Vacation:   true,
	})
	require.NoError(t, err)

	result, err := svc.Decide(ctx, workday.DecisionRequest{WorkDayID: created.ID, Accepted: true})

	require.NoError(t, err)
	assert.Equal(t, string(workday.ApprovalAccepted), result.Approval)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, workday.ApprovalAccepted, stored.Approval)
}

func TestWorkDayService_Decide_Twice(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	created, err := svc.Create(ctx, workday.CreateWorkDayRequest{
		EmployeeID: "emp-1",
		Workday:    "2026-03-20",
		Vacation:   true,
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, workday.DecisionRequest{WorkDayID: created.ID, Accepted: true})
	require.NoError(t, err)
	_, err = svc.Decide(ctx, workday.DecisionRequest{WorkDayID: created.ID, Rejected: true})

	assert.ErrorIs(t, err, workday.ErrAlreadyDecided)
}

func TestWorkDayService_Decide_ConflictingFlags(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	created, err := svc.Create(ctx, workday.CreateWorkDayRequest{
		EmployeeID: "emp-1",
		Workday:    "2026-03-20",
		Vacation:   true,
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, workday.DecisionRequest{WorkDayID: created.ID, Accepted: true, Rejected: true})

	assert.ErrorIs(t, err, workday.ErrConflictingDecision)
}

func TestWorkDayService_ListByEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()
	for _, day := range []string{"2026-03-16", "2026-03-17"} {
		_, err := svc.Create(ctx, workday.CreateWorkDayRequest{EmployeeID: "emp-1", Workday: day})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, workday.CreateWorkDayRequest{EmployeeID: "emp-2", Workday: "2026-03-16"})
	require.NoError(t, err)

	result, err := svc.ListByEmployee(ctx, "emp-1", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalCount)
	assert.Len(t, result.WorkDays, 2)
}
