package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/attendly/worktime-backend-go/internal/domain/workbreak"
	"github.com/attendly/worktime-backend-go/internal/domain/workday"
	"github.com/attendly/worktime-backend-go/internal/pkg/database"
	"github.com/attendly/worktime-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
)

// testDatabase connects once per run; tests are skipped when no test
// database is configured.
func testDatabase(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
	})
	return testDB
}

func truncateTables(t *testing.T, ctx context.Context, db *database.DB) {
	for _, table := range []string{"breaks", "workdays", "addresses", "employees", "departments"} {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB) string {
	id := uuid.NewString()
	login := fmt.Sprintf("test-%d", time.Now().UnixNano())
	_, err := db.Exec(ctx, `
		INSERT INTO employees (id, first_name, last_name, email, login, password_hash, role)
		VALUES ($1, 'Test', 'Employee', $2, $3, 'x', 'employee')
	`, id, login+"@example.com", login)
	require.NoError(t, err)
	return id
}

func createTestRecord(t *testing.T, ctx context.Context, repo workday.WorkDayRepository, employeeID string, day time.Time) workday.WorkDayRecord {
	record, err := repo.Create(ctx, workday.WorkDayRecord{
		EmployeeID: employeeID,
		Workday:    day,
		Status:     workday.StatusOpen,
		Approval:   workday.ApprovalPending,
	})
	require.NoError(t, err)
	return record
}

func TestWorkDayRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db)
	repo := postgresql.NewWorkDayRepository(db)

	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	created := createTestRecord(t, ctx, repo, employeeID, day)
	require.NotEmpty(t, created.ID)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, employeeID, fetched.EmployeeID)
	assert.Equal(t, workday.StatusOpen, fetched.Status)
	assert.Equal(t, workday.ApprovalPending, fetched.Approval)
	require.NotNil(t, fetched.EmployeeName)
	assert.Equal(t, "Test Employee", *fetched.EmployeeName)
}

func TestWorkDayRepository_UpdateLifecycleFields(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db)
	repo := postgresql.NewWorkDayRepository(db)

	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	record := createTestRecord(t, ctx, repo, employeeID, day)

	require.NoError(t, record.Start(day.Add(8*time.Hour+20*time.Minute), workday.DefaultPolicy()))
	require.NoError(t, record.End(day.Add(15*time.Hour+50*time.Minute), workday.BreakSummary{}, workday.DefaultPolicy()))
	require.NoError(t, repo.Update(ctx, record))

	fetched, err := repo.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, workday.StatusEnded, fetched.Status)
	assert.True(t, fetched.Delay)
	assert.Equal(t, 330, fetched.WorkMinutes)
	assert.Equal(t, 150, fetched.Deficit)
}

func TestWorkDayRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)
	repo := postgresql.NewWorkDayRepository(db)

	err := repo.Update(ctx, workday.WorkDayRecord{ID: uuid.NewString(), Status: workday.StatusOpen, Approval: workday.ApprovalPending})

	assert.ErrorIs(t, err, workday.ErrRecordNotFound)
}

func TestWorkDayRepository_ListFilters(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db)
	repo := postgresql.NewWorkDayRepository(db)

	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	delayed := createTestRecord(t, ctx, repo, employeeID, day)
	require.NoError(t, delayed.Start(day.Add(9*time.Hour), workday.DefaultPolicy()))
	require.NoError(t, repo.Update(ctx, delayed))

	vacation, err := repo.Create(ctx, workday.WorkDayRecord{
		EmployeeID: employeeID,
		Workday:    day.AddDate(0, 0, 1),
		Status:     workday.StatusOpen,
		Vacation:   true,
		Approval:   workday.ApprovalPending,
	})
	require.NoError(t, err)

	delays, err := repo.List(ctx, workday.WorkDayFilter{EmployeeID: employeeID, Delay: true})
	require.NoError(t, err)
	require.Len(t, delays, 1)
	assert.Equal(t, delayed.ID, delays[0].ID)

	pending, err := repo.List(ctx, workday.WorkDayFilter{EmployeeID: employeeID, AwaitingDecision: true})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, vacation.ID, pending[0].ID)

	all, err := repo.List(ctx, workday.WorkDayFilter{EmployeeID: employeeID})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Workday.Before(all[1].Workday))
}

func TestBreakRepository_Roundtrip(t *testing.T) {
	ctx := context.Background()
	db := testDatabase(t)
	truncateTables(t, ctx, db)
	employeeID := createTestEmployee(t, ctx, db)
	workDayRepo := postgresql.NewWorkDayRepository(db)
	breakRepo := postgresql.NewBreakRepository(db)

	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	record := createTestRecord(t, ctx, workDayRepo, employeeID, day)

	created, err := breakRepo.Create(ctx, workbreak.BreakInterval{
		WorkDayRecordID: record.ID,
		StartTime:       day.Add(12 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	require.NoError(t, created.Close(day.Add(12*time.Hour+30*time.Minute)))
	require.NoError(t, breakRepo.Update(ctx, created))

	intervals, err := breakRepo.GetByWorkDayRecordID(ctx, record.ID)
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	assert.True(t, intervals[0].Closed())
	assert.Equal(t, 30, intervals[0].Minutes)
}
