package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2026, 3, 16, hour, min, sec, 0, time.UTC)
}

func openRecord() *WorkDayRecord {
	return &WorkDayRecord{
		ID:       "wd-1",
		Workday:  time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		Status:   StatusOpen,
		Approval: ApprovalPending,
	}
}

func TestStart_OnTime(t *testing.T) {
	record := openRecord()

	err := record.Start(at(8, 0, 0), DefaultPolicy())

	require.NoError(t, err)
	assert.Equal(t, StatusStarted, record.Status)
	assert.False(t, record.Delay)
	require.NotNil(t, record.StartTime)
	assert.Equal(t, at(8, 0, 0), *record.StartTime)
}

func TestStart_DelayBoundary(t *testing.T) {
	cases := []struct {
		name      string
		clockIn   time.Time
		wantDelay bool
	}{
		{"one second before cutoff", at(8, 9, 59), false},
		{"exactly at cutoff", at(8, 10, 0), false},
		{"one second after cutoff", at(8, 10, 1), true},
		{"late morning", at(9, 30, 0), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			record := openRecord()
			err := record.Start(c.clockIn, DefaultPolicy())
			require.NoError(t, err)
			assert.Equal(t, c.wantDelay, record.Delay)
		})
	}
}

func TestStart_AlreadyStarted(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 0, 0), DefaultPolicy()))

	err := record.Start(at(8, 5, 0), DefaultPolicy())

	assert.ErrorIs(t, err, ErrDayAlreadyStarted)
}

func TestStart_AlreadyEnded(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 0, 0), DefaultPolicy()))
	require.NoError(t, record.End(at(16, 0, 0), BreakSummary{}, DefaultPolicy()))

	err := record.Start(at(16, 5, 0), DefaultPolicy())

	assert.ErrorIs(t, err, ErrDayAlreadyEnded)
}

func TestTransitions_UnrecognizedStatus(t *testing.T) {
	record := &WorkDayRecord{ID: "wd-x", Status: WorkDayStatus("")}

	err := record.Start(at(8, 0, 0), DefaultPolicy())
	assert.ErrorIs(t, err, ErrDayAlreadyEnded)

	err = record.End(at(16, 0, 0), BreakSummary{}, DefaultPolicy())
	assert.ErrorIs(t, err, ErrDayNotStarted)
	assert.Nil(t, record.EndTime)
}

func TestEnd_NotStarted(t *testing.T) {
	record := openRecord()

	err := record.End(at(16, 0, 0), BreakSummary{}, DefaultPolicy())

	assert.ErrorIs(t, err, ErrDayNotStarted)
}

func TestEnd_AlreadyEnded(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 0, 0), DefaultPolicy()))
	require.NoError(t, record.End(at(16, 0, 0), BreakSummary{}, DefaultPolicy()))

	err := record.End(at(17, 0, 0), BreakSummary{}, DefaultPolicy())

	assert.ErrorIs(t, err, ErrDayAlreadyEnded)
}

func TestEnd_Overtime(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 0, 0), DefaultPolicy()))

	err := record.End(at(17, 0, 0), BreakSummary{}, DefaultPolicy())

	require.NoError(t, err)
	assert.Equal(t, StatusEnded, record.Status)
	assert.Equal(t, 540, record.WorkMinutes)
	assert.True(t, record.Overhours)
	assert.Equal(t, 60, record.OvertimeMinutes)
	assert.Equal(t, 0, record.Deficit)
}

func TestEnd_ShortDayOnTimeStart_NoDeficit(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 0, 0), DefaultPolicy()))

	err := record.End(at(15, 0, 0), BreakSummary{}, DefaultPolicy())

	require.NoError(t, err)
	assert.Equal(t, 420, record.WorkMinutes)
	assert.False(t, record.Overhours)
	assert.Equal(t, 0, record.Deficit)
}

func TestEnd_DelayedShortDay_Deficit(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 20, 0), DefaultPolicy()))
	require.True(t, record.Delay)

	err := record.End(at(15, 50, 0), BreakSummary{}, DefaultPolicy())

	require.NoError(t, err)
	assert.Equal(t, 330, record.WorkMinutes)
	assert.Equal(t, 150, record.Deficit)
	assert.False(t, record.Overhours)
}

func TestEnd_LateClockOutUnderStandardDay_NoOvertime(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 40, 0), DefaultPolicy()))

	err := record.End(at(16, 30, 0), BreakSummary{}, DefaultPolicy())

	require.NoError(t, err)
	assert.Equal(t, 470, record.WorkMinutes)
	assert.False(t, record.Overhours)
	assert.Equal(t, 0, record.OvertimeMinutes)
	assert.Equal(t, 10, record.Deficit)
}

func TestEnd_FoldsClosedBreaks(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 0, 0), DefaultPolicy()))

	err := record.End(at(16, 0, 0), BreakSummary{Count: 2, Minutes: 45}, DefaultPolicy())

	require.NoError(t, err)
	assert.Equal(t, 2, record.BreaksCount)
	assert.Equal(t, 45, record.BreakMinutes)
}

func TestEnd_NoClosedBreaks_TotalsUntouched(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Start(at(8, 0, 0), DefaultPolicy()))

	err := record.End(at(16, 0, 0), BreakSummary{}, DefaultPolicy())

	require.NoError(t, err)
	assert.Equal(t, 0, record.BreaksCount)
	assert.Equal(t, 0, record.BreakMinutes)
}

func TestDecide_Accept(t *testing.T) {
	record := openRecord()

	err := record.Decide(true, false)

	require.NoError(t, err)
	assert.Equal(t, ApprovalAccepted, record.Approval)
}

func TestDecide_Reject(t *testing.T) {
	record := openRecord()

	err := record.Decide(false, true)

	require.NoError(t, err)
	assert.Equal(t, ApprovalRejected, record.Approval)
}

func TestDecide_BothFlags(t *testing.T) {
	record := openRecord()

	err := record.Decide(true, true)

	assert.ErrorIs(t, err, ErrConflictingDecision)
	assert.Equal(t, ApprovalPending, record.Approval)
}

func TestDecide_NoFlags_StaysPending(t *testing.T) {
	record := openRecord()

	err := record.Decide(false, false)

	require.NoError(t, err)
	assert.Equal(t, ApprovalPending, record.Approval)
}

func TestDecide_AlreadyDecided(t *testing.T) {
	record := openRecord()
	require.NoError(t, record.Decide(true, false))

	err := record.Decide(false, true)

	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.Equal(t, ApprovalAccepted, record.Approval)
}
