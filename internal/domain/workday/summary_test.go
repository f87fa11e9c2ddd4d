package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(yearDay int) time.Time {
	return time.Date(2026, 3, yearDay, 0, 0, 0, 0, time.UTC)
}

func summaryFixture() []WorkDayRecord {
	return []WorkDayRecord{
		{Workday: day(2), WorkMinutes: 540, Overhours: true, OvertimeMinutes: 60},
		{Workday: day(3), WorkMinutes: 330, Delay: true, Deficit: 150},
		{Workday: day(4), WorkMinutes: 480},
		{Workday: day(5), Vacation: true},
		{Workday: day(20), Vacation: true},
		{Workday: day(6), WorkMinutes: 490, Delay: true},
	}
}

func TestSummarize_Totals(t *testing.T) {
	records := summaryFixture()
	today := day(10)

	summary := Summarize(records, day(1), day(31), today)

	assert.Equal(t, day(1), summary.From)
	assert.Equal(t, day(31), summary.To)
	assert.Equal(t, 1, summary.TotalOvertimeCount)
	assert.Equal(t, 60, summary.TotalOvertimeMinutes)
	assert.Equal(t, 2, summary.TotalDelays)
	assert.Equal(t, 150, summary.TotalDeficit)
	assert.Equal(t, 1, summary.TotalUsedVacation)
	assert.Equal(t, 1, summary.TotalPlannedVacation)
	assert.Equal(t, int64(1840), summary.TotalWorkMinutes)
}

func TestSummarize_OrderIndependent(t *testing.T) {
	records := summaryFixture()
	reversed := make([]WorkDayRecord, len(records))
	for i, record := range records {
		reversed[len(records)-1-i] = record
	}
	today := day(10)

	assert.Equal(t,
		Summarize(records, day(1), day(31), today),
		Summarize(reversed, day(1), day(31), today),
	)
}

func TestSummarize_VacationTodayCountsAsUsed(t *testing.T) {
	records := []WorkDayRecord{
		{Workday: day(10), Vacation: true},
		{Workday: day(11), Vacation: true},
	}

	summary := Summarize(records, day(1), day(31), day(10))

	assert.Equal(t, 1, summary.TotalUsedVacation)
	assert.Equal(t, 1, summary.TotalPlannedVacation)
}

func TestSummarize_VacationTodayCountsAsUsed_NonUTCZone(t *testing.T) {
	records := []WorkDayRecord{
		{Workday: day(16), Vacation: true},
	}
	// Shortly after local midnight in a zone ahead of UTC; the instant is
	// still the 15th in UTC but the calendar date is the 16th.
	zone := time.FixedZone("UTC+2", 2*60*60)
	today := time.Date(2026, 3, 16, 0, 30, 0, 0, zone)

	summary := Summarize(records, day(1), day(31), today)

	assert.Equal(t, 1, summary.TotalUsedVacation)
	assert.Equal(t, 0, summary.TotalPlannedVacation)
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, day(1), day(31), day(10))

	assert.Zero(t, summary.TotalOvertimeCount)
	assert.Zero(t, summary.TotalDelays)
	assert.Zero(t, summary.TotalDeficit)
	assert.Zero(t, summary.TotalUsedVacation)
	assert.Zero(t, summary.TotalPlannedVacation)
	assert.Zero(t, summary.TotalWorkMinutes)
}
