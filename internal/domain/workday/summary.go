package workday

import (
	"time"
)

// PeriodSummary is an aggregated, non-persisted view over a set of records
// for a date range. From and To echo the query bounds; the aggregation
// itself does not filter by them.
type PeriodSummary struct {
	From time.Time
	To   time.Time

	TotalOvertimeCount   int
	TotalOvertimeMinutes int
	TotalDelays          int
	TotalDeficit         int
	TotalUsedVacation    int
	TotalPlannedVacation int
	TotalWorkMinutes     int64
}

// calendarDate normalizes t to its calendar date in t's own zone, so dates
// compare by day regardless of clock time or offset.
func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Summarize folds records into a period summary. The fold is order
// independent, so callers may hand in records in any order. Vacation days
// strictly after today count as planned; a vacation on today's date counts
// as already used. today is the evaluation date, not a range bound.
func Summarize(records []WorkDayRecord, from, to time.Time, today time.Time) PeriodSummary {
	summary := PeriodSummary{From: from, To: to}
	day := calendarDate(today)

	for _, record := range records {
		if record.Overhours {
			summary.TotalOvertimeCount++
			summary.TotalOvertimeMinutes += record.OvertimeMinutes
		}
		if record.Delay {
			summary.TotalDelays++
			summary.TotalDeficit += record.Deficit
		}
		if record.Vacation {
			if calendarDate(record.Workday).After(day) {
				summary.TotalPlannedVacation++
			} else {
				summary.TotalUsedVacation++
			}
		}
		summary.TotalWorkMinutes += int64(record.WorkMinutes)
	}

	return summary
}
