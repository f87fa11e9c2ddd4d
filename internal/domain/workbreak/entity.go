package workbreak

import (
	"time"
)

// BreakInterval is one rest period within a workday. EndTime is nil while
// the break is open; Minutes is fixed once the break closes.
type BreakInterval struct {
	ID              string
	WorkDayRecordID string
	StartTime       time.Time
	EndTime         *time.Time
	Minutes         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Closed reports whether the interval has been ended.
func (b *BreakInterval) Closed() bool {
	return b.EndTime != nil
}

// Close ends an open interval and fixes its duration, whole minutes with
// fractional seconds discarded. A closed interval no longer matches as an
// open break, so closing it again is a not-found.
func (b *BreakInterval) Close(now time.Time) error {
	if b.Closed() {
		return ErrBreakNotFound
	}

	end := now
	b.EndTime = &end
	b.Minutes = minutesBetween(b.StartTime, now)
	return nil
}

// minutesBetween returns the whole minutes between two times of day.
func minutesBetween(from, to time.Time) int {
	fromOfDay := time.Duration(from.Hour())*time.Hour +
		time.Duration(from.Minute())*time.Minute +
		time.Duration(from.Second())*time.Second
	toOfDay := time.Duration(to.Hour())*time.Hour +
		time.Duration(to.Minute())*time.Minute +
		time.Duration(to.Second())*time.Second
	return int((toOfDay - fromOfDay) / time.Minute)
}
