package workday

import (
	"time"
)

// Policy holds the attendance thresholds applied at the start and end
// transitions. Cutoffs are time-of-day offsets from midnight in the
// company's single fixed time zone.
type Policy struct {
	DelayCutoff        time.Duration
	OvertimeCutoff     time.Duration
	StandardDayMinutes int
}

// DefaultPolicy returns the standing company policy: delay after 08:10:00,
// overtime eligibility after 16:00:00, 480-minute standard day.
func DefaultPolicy() Policy {
	return Policy{
		DelayCutoff:        8*time.Hour + 10*time.Minute,
		OvertimeCutoff:     16 * time.Hour,
		StandardDayMinutes: 480,
	}
}

// timeOfDay returns t's offset from midnight, second precision.
func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// minutesBetween returns the whole minutes between two times of day,
// fractional seconds discarded.
func minutesBetween(from, to time.Time) int {
	return int((timeOfDay(to) - timeOfDay(from)) / time.Minute)
}

// Start moves an open record to started. Delay is set when the clock-in
// time of day is strictly after the delay cutoff; clocking in at the cutoff
// exactly is on time.
func (w *WorkDayRecord) Start(now time.Time, policy Policy) error {
	switch w.Status {
	case StatusOpen:
	case StatusStarted:
		return ErrDayAlreadyStarted
	default:
		// ended, or a status no transition produces
		return ErrDayAlreadyEnded
	}

	start := now
	w.StartTime = &start
	w.Delay = timeOfDay(now) > policy.DelayCutoff
	w.Status = StatusStarted
	return nil
}

// End moves a started record to ended and derives the work-time facts:
//
//   - WorkMinutes is the whole-minute span from clock-in to clock-out.
//   - Overhours requires both clocking out after the overtime cutoff and
//     exceeding the standard day; its minute value is the excess.
//   - Deficit is recorded only when the record was flagged delayed at start
//     and the day under-ran the standard length. It is never derived for
//     on-time days.
//
// Break totals are folded in only when at least one closed break exists.
func (w *WorkDayRecord) End(now time.Time, breaks BreakSummary, policy Policy) error {
	switch w.Status {
	case StatusStarted:
	case StatusEnded:
		return ErrDayAlreadyEnded
	default:
		// open, or a status with no recorded clock-in
		return ErrDayNotStarted
	}

	end := now
	w.EndTime = &end
	w.WorkMinutes = minutesBetween(*w.StartTime, now)

	if timeOfDay(now) > policy.OvertimeCutoff && w.WorkMinutes > policy.StandardDayMinutes {
		w.Overhours = true
		w.OvertimeMinutes = w.WorkMinutes - policy.StandardDayMinutes
	}

	if w.Delay && w.WorkMinutes < policy.StandardDayMinutes {
		w.Deficit = policy.StandardDayMinutes - w.WorkMinutes
	}

	if breaks.Count > 0 {
		w.BreaksCount = breaks.Count
		w.BreakMinutes = breaks.Minutes
	}

	w.Status = StatusEnded
	return nil
}

// Decide resolves the approval workflow from the two caller-supplied flags.
// Setting both is rejected outright; accepted and rejected are terminal, so
// a second decision fails. Leaving both flags false keeps the record
// pending.
func (w *WorkDayRecord) Decide(accepted, rejected bool) error {
	if accepted && rejected {
		return ErrConflictingDecision
	}
	if w.Approval != ApprovalPending {
		return ErrAlreadyDecided
	}

	switch {
	case accepted:
		w.Approval = ApprovalAccepted
	case rejected:
		w.Approval = ApprovalRejected
	}
	return nil
}
