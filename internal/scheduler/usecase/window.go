package usecase

import (
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/pkg/workhours"
)

// window is the span of days in which one task may be placed.
type window struct {
	lower       time.Time // earliest allowed start
	upper       time.Time // working-hours end on the last allowed day
	hasDeadline bool
	deadline    time.Time // the task's own deadline before rollforward
}

// resolveWindow computes the per-task scheduling window.
//
// Lower bound: max(task.startDate, reference), pushed to the next day's
// working-hours start when the time of day is already at or past working-hours
// end, then rolled forward to a working day. Upper bound: the deadline, or
// lower + WindowDays when absent; a deadline on a non-working day extends to
// the next working day rather than rejecting the task. Both rollforwards are
// capped so degenerate preferences terminate.
func (uc *implUseCase) resolveWindow(task model.Task, prefs model.Preferences, ref time.Time) (window, bool) {
	var w window

	lower := ref
	if task.StartDate != nil && task.StartDate.After(lower) {
		lower = *task.StartDate
	}
	if workhours.ClockOf(lower) >= prefs.WorkEnd {
		lower = prefs.WorkStart.At(lower.AddDate(0, 0, 1))
	}

	lower, ok := prefs.WorkingDays.NextWorkingDay(lower, prefs.WorkStart, uc.defaults.RollForwardCap)
	if !ok {
		return w, false
	}
	w.lower = lower

	upper := lower.AddDate(0, 0, uc.defaults.WindowDays)
	if task.Deadline != nil {
		upper = *task.Deadline
		w.hasDeadline = true
		w.deadline = *task.Deadline
	}

	upper, ok = prefs.WorkingDays.NextWorkingDay(upper, prefs.WorkStart, uc.defaults.RollForwardCap)
	if !ok {
		return w, false
	}
	w.upper = prefs.WorkEnd.At(upper)

	return w, true
}
