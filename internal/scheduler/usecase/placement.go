package usecase

import (
	"fmt"
	"sort"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/pkg/workhours"
)

// placement is one successfully chosen slot.
type placement struct {
	start     time.Time
	end       time.Time
	reasoning string
}

// placeTask scans the task's window day by day and returns the first fitting
// slot. When no day fits, ok is false and reason explains which bound was
// exhausted.
func (uc *implUseCase) placeTask(task model.Task, prefs model.Preferences, ref time.Time, timeline []model.Event) (placement, bool, string) {
	win, ok := uc.resolveWindow(task, prefs, ref)
	if !ok {
		return placement{}, false, "No working days are available with the current preferences"
	}

	duration := time.Duration(task.DurationMinutes) * time.Minute
	buffer := time.Duration(prefs.BreakMinutes) * time.Minute

	lastDay := workhours.StartOfDay(win.upper)
	for day := workhours.StartOfDay(win.lower); !day.After(lastDay); day = day.AddDate(0, 0, 1) {
		if !prefs.WorkingDays.Contains(day) {
			continue
		}

		cursor := prefs.WorkStart.At(day)
		// On the first day of the window the cursor must not reach back
		// before the resolved earliest start.
		if workhours.SameDay(day, win.lower) && win.lower.After(cursor) {
			cursor = win.lower
		}
		dayEnd := prefs.WorkEnd.At(day)

		if pl, ok := fitInDay(dayEvents(timeline, day), cursor, dayEnd, duration, buffer); ok {
			return pl, true, ""
		}
	}

	if win.hasDeadline {
		return placement{}, false, fmt.Sprintf("No available time slot before the deadline (%s)", workhours.FormatDate(win.deadline))
	}
	return placement{}, false, fmt.Sprintf("No available time slot within the next %d days", uc.defaults.WindowDays)
}

// fitInDay finds the first fitting slot inside one working day. First-fit:
// the earliest gap of at least duration wins; exact equality fits. The buffer
// is applied on both sides of every occupied interval.
func fitInDay(events []model.Event, cursor, dayEnd time.Time, duration, buffer time.Duration) (placement, bool) {
	if len(events) == 0 {
		if !cursor.Add(duration).After(dayEnd) {
			return placement{
				start:     cursor,
				end:       cursor.Add(duration),
				reasoning: "Placed at the start of the working day",
			}, true
		}
		return placement{}, false
	}

	for _, ev := range events {
		gapEnd := ev.StartTime.Add(-buffer)
		if gapEnd.After(dayEnd) {
			gapEnd = dayEnd
		}
		if gapEnd.Sub(cursor) >= duration {
			return placement{
				start:     cursor,
				end:       cursor.Add(duration),
				reasoning: fmt.Sprintf("Placed in the free gap before %q", ev.Title),
			}, true
		}
		if next := ev.EndTime.Add(buffer); next.After(cursor) {
			cursor = next
		}
	}

	if dayEnd.Sub(cursor) >= duration {
		return placement{
			start:     cursor,
			end:       cursor.Add(duration),
			reasoning: "Placed after the last event of the day",
		}, true
	}
	return placement{}, false
}

// dayEvents returns the timeline's intervals on the given day, sorted by
// start time. Always a fresh slice; the timeline itself is never reordered.
func dayEvents(timeline []model.Event, day time.Time) []model.Event {
	var events []model.Event
	for _, ev := range timeline {
		if ev.OnDay(day) {
			events = append(events, ev)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].StartTime.Before(events[j].StartTime)
	})
	return events
}
