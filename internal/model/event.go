package model

import "time"

// Event is an occupied interval on the timeline: either an existing calendar
// booking or a task placed earlier in the same scheduling run.
type Event struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	IsAllDay    bool
}

// OnDay reports whether the event belongs to the given calendar day
// (matched by its start time's date).
func (e Event) OnDay(day time.Time) bool {
	return e.StartTime.Year() == day.Year() &&
		e.StartTime.Month() == day.Month() &&
		e.StartTime.Day() == day.Day()
}
