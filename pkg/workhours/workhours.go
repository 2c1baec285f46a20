package workhours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// All arithmetic in this package is naive wall-clock: datetime strings are
// parsed into UTC time.Time values regardless of any offset in the input, and
// rendered back with a ".000Z" suffix. The caller's timeZone preference is
// metadata only.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05.000Z"

	// MinutesPerDay bounds a Clock value.
	MinutesPerDay = 24 * 60
)

// Clock is a time of day expressed as minutes since midnight.
type Clock int

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q: want HH:MM", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in clock time %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in clock time %q", s)
	}

	return Clock(hour*60 + minute), nil
}

// String renders the clock back as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// At returns the given day's date at this clock time.
func (c Clock) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), int(c)/60, int(c)%60, 0, 0, time.UTC)
}

// ClockOf returns the time-of-day of t as a Clock.
func ClockOf(t time.Time) Clock {
	return Clock(t.Hour()*60 + t.Minute())
}

// ParseDate parses a "YYYY-MM-DD" date string to midnight wall clock.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// dateTimeLayouts are accepted input forms, tried in order. Offsets are
// stripped before parsing so "2024-05-01T09:00:00+07:00" and
// "2024-05-01T09:00:00Z" resolve to the same wall-clock instant.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// ParseDateTime parses an ISO 8601 datetime string as naive wall clock.
func ParseDateTime(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	raw = stripOffset(raw)

	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", s)
}

// stripOffset removes a trailing Z or ±HH:MM zone designator.
func stripOffset(s string) string {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return s[:len(s)-1]
	}
	// Offsets only appear after the time part, past the date's own dashes.
	if len(s) > 10 {
		for _, sep := range []string{"+", "-"} {
			if idx := strings.LastIndex(s[10:], sep); idx >= 0 {
				return s[:10+idx]
			}
		}
	}
	return s
}

// FormatDate renders t's date as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateTime renders t with millisecond precision and a Z suffix.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// StartOfDay returns midnight at the start of t's day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// weekdayNames maps lowercase day names to time.Weekday.
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DaySet is the set of weekdays on which work may be scheduled.
type DaySet map[time.Weekday]bool

// ParseWeekdays builds a DaySet from day names (case-insensitive).
func ParseWeekdays(names []string) (DaySet, error) {
	set := make(DaySet, len(names))
	for _, name := range names {
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		set[wd] = true
	}
	return set, nil
}

// Contains reports whether t's weekday is a working day.
func (d DaySet) Contains(t time.Time) bool {
	return d[t.Weekday()]
}

// NextWorkingDay rolls t forward day by day until its weekday is in the set,
// resetting the time of day to the given clock on each step. The cap bounds
// the scan so an empty set terminates; ok is false when the cap is hit.
func (d DaySet) NextWorkingDay(t time.Time, at Clock, cap int) (next time.Time, ok bool) {
	for i := 0; i < cap; i++ {
		if d.Contains(t) {
			return t, true
		}
		t = at.At(t.AddDate(0, 0, 1))
	}
	return t, false
}
