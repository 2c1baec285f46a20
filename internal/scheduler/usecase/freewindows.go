package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/workhours"
)

// FreeWindows reports the free spans between occupied intervals inside each
// working day of the range. Spans shorter than the configured minimum are not
// usable and are dropped.
func (uc *implUseCase) FreeWindows(ctx context.Context, input scheduler.FreeWindowsInput) (scheduler.FreeWindowsOutput, error) {
	var out scheduler.FreeWindowsOutput

	start, err := workhours.ParseDate(input.StartDate)
	if err != nil {
		return out, fmt.Errorf("startDate: %w: %v", scheduler.ErrInvalidDate, err)
	}
	end, err := workhours.ParseDate(input.EndDate)
	if err != nil {
		return out, fmt.Errorf("endDate: %w: %v", scheduler.ErrInvalidDate, err)
	}
	if end.Before(start) {
		return out, fmt.Errorf("%w: endDate before startDate", scheduler.ErrInvalidRange)
	}
	if int(end.Sub(start).Hours()/24) > uc.defaults.MaxRangeDays {
		return out, fmt.Errorf("%w: range exceeds %d days", scheduler.ErrInvalidRange, uc.defaults.MaxRangeDays)
	}

	prefs, err := uc.normalizePreferences(input.Preferences)
	if err != nil {
		return out, err
	}
	events, err := uc.normalizeEvents(input.ExistingEvents)
	if err != nil {
		return out, err
	}

	minSpan := time.Duration(uc.defaults.MinFreeWindowMinutes) * time.Minute
	out.Days = []scheduler.DayFreeWindows{}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !prefs.WorkingDays.Contains(day) {
			continue
		}

		windows := freeWindowsInDay(
			dayEvents(events, day),
			prefs.WorkStart.At(day),
			prefs.WorkEnd.At(day),
			minSpan,
		)
		out.Days = append(out.Days, scheduler.DayFreeWindows{
			Date:    workhours.FormatDate(day),
			Windows: windows,
		})
		out.TotalWindows += len(windows)
	}

	uc.l.Infof(ctx, "uc.FreeWindows: %d windows across %d working days", out.TotalWindows, len(out.Days))
	return out, nil
}

// freeWindowsInDay walks the day's sorted intervals and collects the free
// spans between them, clamped to the working window.
func freeWindowsInDay(events []model.Event, dayStart, dayEnd time.Time, minSpan time.Duration) []scheduler.FreeWindow {
	windows := []scheduler.FreeWindow{}
	cursor := dayStart

	appendSpan := func(from, to time.Time) {
		if span := to.Sub(from); span >= minSpan {
			windows = append(windows, scheduler.FreeWindow{
				Start:           from,
				End:             to,
				DurationMinutes: int(span / time.Minute),
			})
		}
	}

	for _, ev := range events {
		gapEnd := ev.StartTime
		if gapEnd.After(dayEnd) {
			gapEnd = dayEnd
		}
		if gapEnd.After(cursor) {
			appendSpan(cursor, gapEnd)
		}
		if ev.EndTime.After(cursor) {
			cursor = ev.EndTime
		}
	}
	if dayEnd.After(cursor) {
		appendSpan(cursor, dayEnd)
	}

	return windows
}
