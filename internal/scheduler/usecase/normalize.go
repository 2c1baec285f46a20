package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/workhours"
)

// taskIDNamespace seeds deterministic IDs for tasks submitted without one,
// so identical inputs always produce identical output.
var taskIDNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// plan is the fully normalized form of a scheduling request. Downstream
// logic never re-checks for absent fields.
type plan struct {
	tasks  []model.Task
	prefs  model.Preferences
	ref    time.Time
	events []model.Event
}

// normalize validates the request and produces a plan. Any error here aborts
// the whole request; nothing is ever half-scheduled.
func (uc *implUseCase) normalize(input scheduler.ScheduleInput) (plan, error) {
	var p plan

	ref, err := uc.resolveReference(input.StartDate)
	if err != nil {
		return p, err
	}
	p.ref = ref

	prefs, err := uc.normalizePreferences(input.Preferences)
	if err != nil {
		return p, err
	}
	p.prefs = prefs

	p.tasks = make([]model.Task, 0, len(input.Tasks))
	for i, t := range input.Tasks {
		task, err := uc.normalizeTask(i, t)
		if err != nil {
			return p, err
		}
		p.tasks = append(p.tasks, task)
	}

	p.events, err = uc.normalizeEvents(input.ExistingEvents)
	if err != nil {
		return p, err
	}

	return p, nil
}

// resolveReference parses the reference date, falling back to the injected
// clock truncated to wall-clock UTC components.
func (uc *implUseCase) resolveReference(startDate string) (time.Time, error) {
	if startDate == "" {
		n := uc.now()
		return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), 0, 0, time.UTC), nil
	}
	ref, err := workhours.ParseDateTime(startDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("startDate: %w: %v", scheduler.ErrInvalidDate, err)
	}
	return ref, nil
}

func (uc *implUseCase) normalizePreferences(input scheduler.PreferencesInput) (model.Preferences, error) {
	var prefs model.Preferences

	startRaw, endRaw := uc.defaults.WorkStart, uc.defaults.WorkEnd
	if input.WorkingHours != nil {
		if input.WorkingHours.Start != "" {
			startRaw = input.WorkingHours.Start
		}
		if input.WorkingHours.End != "" {
			endRaw = input.WorkingHours.End
		}
	}

	var err error
	if prefs.WorkStart, err = workhours.ParseClock(startRaw); err != nil {
		return prefs, fmt.Errorf("workingHours.start: %w: %v", scheduler.ErrInvalidWorkingHour, err)
	}
	if prefs.WorkEnd, err = workhours.ParseClock(endRaw); err != nil {
		return prefs, fmt.Errorf("workingHours.end: %w: %v", scheduler.ErrInvalidWorkingHour, err)
	}

	days := input.WorkingDays
	if days == nil {
		days = uc.defaults.WorkingDays
	}
	if prefs.WorkingDays, err = workhours.ParseWeekdays(days); err != nil {
		return prefs, fmt.Errorf("workingDays: %w: %v", scheduler.ErrInvalidWorkingDay, err)
	}

	prefs.BreakMinutes = uc.defaults.BreakMinutes
	if input.BreakDuration != nil {
		if *input.BreakDuration < 0 {
			return prefs, fmt.Errorf("breakDuration: %w", scheduler.ErrInvalidBreak)
		}
		prefs.BreakMinutes = *input.BreakDuration
	}

	prefs.MaxTasksPerDay = input.MaxTasksPerDay
	prefs.TimeZone = input.TimeZone

	return prefs, nil
}

func (uc *implUseCase) normalizeTask(index int, input scheduler.TaskInput) (model.Task, error) {
	var task model.Task

	if input.Title == "" {
		return task, fmt.Errorf("tasks[%d]: %w", index, scheduler.ErrMissingTitle)
	}
	task.Title = input.Title
	task.Description = input.Description
	task.Dependencies = input.Dependencies

	task.ID = input.ID
	if task.ID == "" {
		seed := fmt.Sprintf("task/%d/%s", index, input.Title)
		task.ID = uuid.NewSHA1(taskIDNamespace, []byte(seed)).String()
	}

	task.DurationMinutes = input.EstimatedDuration
	if task.DurationMinutes == 0 {
		task.DurationMinutes = uc.defaults.TaskMinutes
	}
	if task.DurationMinutes < 0 {
		return task, fmt.Errorf("tasks[%d] (%q): %w", index, input.Title, scheduler.ErrInvalidDuration)
	}

	task.Priority = model.PriorityMedium
	if input.Priority != "" {
		task.Priority = model.Priority(input.Priority)
		if !task.Priority.Valid() {
			return task, fmt.Errorf("tasks[%d] (%q): %w", index, input.Title, scheduler.ErrInvalidPriority)
		}
	}

	if input.Deadline != "" {
		d, err := workhours.ParseDate(input.Deadline)
		if err != nil {
			return task, fmt.Errorf("tasks[%d] (%q) deadline: %w: %v", index, input.Title, scheduler.ErrInvalidDate, err)
		}
		task.Deadline = &d
	}
	if input.StartDate != "" {
		s, err := workhours.ParseDate(input.StartDate)
		if err != nil {
			return task, fmt.Errorf("tasks[%d] (%q) startDate: %w: %v", index, input.Title, scheduler.ErrInvalidDate, err)
		}
		task.StartDate = &s
	}

	return task, nil
}

// normalizeEvents parses the caller-supplied intervals into a fresh slice.
// The caller's slice is never mutated; placed tasks are appended to our copy.
func (uc *implUseCase) normalizeEvents(inputs []scheduler.EventInput) ([]model.Event, error) {
	events := make([]model.Event, 0, len(inputs))
	for i, e := range inputs {
		start, err := workhours.ParseDateTime(e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("existingEvents[%d] startTime: %w: %v", i, scheduler.ErrInvalidEvent, err)
		}
		end, err := workhours.ParseDateTime(e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("existingEvents[%d] endTime: %w: %v", i, scheduler.ErrInvalidEvent, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("existingEvents[%d] (%q): %w: end before start", i, e.Title, scheduler.ErrInvalidEvent)
		}
		events = append(events, model.Event{
			Title:       e.Title,
			Description: e.Description,
			StartTime:   start,
			EndTime:     end,
			IsAllDay:    e.IsAllDay,
		})
	}
	return events, nil
}
