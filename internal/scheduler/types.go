package scheduler

import (
	"time"

	"smart-scheduler/internal/model"
)

// --- UseCase Inputs ---

// TaskInput is one task as submitted by the caller. Optional fields are
// zero-valued when absent and defaulted during normalization.
type TaskInput struct {
	ID                string
	Title             string
	Description       string
	Priority          string
	EstimatedDuration int // minutes; 0 means absent
	Deadline          string
	StartDate         string
	Dependencies      []string
}

// WorkingHoursInput is the raw "HH:MM" working window.
type WorkingHoursInput struct {
	Start string
	End   string
}

// PreferencesInput is the raw scheduling configuration. Absent fields fall
// back to the service defaults.
type PreferencesInput struct {
	WorkingHours   *WorkingHoursInput
	WorkingDays    []string // nil means default; an empty slice is honored as-is
	BreakDuration  *int
	MaxTasksPerDay int
	TimeZone       string
}

// EventInput is one already-booked interval as submitted by the caller.
type EventInput struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	IsAllDay    bool
}

// ScheduleInput is the full scheduling request.
type ScheduleInput struct {
	Tasks          []TaskInput
	Preferences    PreferencesInput
	StartDate      string // reference date; empty means "now" from the injected clock
	ExistingEvents []EventInput
}

// FreeWindowsInput asks for the free spans between bookings over a date range.
type FreeWindowsInput struct {
	StartDate      string
	EndDate        string
	Preferences    PreferencesInput
	ExistingEvents []EventInput
}

// --- UseCase Outputs ---

// ScheduledTask is one successfully placed task.
type ScheduledTask struct {
	TaskID      string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Priority    model.Priority
	Reasoning   string
}

// UnscheduledTask is a task that exhausted its window without a fit.
type UnscheduledTask struct {
	TaskID string
	Title  string
	Reason string
}

// Summary aggregates one scheduling run.
type Summary struct {
	TotalTasks              int
	ScheduledCount          int
	EstimatedCompletionDate string // "YYYY-MM-DD", empty when nothing scheduled
	WorkloadDistribution    map[string]int
}

// ScheduleOutput is the full result of one scheduling run.
type ScheduleOutput struct {
	Scheduled       []ScheduledTask
	Unscheduled     []UnscheduledTask
	Summary         Summary
	Recommendations []string
}

// FreeWindow is one usable free span inside a working window.
type FreeWindow struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// DayFreeWindows groups a day's free windows.
type DayFreeWindows struct {
	Date    string
	Windows []FreeWindow
}

// FreeWindowsOutput lists free windows per working day in the range.
type FreeWindowsOutput struct {
	Days         []DayFreeWindows
	TotalWindows int
}

// ValidateOutput is the result of normalization without placement.
type ValidateOutput struct {
	Tasks         []model.Task
	Preferences   model.Preferences
	ReferenceDate time.Time
}
