package usecase

import (
	"time"

	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/log"
)

// Defaults are the service-level fallbacks applied during normalization.
type Defaults struct {
	WorkStart            string   // "HH:MM"
	WorkEnd              string   // "HH:MM"
	WorkingDays          []string // weekday names
	BreakMinutes         int
	TaskMinutes          int // duration applied when a task omits one
	WindowDays           int // scheduling horizon for tasks without a deadline
	RollForwardCap       int // hard cap on working-day rollforward scans
	MinFreeWindowMinutes int // free spans shorter than this are not reported
	MaxRangeDays         int // largest free-window query range
}

// withFallbacks fills zero values so a partially populated config still works.
func (d Defaults) withFallbacks() Defaults {
	if d.WorkStart == "" {
		d.WorkStart = "09:00"
	}
	if d.WorkEnd == "" {
		d.WorkEnd = "17:00"
	}
	if len(d.WorkingDays) == 0 {
		d.WorkingDays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	}
	if d.BreakMinutes == 0 {
		d.BreakMinutes = 15
	}
	if d.TaskMinutes == 0 {
		d.TaskMinutes = 60
	}
	if d.WindowDays == 0 {
		d.WindowDays = 30
	}
	if d.RollForwardCap == 0 {
		d.RollForwardCap = 370
	}
	if d.MinFreeWindowMinutes == 0 {
		d.MinFreeWindowMinutes = 15
	}
	if d.MaxRangeDays == 0 {
		d.MaxRangeDays = 90
	}
	return d
}

// implUseCase is the private implementation of scheduler.UseCase.
type implUseCase struct {
	l        log.Logger
	defaults Defaults

	// now is the injected clock. Placement is deterministic given a fixed
	// reference date, so tests inject a frozen clock here.
	now func() time.Time
}

var _ scheduler.UseCase = (*implUseCase)(nil)

// New creates a new scheduler UseCase implementation.
func New(l log.Logger, defaults Defaults, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		defaults: defaults.withFallbacks(),
		now:      now,
	}
}
