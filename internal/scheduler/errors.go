package scheduler

import "errors"

// Validation errors abort the whole request before the placement loop runs.
// Per-task placement failure is not an error; it is reported as data.
var (
	ErrMissingTitle       = errors.New("task title is required")
	ErrInvalidDuration    = errors.New("estimated duration must be a positive number of minutes")
	ErrInvalidPriority    = errors.New("priority must be one of low, medium, high")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidEvent       = errors.New("invalid existing event")
	ErrInvalidWorkingHour = errors.New("invalid working hours")
	ErrInvalidWorkingDay  = errors.New("invalid working day")
	ErrInvalidBreak       = errors.New("break duration must not be negative")
	ErrInvalidRange       = errors.New("invalid date range")
)
