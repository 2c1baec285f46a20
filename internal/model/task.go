package model

import "time"

// Priority of a task. Higher priority sorts earlier among tasks with equal
// deadline standing.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank returns the sort rank of the priority: high < medium < low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return 1
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task is a fully normalized task record: every optional input field has been
// defaulted, so the placement loop never re-checks for absent values.
type Task struct {
	ID              string
	Title           string
	Description     string
	Priority        Priority
	DurationMinutes int
	Deadline        *time.Time // midnight wall clock, nil when absent
	StartDate       *time.Time // midnight wall clock, nil when absent

	// Dependencies are accepted in the schema but not enforced by placement.
	Dependencies []string
}
