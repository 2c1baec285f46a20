package model

import "smart-scheduler/pkg/workhours"

// Preferences is the normalized scheduling configuration for one run.
type Preferences struct {
	WorkStart   workhours.Clock
	WorkEnd     workhours.Clock
	WorkingDays workhours.DaySet

	// BreakMinutes is the buffer enforced on both sides of every placed
	// interval relative to its neighbors.
	BreakMinutes int

	// MaxTasksPerDay is carried as configuration but not enforced as a
	// hard cap by placement.
	MaxTasksPerDay int

	// TimeZone is metadata only; all arithmetic is naive wall clock.
	TimeZone string
}

// Environment names used by the HTTP layer.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
