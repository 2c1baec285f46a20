package scheduler

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Schedule places every task into the timeline and reports the outcome.
	Schedule(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)

	// FreeWindows reports the usable free spans per working day in a range.
	FreeWindows(ctx context.Context, input FreeWindowsInput) (FreeWindowsOutput, error)

	// Validate runs normalization and validation without placing anything.
	Validate(ctx context.Context, input ScheduleInput) (ValidateOutput, error)
}
