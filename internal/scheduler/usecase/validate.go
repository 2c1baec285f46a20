package usecase

import (
	"context"

	"smart-scheduler/internal/scheduler"
)

// Validate runs normalization and validation without placing anything.
// Callers get the fully defaulted task list back, or the same structured
// error Schedule would have returned.
func (uc *implUseCase) Validate(ctx context.Context, input scheduler.ScheduleInput) (scheduler.ValidateOutput, error) {
	p, err := uc.normalize(input)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Validate: %v", err)
		return scheduler.ValidateOutput{}, err
	}

	return scheduler.ValidateOutput{
		Tasks:         p.tasks,
		Preferences:   p.prefs,
		ReferenceDate: p.ref,
	}, nil
}
