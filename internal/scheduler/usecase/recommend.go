package usecase

import (
	"fmt"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
)

// recommend derives advisory strings from a finished run. Purely heuristic;
// callers display them verbatim.
func (uc *implUseCase) recommend(out scheduler.ScheduleOutput, prefs model.Preferences) []string {
	recs := []string{}

	if n := len(out.Unscheduled); n > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d task(s) could not be scheduled — consider extending working hours, adding working days, or relaxing deadlines", n))
	} else if out.Summary.TotalTasks > 0 {
		recs = append(recs, "All tasks were scheduled successfully")
	}

	if prefs.MaxTasksPerDay > 0 {
		overloaded := 0
		for _, count := range out.Summary.WorkloadDistribution {
			if count > prefs.MaxTasksPerDay {
				overloaded++
			}
		}
		if overloaded > 0 {
			recs = append(recs, fmt.Sprintf(
				"%d day(s) exceed your preferred maximum of %d tasks per day", overloaded, prefs.MaxTasksPerDay))
		}
	}

	if prefs.BreakMinutes == 0 && out.Summary.ScheduledCount > 1 {
		recs = append(recs, "No break buffer is configured — back-to-back tasks leave no recovery time")
	}

	return recs
}
