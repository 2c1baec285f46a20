package usecase

import (
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/workhours"
)

// buildSummary derives the per-run aggregates from the scheduled list.
// estimatedCompletionDate is the latest scheduled start date, empty when
// nothing was placed.
func buildSummary(total int, scheduled []scheduler.ScheduledTask) scheduler.Summary {
	summary := scheduler.Summary{
		TotalTasks:           total,
		ScheduledCount:       len(scheduled),
		WorkloadDistribution: make(map[string]int),
	}

	for _, st := range scheduled {
		date := workhours.FormatDate(st.StartTime)
		summary.WorkloadDistribution[date]++
		if summary.EstimatedCompletionDate == "" || date > summary.EstimatedCompletionDate {
			summary.EstimatedCompletionDate = date
		}
	}

	return summary
}
