package usecase

import (
	"context"
	"sort"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
)

// Schedule validates the request, orders the tasks, and places each one into
// the first fitting slot of its window. Every placed task immediately joins
// the occupied timeline so later tasks treat it as a conflict. A task that
// cannot be placed is reported, never raised as an error.
func (uc *implUseCase) Schedule(ctx context.Context, input scheduler.ScheduleInput) (scheduler.ScheduleOutput, error) {
	p, err := uc.normalize(input)
	if err != nil {
		uc.l.Warnf(ctx, "uc.Schedule: validation failed: %v", err)
		return scheduler.ScheduleOutput{}, err
	}

	ordered := orderTasks(p.tasks)

	// Work on our own copy of the occupied set; the caller's events stay
	// untouched and concurrent calls share nothing.
	timeline := make([]model.Event, len(p.events))
	copy(timeline, p.events)

	out := scheduler.ScheduleOutput{
		Scheduled:   []scheduler.ScheduledTask{},
		Unscheduled: []scheduler.UnscheduledTask{},
	}

	for _, task := range ordered {
		pl, ok, reason := uc.placeTask(task, p.prefs, p.ref, timeline)
		if !ok {
			out.Unscheduled = append(out.Unscheduled, scheduler.UnscheduledTask{
				TaskID: task.ID,
				Title:  task.Title,
				Reason: reason,
			})
			continue
		}

		timeline = append(timeline, model.Event{
			Title:       task.Title,
			Description: task.Description,
			StartTime:   pl.start,
			EndTime:     pl.end,
		})
		out.Scheduled = append(out.Scheduled, scheduler.ScheduledTask{
			TaskID:      task.ID,
			Title:       task.Title,
			Description: task.Description,
			StartTime:   pl.start,
			EndTime:     pl.end,
			Priority:    task.Priority,
			Reasoning:   pl.reasoning,
		})
	}

	out.Summary = buildSummary(len(p.tasks), out.Scheduled)
	out.Recommendations = uc.recommend(out, p.prefs)

	uc.l.Infof(ctx, "uc.Schedule: placed %d/%d tasks", len(out.Scheduled), len(p.tasks))
	return out, nil
}

// orderTasks returns a sorted copy: tasks with a deadline first, earlier
// deadline first, then priority. The sort is stable so equal keys keep their
// submission order.
func orderTasks(tasks []model.Task) []model.Task {
	ordered := make([]model.Task, len(tasks))
	copy(ordered, tasks)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		switch {
		case a.Deadline != nil && b.Deadline == nil:
			return true
		case a.Deadline == nil && b.Deadline != nil:
			return false
		case a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline):
			return a.Deadline.Before(*b.Deadline)
		}
		return a.Priority.Rank() < b.Priority.Rank()
	})

	return ordered
}
