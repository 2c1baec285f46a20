package http

import (
	"errors"
	"sort"
	"time"

	"smart-scheduler/internal/model"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/workhours"
)

// --- Request DTOs ---

type taskReq struct {
	ID                string   `json:"id"`
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Priority          string   `json:"priority"`
	EstimatedDuration int      `json:"estimatedDuration"`
	Deadline          string   `json:"deadline"`
	StartDate         string   `json:"startDate"`
	Dependencies      []string `json:"dependencies"`
}

type workingHoursReq struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type preferencesReq struct {
	WorkingHours   *workingHoursReq `json:"workingHours"`
	WorkingDays    []string         `json:"workingDays"`
	BreakDuration  *int             `json:"breakDuration"`
	MaxTasksPerDay int              `json:"maxTasksPerDay"`
	TimeZone       string           `json:"timeZone"`
}

type eventReq struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	IsAllDay    bool   `json:"isAllDay"`
}

type scheduleReq struct {
	Tasks          []taskReq       `json:"tasks"`
	Preferences    *preferencesReq `json:"preferences"`
	StartDate      string          `json:"startDate"`
	ExistingEvents []eventReq      `json:"existingEvents"`

	// IncludeCalendarEvents merges bookings from the configured calendar
	// into existingEvents before scheduling.
	IncludeCalendarEvents bool `json:"includeCalendarEvents"`
}

func (r scheduleReq) validate() error {
	if r.Tasks == nil {
		return errors.New("tasks is required")
	}
	return nil
}

func (r scheduleReq) toInput() scheduler.ScheduleInput {
	input := scheduler.ScheduleInput{
		Tasks:          make([]scheduler.TaskInput, 0, len(r.Tasks)),
		StartDate:      r.StartDate,
		ExistingEvents: make([]scheduler.EventInput, 0, len(r.ExistingEvents)),
	}
	for _, t := range r.Tasks {
		input.Tasks = append(input.Tasks, scheduler.TaskInput{
			ID:                t.ID,
			Title:             t.Title,
			Description:       t.Description,
			Priority:          t.Priority,
			EstimatedDuration: t.EstimatedDuration,
			Deadline:          t.Deadline,
			StartDate:         t.StartDate,
			Dependencies:      t.Dependencies,
		})
	}
	if r.Preferences != nil {
		input.Preferences = r.Preferences.toInput()
	}
	for _, e := range r.ExistingEvents {
		input.ExistingEvents = append(input.ExistingEvents, scheduler.EventInput{
			Title:       e.Title,
			Description: e.Description,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			IsAllDay:    e.IsAllDay,
		})
	}
	return input
}

func (r preferencesReq) toInput() scheduler.PreferencesInput {
	input := scheduler.PreferencesInput{
		WorkingDays:    r.WorkingDays,
		BreakDuration:  r.BreakDuration,
		MaxTasksPerDay: r.MaxTasksPerDay,
		TimeZone:       r.TimeZone,
	}
	if r.WorkingHours != nil {
		input.WorkingHours = &scheduler.WorkingHoursInput{
			Start: r.WorkingHours.Start,
			End:   r.WorkingHours.End,
		}
	}
	return input
}

type freeWindowsReq struct {
	StartDate      string          `json:"startDate" binding:"required"`
	EndDate        string          `json:"endDate" binding:"required"`
	Preferences    *preferencesReq `json:"preferences"`
	ExistingEvents []eventReq      `json:"existingEvents"`
}

func (r freeWindowsReq) validate() error {
	if r.StartDate == "" || r.EndDate == "" {
		return errors.New("startDate and endDate are required")
	}
	return nil
}

func (r freeWindowsReq) toInput() scheduler.FreeWindowsInput {
	input := scheduler.FreeWindowsInput{
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		ExistingEvents: make([]scheduler.EventInput, 0, len(r.ExistingEvents)),
	}
	if r.Preferences != nil {
		input.Preferences = r.Preferences.toInput()
	}
	for _, e := range r.ExistingEvents {
		input.ExistingEvents = append(input.ExistingEvents, scheduler.EventInput{
			Title:       e.Title,
			Description: e.Description,
			StartTime:   e.StartTime,
			EndTime:     e.EndTime,
			IsAllDay:    e.IsAllDay,
		})
	}
	return input
}

// --- Response DTOs ---

type scheduledTaskResp struct {
	TaskID      string `json:"taskId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Priority    string `json:"priority"`
	Reasoning   string `json:"reasoning"`
}

type unscheduledTaskResp struct {
	TaskID string `json:"taskId"`
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type summaryResp struct {
	TotalTasks              int                   `json:"totalTasks"`
	ScheduledTasks          int                   `json:"scheduledTasks"`
	UnscheduledTasks        []unscheduledTaskResp `json:"unscheduledTasks"`
	EstimatedCompletionDate *string               `json:"estimatedCompletionDate"`
	WorkloadDistribution    map[string]int        `json:"workloadDistribution"`
}

type scheduleResp struct {
	Schedule        []scheduledTaskResp `json:"schedule"`
	Summary         summaryResp         `json:"summary"`
	Recommendations []string            `json:"recommendations"`
}

func newScheduleResp(out scheduler.ScheduleOutput) scheduleResp {
	resp := scheduleResp{
		Schedule:        make([]scheduledTaskResp, 0, len(out.Scheduled)),
		Recommendations: out.Recommendations,
	}
	for _, st := range out.Scheduled {
		resp.Schedule = append(resp.Schedule, scheduledTaskResp{
			TaskID:      st.TaskID,
			Title:       st.Title,
			Description: st.Description,
			StartTime:   workhours.FormatDateTime(st.StartTime),
			EndTime:     workhours.FormatDateTime(st.EndTime),
			Priority:    string(st.Priority),
			Reasoning:   st.Reasoning,
		})
	}

	resp.Summary = summaryResp{
		TotalTasks:           out.Summary.TotalTasks,
		ScheduledTasks:       out.Summary.ScheduledCount,
		UnscheduledTasks:     make([]unscheduledTaskResp, 0, len(out.Unscheduled)),
		WorkloadDistribution: out.Summary.WorkloadDistribution,
	}
	for _, ut := range out.Unscheduled {
		resp.Summary.UnscheduledTasks = append(resp.Summary.UnscheduledTasks, unscheduledTaskResp{
			TaskID: ut.TaskID,
			Title:  ut.Title,
			Reason: ut.Reason,
		})
	}
	if out.Summary.EstimatedCompletionDate != "" {
		date := out.Summary.EstimatedCompletionDate
		resp.Summary.EstimatedCompletionDate = &date
	}

	return resp
}

type freeWindowResp struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

type dayWindowsResp struct {
	Date    string           `json:"date"`
	Windows []freeWindowResp `json:"windows"`
}

type freeWindowsResp struct {
	Days         []dayWindowsResp `json:"days"`
	TotalWindows int              `json:"totalWindows"`
}

func newFreeWindowsResp(out scheduler.FreeWindowsOutput) freeWindowsResp {
	resp := freeWindowsResp{
		Days:         make([]dayWindowsResp, 0, len(out.Days)),
		TotalWindows: out.TotalWindows,
	}
	for _, day := range out.Days {
		windows := make([]freeWindowResp, 0, len(day.Windows))
		for _, w := range day.Windows {
			windows = append(windows, freeWindowResp{
				Start:           workhours.FormatDateTime(w.Start),
				End:             workhours.FormatDateTime(w.End),
				DurationMinutes: w.DurationMinutes,
			})
		}
		resp.Days = append(resp.Days, dayWindowsResp{Date: day.Date, Windows: windows})
	}
	return resp
}

type normalizedTaskResp struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Description       string   `json:"description,omitempty"`
	Priority          string   `json:"priority"`
	EstimatedDuration int      `json:"estimatedDuration"`
	Deadline          *string  `json:"deadline"`
	StartDate         *string  `json:"startDate"`
	Dependencies      []string `json:"dependencies,omitempty"`
}

type validateResp struct {
	Tasks         []normalizedTaskResp `json:"tasks"`
	ReferenceDate string               `json:"referenceDate"`
	WorkingHours  workingHoursReq      `json:"workingHours"`
	WorkingDays   []string             `json:"workingDays"`
	BreakDuration int                  `json:"breakDuration"`
	TimeZone      string               `json:"timeZone,omitempty"`
}

func newValidateResp(out scheduler.ValidateOutput) validateResp {
	resp := validateResp{
		Tasks:         make([]normalizedTaskResp, 0, len(out.Tasks)),
		ReferenceDate: workhours.FormatDateTime(out.ReferenceDate),
		WorkingHours: workingHoursReq{
			Start: out.Preferences.WorkStart.String(),
			End:   out.Preferences.WorkEnd.String(),
		},
		WorkingDays:   weekdayNames(out.Preferences),
		BreakDuration: out.Preferences.BreakMinutes,
		TimeZone:      out.Preferences.TimeZone,
	}
	for _, task := range out.Tasks {
		resp.Tasks = append(resp.Tasks, normalizedTaskResp{
			ID:                task.ID,
			Title:             task.Title,
			Description:       task.Description,
			Priority:          string(task.Priority),
			EstimatedDuration: task.DurationMinutes,
			Deadline:          formatDatePtr(task.Deadline),
			StartDate:         formatDatePtr(task.StartDate),
			Dependencies:      task.Dependencies,
		})
	}
	return resp
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := workhours.FormatDate(*t)
	return &s
}

// weekdayNames renders the working-day set in week order.
func weekdayNames(prefs model.Preferences) []string {
	var days []time.Weekday
	for wd := range prefs.WorkingDays {
		days = append(days, wd)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	names := make([]string, 0, len(days))
	for _, wd := range days {
		names = append(names, wd.String())
	}
	return names
}
