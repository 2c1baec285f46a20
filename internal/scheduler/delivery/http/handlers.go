package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/schedcache"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/gcalendar"
	"smart-scheduler/pkg/response"
	"smart-scheduler/pkg/workhours"
)

// calendarHorizonDays bounds the fetch window when merging calendar events:
// the default scheduling window plus slack for deadline rollforward.
const calendarHorizonDays = 45

// Schedule godoc
// @Summary     Compute a task schedule
// @Description Places each task into the first fitting slot of its window, respecting working hours, working days, buffers, and existing bookings.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Tasks, preferences, and existing events"
// @Success     200 {object} response.Resp{data=scheduleResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, raw, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	// Cache only requests with a pinned reference date: those are fully
	// deterministic. Calendar-merging requests depend on external state.
	cacheable := h.cache != nil && req.StartDate != "" && !req.IncludeCalendarEvents
	var cacheKey string
	if cacheable {
		cacheKey = schedcache.Key(raw)
		if out, ok := h.cache.Get(cacheKey); ok {
			if h.metrics != nil {
				h.metrics.CacheHits.Inc()
			}
			response.OK(c, newScheduleResp(out))
			return
		}
		if h.metrics != nil {
			h.metrics.CacheMisses.Inc()
		}
	}

	input := req.toInput()
	if req.IncludeCalendarEvents {
		merged, err := h.mergeCalendarEvents(ctx, input)
		if err != nil {
			h.l.Warnf(ctx, "schedule: calendar merge failed, continuing without: %v", err)
		} else {
			input = merged
		}
	}

	began := time.Now()
	out, err := h.uc.Schedule(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		h.mapError(c, err)
		return
	}
	if h.metrics != nil {
		h.metrics.ObserveScheduleRun(len(out.Scheduled), len(out.Unscheduled), time.Since(began))
	}

	if cacheable {
		h.cache.Add(cacheKey, out)
	}

	response.OK(c, newScheduleResp(out))
}

// FreeWindows godoc
// @Summary     List free windows
// @Description Reports the usable free spans between bookings inside each working day of the range.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body freeWindowsReq true "Date range, preferences, and existing events"
// @Success     200 {object} response.Resp{data=freeWindowsResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/free-windows [POST]
func (h *handler) FreeWindows(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFreeWindowsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.FreeWindows(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.FreeWindows: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newFreeWindowsResp(out))
}

// Validate godoc
// @Summary     Validate a schedule request
// @Description Runs normalization and validation without placing any task; returns the fully defaulted task list.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Tasks and preferences"
// @Success     200 {object} response.Resp{data=validateResp}
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	req, _, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Validate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Validate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newValidateResp(out))
}

// mergeCalendarEvents appends bookings from the configured calendar to the
// request's existing events. The horizon starts at the reference date and
// covers the default scheduling window.
func (h *handler) mergeCalendarEvents(ctx context.Context, input scheduler.ScheduleInput) (scheduler.ScheduleInput, error) {
	if h.calendar == nil {
		return input, nil
	}

	from := h.now().UTC()
	if input.StartDate != "" {
		parsed, err := workhours.ParseDateTime(input.StartDate)
		if err == nil {
			from = parsed
		}
	}

	events, err := h.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: h.calendarID,
		TimeMin:    from,
		TimeMax:    from.AddDate(0, 0, calendarHorizonDays),
	})
	if err != nil {
		return input, err
	}

	for _, ev := range events {
		input.ExistingEvents = append(input.ExistingEvents, scheduler.EventInput{
			Title:       ev.Summary,
			Description: ev.Description,
			StartTime:   workhours.FormatDateTime(ev.StartTime),
			EndTime:     workhours.FormatDateTime(ev.EndTime),
			IsAllDay:    ev.IsAllDay,
		})
	}

	h.l.Infof(ctx, "schedule: merged %d calendar events into the timeline", len(events))
	return input, nil
}
