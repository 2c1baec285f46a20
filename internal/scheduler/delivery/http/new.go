package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/schedcache"
	"smart-scheduler/internal/scheduler"
	"smart-scheduler/pkg/gcalendar"
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/metrics"
)

// Handler is the public interface for the scheduler HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	FreeWindows(c *gin.Context)
	Validate(c *gin.Context)
}

// CalendarClient abstracts the Google Calendar read side for mocking.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

// Config carries the optional collaborators of the delivery layer.
type Config struct {
	Cache      *schedcache.Cache // nil disables response caching
	Metrics    *metrics.Metrics  // nil disables instrumentation
	Calendar   CalendarClient    // nil disables calendar merging
	CalendarID string            // empty means "primary"
	Now        func() time.Time  // nil means time.Now
}

type handler struct {
	l          log.Logger
	uc         scheduler.UseCase
	cache      *schedcache.Cache
	metrics    *metrics.Metrics
	calendar   CalendarClient
	calendarID string
	now        func() time.Time
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the scheduler domain.
func New(l log.Logger, uc scheduler.UseCase, cfg Config) *handler {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &handler{
		l:          l,
		uc:         uc,
		cache:      cfg.Cache,
		metrics:    cfg.Metrics,
		calendar:   cfg.Calendar,
		calendarID: cfg.CalendarID,
		now:        now,
	}
}
