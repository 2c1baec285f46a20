package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is an explicit metrics bundle passed by reference to the layers
// that record into it. It owns its registry; nothing here is ambient package
// state.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestDuration *prometheus.HistogramVec
	ScheduleDuration    prometheus.Histogram
	TasksScheduled      prometheus.Counter
	TasksUnscheduled    prometheus.Counter
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter
}

// New builds a Metrics bundle with a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
			},
			[]string{"method", "path", "status"},
		),
		ScheduleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "schedule_run_duration_seconds",
				Help:    "Duration of one scheduling run in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
			},
		),
		TasksScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasks_scheduled_total",
			Help: "Total number of tasks successfully placed",
		}),
		TasksUnscheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasks_unscheduled_total",
			Help: "Total number of tasks that could not be placed",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "schedule_cache_hits_total",
			Help: "Schedule response cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "schedule_cache_misses_total",
			Help: "Schedule response cache misses",
		}),
	}

	m.registry.MustRegister(
		m.HTTPRequestDuration,
		m.ScheduleDuration,
		m.TasksScheduled,
		m.TasksUnscheduled,
		m.CacheHits,
		m.CacheMisses,
	)

	return m
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest records one served request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveScheduleRun records the outcome of one scheduling run.
func (m *Metrics) ObserveScheduleRun(scheduled, unscheduled int, duration time.Duration) {
	m.ScheduleDuration.Observe(duration.Seconds())
	m.TasksScheduled.Add(float64(scheduled))
	m.TasksUnscheduled.Add(float64(unscheduled))
}
