package middleware

import (
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/metrics"
)

// Config tunes the request middlewares.
type Config struct {
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	config  Config
	metrics *metrics.Metrics
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config, m *metrics.Metrics) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		metrics: m,
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
