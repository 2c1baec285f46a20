package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-scheduler/internal/middleware"
	schedHTTP "smart-scheduler/internal/scheduler/delivery/http"
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Scheduler domain
	schedulerHandler schedHTTP.Handler

	// Cross-cutting
	metrics       *metrics.Metrics
	middlewareCfg middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Scheduler domain
	SchedulerHandler schedHTTP.Handler

	// Cross-cutting
	Metrics       *metrics.Metrics
	MiddlewareCfg middleware.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		schedulerHandler: cfg.SchedulerHandler,
		metrics:          cfg.Metrics,
		middlewareCfg:    cfg.MiddlewareCfg,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.schedulerHandler == nil {
		return errors.New("scheduler handler is required")
	}
	return nil
}
