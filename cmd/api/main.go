package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-scheduler/config"
	_ "smart-scheduler/docs" // Swagger docs
	"smart-scheduler/internal/httpserver"
	"smart-scheduler/internal/middleware"
	"smart-scheduler/internal/schedcache"
	schedHTTP "smart-scheduler/internal/scheduler/delivery/http"
	"smart-scheduler/internal/scheduler/usecase"
	"smart-scheduler/pkg/gcalendar"
	"smart-scheduler/pkg/log"
	"smart-scheduler/pkg/metrics"
)

// @title       Smart Scheduler API
// @description Deterministic task-to-calendar scheduling around working hours, existing bookings, and deadlines.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	m := metrics.New()

	// 4. Response cache
	var cache *schedcache.Cache
	if cfg.Cache.Enabled {
		cache = schedcache.New(cfg.Cache.Size, cfg.Cache.TTL)
		logger.Infof(ctx, "Response cache enabled: %d entries, %s TTL", cfg.Cache.Size, cfg.Cache.TTL)
	}

	// 5. Google Calendar client (optional)
	var calendarClient schedHTTP.CalendarClient
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			calendarClient = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Scheduler domain
	uc := usecase.New(logger, usecase.Defaults{
		WorkStart:            cfg.Scheduler.WorkStart,
		WorkEnd:              cfg.Scheduler.WorkEnd,
		WorkingDays:          cfg.Scheduler.WorkingDays,
		BreakMinutes:         cfg.Scheduler.BreakMinutes,
		TaskMinutes:          cfg.Scheduler.TaskMinutes,
		WindowDays:           cfg.Scheduler.WindowDays,
		MinFreeWindowMinutes: cfg.Scheduler.MinFreeWindowMinutes,
		MaxRangeDays:         cfg.Scheduler.MaxRangeDays,
	}, nil)

	handler := schedHTTP.New(logger, uc, schedHTTP.Config{
		Cache:      cache,
		Metrics:    m,
		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		SchedulerHandler: handler,
		Metrics:          m,
		MiddlewareCfg: middleware.Config{
			RateLimitPerMin: cfg.RateLimit.PerMin,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
