package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Scheduling
	Scheduler SchedulerConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig

	// Integrations
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SchedulerConfig holds the fallback scheduling preferences applied when a
// request omits them.
type SchedulerConfig struct {
	WorkStart            string
	WorkEnd              string
	WorkingDays          []string
	BreakMinutes         int
	TaskMinutes          int
	WindowDays           int
	MinFreeWindowMinutes int
	MaxRangeDays         int
}

type CacheConfig struct {
	Enabled bool
	Size    int
	TTL     time.Duration
}

type RateLimitConfig struct {
	PerMin int // 0 disables rate limiting
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Scheduling defaults
	cfg.Scheduler.WorkStart = viper.GetString("scheduler.work_start")
	cfg.Scheduler.WorkEnd = viper.GetString("scheduler.work_end")
	cfg.Scheduler.WorkingDays = splitList(viper.GetString("scheduler.working_days"))
	cfg.Scheduler.BreakMinutes = viper.GetInt("scheduler.break_minutes")
	cfg.Scheduler.TaskMinutes = viper.GetInt("scheduler.task_minutes")
	cfg.Scheduler.WindowDays = viper.GetInt("scheduler.window_days")
	cfg.Scheduler.MinFreeWindowMinutes = viper.GetInt("scheduler.min_free_window_minutes")
	cfg.Scheduler.MaxRangeDays = viper.GetInt("scheduler.max_range_days")

	// Response cache
	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = expandEnvVar(viper.GetString("google_calendar.credentials_path"))
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("scheduler.work_start", "09:00")
	viper.SetDefault("scheduler.work_end", "17:00")
	viper.SetDefault("scheduler.working_days", "monday,tuesday,wednesday,thursday,friday")
	viper.SetDefault("scheduler.break_minutes", 15)
	viper.SetDefault("scheduler.task_minutes", 60)
	viper.SetDefault("scheduler.window_days", 30)
	viper.SetDefault("scheduler.min_free_window_minutes", 15)
	viper.SetDefault("scheduler.max_range_days", 90)

	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.size", 256)
	viper.SetDefault("cache.ttl", "5m")

	viper.SetDefault("rate_limit.per_min", 120)
}

// splitList parses a comma-separated list; viper does not reliably parse
// arrays coming from env overrides.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
