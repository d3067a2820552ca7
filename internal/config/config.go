package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	EventBus EventBusConfig
	Timeline TimelineConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

// EventBusConfig bounds the worker pool that executes event handlers.
type EventBusConfig struct {
	CoreSize      int // workers kept alive for the process lifetime
	MaxSize       int // hard cap including overflow workers
	IdleTTL       int // seconds before an overflow worker retires
	QueueCapacity int // queued handler invocations before Publish rejects
	ShutdownGrace int // seconds to drain in-flight work on shutdown
}

type TimelineConfig struct {
	MaxLength         int // most entries ever returned to a reader
	BackfillMaxTweets int // newest tweets copied on a fresh follow
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Microblog API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		EventBus: EventBusConfig{
			CoreSize:      getEnvInt("EVENTBUS_CORE_SIZE", 4),
			MaxSize:       getEnvInt("EVENTBUS_MAX_SIZE", 16),
			IdleTTL:       getEnvInt("EVENTBUS_IDLE_TTL", 30),
			QueueCapacity: getEnvInt("EVENTBUS_QUEUE_CAPACITY", 1024),
			ShutdownGrace: getEnvInt("EVENTBUS_SHUTDOWN_GRACE", 10),
		},
		Timeline: TimelineConfig{
			MaxLength:         getEnvInt("TIMELINE_MAX_LENGTH", 50),
			BackfillMaxTweets: getEnvInt("BACKFILL_MAX_TWEETS", 50),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.EventBus.CoreSize < 1 {
		return fmt.Errorf("EVENTBUS_CORE_SIZE must be at least 1")
	}
	if c.EventBus.MaxSize < c.EventBus.CoreSize {
		return fmt.Errorf("EVENTBUS_MAX_SIZE must be >= EVENTBUS_CORE_SIZE")
	}
	if c.EventBus.QueueCapacity < 1 {
		return fmt.Errorf("EVENTBUS_QUEUE_CAPACITY must be at least 1")
	}
	if c.Timeline.MaxLength < 1 {
		return fmt.Errorf("TIMELINE_MAX_LENGTH must be at least 1")
	}
	if c.Timeline.BackfillMaxTweets < 1 {
		return fmt.Errorf("BACKFILL_MAX_TWEETS must be at least 1")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
