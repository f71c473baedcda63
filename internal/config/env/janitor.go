package env

import (
	"fmt"
	"lockin_backend/internal/config"
	"os"
	"time"
)

const (
	janitorIntervalEnvName = "JANITOR_INTERVAL"
	defaultJanitorInterval = time.Hour
)

type janitorConfig struct {
	interval time.Duration
}

func NewJanitorConfig() (config.JanitorConfig, error) {
	raw := os.Getenv(janitorIntervalEnvName)
	if raw == "" {
		return &janitorConfig{interval: defaultJanitorInterval}, nil
	}

	interval, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid janitor interval: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("janitor interval must be positive, got %s", interval)
	}

	return &janitorConfig{interval: interval}, nil
}

func (cfg *janitorConfig) Interval() time.Duration {
	return cfg.interval
}
