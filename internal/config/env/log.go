package env

import (
	"lockin_backend/internal/config"
	"os"
)

const (
	logLevelEnvName = "LOG_LEVEL"
	appEnvName      = "APP_ENV"
)

type logConfig struct {
	level  string
	pretty bool
}

func NewLogConfig() config.LogConfig {
	level := os.Getenv(logLevelEnvName)
	if level == "" {
		level = "info"
	}
	return &logConfig{
		level:  level,
		pretty: os.Getenv(appEnvName) == "dev",
	}
}

func (cfg *logConfig) Level() string {
	return cfg.level
}

func (cfg *logConfig) Pretty() bool {
	return cfg.pretty
}
