package config

import (
	"log/slog"
	"os"
	"strconv"
)

type AppConfig struct {
	UserDBPath   string
	IndexDBPath  string
	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPPassword string
	SweepWorkers int
	MetricsAddr  string
	LogLevel     slog.Level
}

var Config AppConfig

func LoadConfig() {
	cfg := AppConfig{}

	cfg.UserDBPath = loadOptional("USER_DB_PATH", "user.sqlite3")
	cfg.IndexDBPath = loadOptional("INDEX_DB_PATH", "tkindex.sqlite3")
	cfg.SMTPHost = loadRequired("SMTP_HOST")
	cfg.SMTPPort = loadRequired("SMTP_PORT")
	cfg.SMTPFrom = loadOptional("SMTP_FROM", "opentk@hubertnet.nl")
	cfg.SMTPPassword = loadOptional("SMTP_PASSWORD", "")
	cfg.MetricsAddr = loadOptional("METRICS_ADDR", "")

	workers := loadOptional("SWEEP_WORKERS", "4")
	n, err := strconv.Atoi(workers)
	if err != nil || n < 1 {
		slog.Error("Invalid SWEEP_WORKERS, falling back to 4", "value", workers)
		n = 4
	}
	cfg.SweepWorkers = n

	lvlString := loadOptional("LOG_LEVEL", "INFO")
	cfg.LogLevel, err = parseLogLevel(lvlString)
	if err != nil {
		slog.Error("Invalid LOG_LEVEL", "error", err)
		cfg.LogLevel = slog.LevelInfo
	}

	Config = cfg
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	var err = level.UnmarshalText([]byte(s))
	return level, err
}

func loadRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Required env var not set", "key", key)
		os.Exit(1)
	}
	return value
}

func loadOptional(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
