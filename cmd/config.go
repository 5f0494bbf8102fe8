package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultHTTPPort               = "8080"
	DefaultSettingsReloadSchedule = "@every 30s"
)

type Config struct {
	HTTPPort               string
	SettingsFile           string
	SettingsReloadSchedule string
	LogLevel               slog.Level
}

// LoadConfig reads the configuration from the environment. Values from
// envFile are applied first when the file exists; variables already set in
// the process environment win.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:               envOrDefault("HTTP_PORT", DefaultHTTPPort),
		SettingsFile:           os.Getenv("SETTINGS_FILE"),
		SettingsReloadSchedule: envOrDefault("SETTINGS_RELOAD_SCHEDULE", DefaultSettingsReloadSchedule),
		LogLevel:               level,
	}, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
