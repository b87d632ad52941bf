package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.StoreFile = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TODO_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
