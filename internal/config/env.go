package config

import (
	"os"
	"strings"
)

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TODOMENU_DEFAULT_STATUS"); v != "" {
		cfg.DefaultStatus = v
		cfg.setSource("default_status", SourceEnv)
	}
	if v := os.Getenv("TODOMENU_UI"); v != "" {
		cfg.UI = v
		cfg.setSource("ui", SourceEnv)
	}

	// Logging configuration
	if v := os.Getenv("TODOMENU_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		cfg.setSource("log_level", SourceEnv)
	}
	if v := os.Getenv("TODOMENU_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		cfg.setSource("log_format", SourceEnv)
	}
	if v := os.Getenv("TODOMENU_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		cfg.setSource("log_timestamps", SourceEnv)
	}
	if v := os.Getenv("TODOMENU_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		cfg.setSource("log_caller", SourceEnv)
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
