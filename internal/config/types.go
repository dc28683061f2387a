// Package config handles configuration loading and defaults.
package config

import "fmt"

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// UI modes.
const (
	UIConsole = "console"
	UITUI     = "tui"
)

// Default values.
const (
	DefaultStatus    = "To do"
	DefaultUI        = UIConsole
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for todomenu.
type Config struct {
	// Status given to tasks added from the menu
	DefaultStatus string `toml:"default_status"`

	// Front end used by the run command (console or tui)
	UI string `toml:"ui"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Config files applied, in load order (computed)
	Files []string `toml:"-"`

	// Source of each field, keyed by TOML name (computed)
	Sources map[string]ConfigSource `toml:"-"`
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return []string{
		"default_status",
		"ui",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Source returns where the named field got its value.
func (c *Config) Source(field string) ConfigSource {
	if s, ok := c.Sources[field]; ok {
		return s
	}
	return SourceDefault
}

func (c *Config) setSource(field string, source ConfigSource) {
	if c.Sources == nil {
		c.Sources = make(map[string]ConfigSource)
	}
	c.Sources[field] = source
}

// ValidationError represents a config validation error with context.
type ValidationError struct {
	Path string // dotted path to the offending key
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
