package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.todomenu/todomenu.toml or OS-specific config dir)
// 3. Project config file (todomenu.toml or .todomenu.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return load(fs, args, wd)
}

func load(fs *flag.FlagSet, args []string, workDir string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	projectConfigFile := findProjectConfigFile(workDir)
	if v := os.Getenv("TODOMENU_CONFIG"); v != "" {
		projectConfigFile = expandPath(v)
	}
	if projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.DefaultStatus = DefaultStatus
	cfg.UI = DefaultUI
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	for _, field := range Fields() {
		cfg.setSource(field, SourceDefault)
	}
}

// loadConfigFile validates a TOML file and applies the keys it defines.
func loadConfigFile(cfg *Config, path string, source ConfigSource) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if err := Validate(raw); err != nil {
		return err
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("decode config file: %w", err)
	}
	for _, key := range md.Keys() {
		cfg.setSource(key.String(), source)
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// finalizeConfig normalizes values that may come from env or flags, which
// bypass schema validation.
func finalizeConfig(cfg *Config) error {
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	switch cfg.UI {
	case UIConsole, UITUI:
	default:
		return &ValidationError{
			Path: "ui",
			Err:  fmt.Errorf("invalid ui %q, must be one of: %s, %s", cfg.UI, UIConsole, UITUI),
		}
	}
	return nil
}
