package config

import (
	"flag"
	"strings"
)

// parseFlags defines and parses CLI flags. Flags that were explicitly set
// are recorded with SourceFlag.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string) error {
	if fs == nil {
		fs = flag.NewFlagSet("todomenu", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.DefaultStatus, "default-status", cfg.DefaultStatus, "Status for newly added tasks")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "Front end for the run command (console|tui)")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		field := strings.ReplaceAll(f.Name, "-", "_")
		for _, known := range Fields() {
			if known == field {
				cfg.setSource(field, SourceFlag)
				return
			}
		}
	})
	return nil
}
