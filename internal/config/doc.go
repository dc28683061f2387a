// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.todomenu/todomenu.toml or OS-specific config directory)
// 3. Project config file (todomenu.toml or .todomenu.toml in the working
// directory, or the file named by TODOMENU_CONFIG)
// 4. Environment variables (TODOMENU_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Config files are checked against an embedded JSON Schema before they are
// applied; unknown keys and out-of-range values are rejected.
//
// Example todomenu.toml:
//
//	default_status = "To do"
//	ui = "console"
//	log_level = "debug"
//	log_format = "logfmt"
//	log_timestamps = true
package config
