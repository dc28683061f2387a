// Package cmd implements the CLI command structure for todomenu.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todomenu/internal/config"
	"github.com/nibzard/todomenu/internal/logging"
	"github.com/nibzard/todomenu/internal/menu"
	"github.com/nibzard/todomenu/internal/todo"
	"github.com/nibzard/todomenu/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Streams are the process standard streams. Tests substitute buffers.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdStreams returns the real stdin, stdout and stderr.
func StdStreams() Streams {
	return Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Run executes the todomenu CLI on the process streams.
func Run(ctx context.Context, args []string) error {
	return RunWithStreams(ctx, args, StdStreams())
}

// RunWithStreams executes the todomenu CLI on the given streams.
func RunWithStreams(ctx context.Context, args []string, streams Streams) error {
	fs := flag.NewFlagSet("todomenu", flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	fs.Usage = func() {
		printUsage(fs, streams.Err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, streams.Out)
		return nil
	}
	if *showVersion {
		return versionCommand(streams.Out)
	}

	logger := logging.WithSession(logging.NewFromConfig(streams.Err, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
	for _, path := range cfg.Files {
		logger.Debug("config file loaded", "path", path)
	}

	// If no args or first arg is a flag, use "run" as default
	subcommand := "run"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}
	if len(remainingArgs) > 0 {
		return fmt.Errorf("unexpected arguments: %v", remainingArgs)
	}

	switch subcommand {
	case "run":
		return runCommand(ctx, cfg, logger, streams)
	case "tui":
		return tuiCommand(ctx, cfg, logger, streams)
	case "config":
		return configCommand(cfg, streams.Out)
	case "version":
		return versionCommand(streams.Out)
	case "help":
		printUsage(fs, streams.Out)
		return nil
	default:
		fmt.Fprintf(streams.Err, "Unknown command: %s\n", subcommand)
		printUsage(fs, streams.Err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

func newHandler(cfg *config.Config, logger *log.Logger) *menu.Handler {
	return menu.NewHandler(todo.NewManager(),
		menu.WithDefaultStatus(cfg.DefaultStatus),
		menu.WithLogger(logger),
	)
}

// runCommand starts the configured front end.
func runCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, streams Streams) error {
	if cfg.UI == config.UITUI {
		return tuiCommand(ctx, cfg, logger, streams)
	}
	session := menu.NewSession(newHandler(cfg, logger), streams.In, streams.Out)
	return session.Run(ctx)
}

// tuiCommand launches the TUI.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, streams Streams) error {
	var opts []ui.TUIOption
	if f, ok := streams.Out.(*os.File); !ok || f != os.Stdout {
		opts = append(opts, ui.WithIO(streams.In, streams.Out))
	}
	return ui.RunTUI(ctx, newHandler(cfg, logger), opts...)
}

// configCommand prints the effective configuration and where each value came from.
func configCommand(cfg *config.Config, w io.Writer) error {
	if len(cfg.Files) == 0 {
		fmt.Fprintln(w, "# no config files found")
	}
	for _, path := range cfg.Files {
		fmt.Fprintf(w, "# loaded %s\n", path)
	}
	for _, field := range config.Fields() {
		fmt.Fprintf(w, "# %s: %s\n", field, cfg.Source(field))
	}
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todomenu version %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todomenu - an interactive in-memory to-do list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todomenu [options] [command]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run       Start the menu (default command)")
	fmt.Fprintln(w, "  tui       Start the menu as a terminal UI")
	fmt.Fprintln(w, "  config    Print the effective configuration")
	fmt.Fprintln(w, "  version   Show version information")
	fmt.Fprintln(w, "  help      Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  "+strings.Join([]string{
		"TODOMENU_CONFIG",
		"TODOMENU_DEFAULT_STATUS",
		"TODOMENU_UI",
		"TODOMENU_LOG_LEVEL",
		"TODOMENU_LOG_FORMAT",
		"TODOMENU_LOG_TIMESTAMPS",
		"TODOMENU_LOG_CALLER",
	}, "\n  "))
}
