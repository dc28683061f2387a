// Package cmd provides tests for CLI command handlers.
package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nibzard/todomenu/internal/menu"
)

// isolateConfig keeps the developer's own config files and environment out
// of the test.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())
	for _, name := range []string{
		"TODOMENU_CONFIG",
		"TODOMENU_DEFAULT_STATUS",
		"TODOMENU_UI",
		"TODOMENU_LOG_LEVEL",
		"TODOMENU_LOG_FORMAT",
		"TODOMENU_LOG_TIMESTAMPS",
		"TODOMENU_LOG_CALLER",
	} {
		t.Setenv(name, "")
	}
}

func run(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := RunWithStreams(context.Background(), args, Streams{
		In:  strings.NewReader(input),
		Out: &out,
		Err: &errOut,
	})
	return out.String(), errOut.String(), err
}

// TestRun tests the main entry point.
func TestRun(t *testing.T) {
	isolateConfig(t)

	t.Run("shows help with -h flag", func(t *testing.T) {
		out, _, err := run(t, "", "-h")
		if err != nil {
			t.Fatalf("expected no error with -h, got %v", err)
		}
		if !strings.Contains(out, "Usage:") || !strings.Contains(out, "-default-status") {
			t.Errorf("help output missing usage or flags:\n%s", out)
		}
	})

	t.Run("shows help with help command", func(t *testing.T) {
		out, _, err := run(t, "", "help")
		if err != nil {
			t.Fatalf("expected no error with help command, got %v", err)
		}
		if !strings.Contains(out, "Commands:") {
			t.Errorf("help output:\n%s", out)
		}
	})

	t.Run("shows version with -version flag", func(t *testing.T) {
		out, _, err := run(t, "", "-version")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(out, "todomenu version "+Version) {
			t.Errorf("version output: %q", out)
		}
	})

	t.Run("version command", func(t *testing.T) {
		out, _, err := run(t, "", "version")
		if err != nil || !strings.Contains(out, Version) {
			t.Errorf("version command: out %q, err %v", out, err)
		}
	})

	t.Run("unknown command returns error", func(t *testing.T) {
		_, errOut, err := run(t, "", "unknown-command")
		if err == nil {
			t.Fatal("expected error for unknown command, got nil")
		}
		if !strings.Contains(err.Error(), "unknown command") {
			t.Errorf("expected 'unknown command' error, got %v", err)
		}
		if !strings.Contains(errOut, "Unknown command: unknown-command") {
			t.Errorf("stderr: %q", errOut)
		}
	})

	t.Run("extra arguments return error", func(t *testing.T) {
		_, _, err := run(t, "", "run", "extra")
		if err == nil || !strings.Contains(err.Error(), "unexpected arguments") {
			t.Errorf("expected unexpected arguments error, got %v", err)
		}
	})

	t.Run("unknown flag returns error", func(t *testing.T) {
		_, _, err := run(t, "", "-no-such-flag")
		if err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}

func TestRunCommand(t *testing.T) {
	isolateConfig(t)

	input := "2\nBuy milk\n2 liters\n2024-01-01\n1\n6\n"
	out, _, err := run(t, input)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := "Task 1:\nTitle: Buy milk\nContent: 2 liters\nDeadline: 2024-01-01\nStatus: To do\n"
	if !strings.Contains(out, want) {
		t.Errorf("output missing listing %q:\n%s", want, out)
	}
	if !strings.HasSuffix(out, menu.GoodbyeMessage+"\n") {
		t.Errorf("output should end with goodbye:\n%s", out)
	}
}

func TestRunCommandDefaultStatusFlag(t *testing.T) {
	isolateConfig(t)

	out, _, err := run(t, "2\na\nb\nc\n1\n6\n", "-default-status", "backlog", "run")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "Status: backlog") {
		t.Errorf("expected configured default status:\n%s", out)
	}
}

func TestRunCommandDebugLogsToStderr(t *testing.T) {
	isolateConfig(t)

	out, errOut, err := run(t, "5\nghost\n6\n", "-log-level", "debug")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, menu.NotFoundMessage("ghost")) {
		t.Errorf("stdout missing not-found message:\n%s", out)
	}
	if !strings.Contains(errOut, "task not found") || !strings.Contains(errOut, "session=") {
		t.Errorf("stderr missing debug log:\n%s", errOut)
	}
	if strings.Contains(out, "task not found") {
		t.Errorf("logs leaked into stdout:\n%s", out)
	}
}

func TestRunCommandEOF(t *testing.T) {
	isolateConfig(t)

	if _, _, err := run(t, "1\n"); err != nil {
		t.Errorf("EOF should end the session cleanly, got %v", err)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(`ui = "web"`), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TODOMENU_CONFIG", path)

	_, _, err := run(t, "6\n")
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestConfigCommand(t *testing.T) {
	isolateConfig(t)
	path := filepath.Join(t.TempDir(), "todomenu.toml")
	if err := os.WriteFile(path, []byte("log_format = \"logfmt\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TODOMENU_CONFIG", path)
	t.Setenv("TODOMENU_DEFAULT_STATUS", "later")

	out, _, err := run(t, "", "-ui", "tui", "config")
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}

	for _, want := range []string{
		"# loaded " + path,
		"# log_format: project file",
		"# default_status: environment",
		"# ui: flag",
		"# log_level: default",
		`default_status = "later"`,
		`ui = "tui"`,
		`log_format = "logfmt"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandNoFiles(t *testing.T) {
	isolateConfig(t)

	out, _, err := run(t, "", "config")
	if err != nil {
		t.Fatalf("config command failed: %v", err)
	}
	if !strings.Contains(out, "# no config files found") {
		t.Errorf("config output:\n%s", out)
	}
}
