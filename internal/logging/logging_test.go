package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{" DEBUG ", log.DebugLevel},
		{"", log.WarnLevel},
		{"verbose", log.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		input string
		want  log.Formatter
	}{
		{"json", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"text", log.TextFormatter},
		{"JSON", log.JSONFormatter},
		{"", log.TextFormatter},
		{"xml", log.TextFormatter},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormatter(tt.input); got != tt.want {
				t.Errorf("ParseFormatter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFromConfigRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "info", "text", false, false)

	logger.Debug("hidden")
	logger.Info("task added", "title", "Buy milk")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("debug message should be filtered at info level, got: %s", output)
	}
	if !strings.Contains(output, "task added") {
		t.Errorf("expected info message, got: %s", output)
	}
	if !strings.Contains(output, "title") || !strings.Contains(output, "Buy milk") {
		t.Errorf("expected title field, got: %s", output)
	}
	if !strings.Contains(output, DefaultPrefix) {
		t.Errorf("expected prefix %q, got: %s", DefaultPrefix, output)
	}
}

func TestNewFromConfigJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewFromConfig(&buf, "debug", "json", false, false)

	logger.Debug("task removed", "title", "a")

	output := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(output, "{") || !strings.Contains(output, `"title":"a"`) {
		t.Errorf("expected JSON record with title field, got: %s", output)
	}
}

func TestWithSession(t *testing.T) {
	var buf bytes.Buffer
	logger := WithSession(New(&buf, Options{Level: log.DebugLevel, Formatter: log.TextFormatter}))

	logger.Debug("hello")

	if !strings.Contains(buf.String(), "session=") {
		t.Errorf("expected session field, got: %s", buf.String())
	}
}

func TestSessionIDIsShortAndUnique(t *testing.T) {
	a, b := SessionID(), SessionID()
	if len(a) != 8 {
		t.Errorf("SessionID length: got %d, want 8", len(a))
	}
	if a == b {
		t.Errorf("expected distinct session ids, got %q twice", a)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	if logger.GetLevel() != log.FatalLevel {
		t.Errorf("Discard level: got %v, want %v", logger.GetLevel(), log.FatalLevel)
	}
}
