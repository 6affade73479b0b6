package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestCompact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "short string unchanged", input: "<div>", maxWidth: 10, want: "<div>"},
		{name: "exact width unchanged", input: "abcde", maxWidth: 5, want: "abcde"},
		{name: "long string truncated", input: "abcdefghij", maxWidth: 6, want: "abc..."},
		{name: "newline flattened", input: "a\nb", maxWidth: 10, want: `a\nb`},
		{name: "crlf flattened", input: "a\r\nb", maxWidth: 10, want: `a\nb`},
		{name: "wide runes counted by cell", input: "日本語テキスト", maxWidth: 7, want: "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Compact(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Compact(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestNewLogger_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		logLevel   slog.Level
		shouldShow bool
	}{
		{name: "debug shown in verbose mode", verbose: true, logLevel: slog.LevelDebug, shouldShow: true},
		{name: "debug hidden in non-verbose mode", verbose: false, logLevel: slog.LevelDebug, shouldShow: false},
		{name: "info hidden in non-verbose mode", verbose: false, logLevel: slog.LevelInfo, shouldShow: false},
		{name: "warn shown in non-verbose mode", verbose: false, logLevel: slog.LevelWarn, shouldShow: true},
		{name: "error shown in non-verbose mode", verbose: false, logLevel: slog.LevelError, shouldShow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			testMsg := "test_unique_message_12345"
			logger.Log(t.Context(), tt.logLevel, testMsg)

			hasMessage := strings.Contains(buf.String(), testMsg)
			if tt.shouldShow && !hasMessage {
				t.Errorf("expected message to be shown, got: %s", buf.String())
			}
			if !tt.shouldShow && hasMessage {
				t.Errorf("expected message to be hidden, got: %s", buf.String())
			}
		})
	}
}

func TestCompactHandler_TruncatesAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	long := strings.Repeat("x", DefaultMaxWidth*2)
	logger.Debug("line", "text", long, "line", 12)

	output := buf.String()
	if strings.Contains(output, long) {
		t.Errorf("expected long value to be truncated, got: %s", output)
	}
	if !strings.Contains(output, Ellipsis) {
		t.Errorf("expected ellipsis in output, got: %s", output)
	}
	if !strings.Contains(output, "line=12") {
		t.Errorf("expected int attribute untouched, got: %s", output)
	}
}

func TestCompactHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true).With("text", "first\nsecond")
	logger.Info("test message")

	output := buf.String()
	if !strings.Contains(output, `first\\nsecond`) && !strings.Contains(output, `first\nsecond`) {
		t.Errorf("expected flattened newline, got: %s", output)
	}
	if strings.Count(output, "\n") != 1 {
		t.Errorf("expected a single log line, got: %q", output)
	}
}

func TestCompactHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true).WithGroup("scan")
	logger.Info("test message", "path", "App.tsx")

	if !strings.Contains(buf.String(), "scan.path=App.tsx") {
		t.Errorf("expected grouped attribute, got: %s", buf.String())
	}
}

func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)
	logger.Info("test message", "text", "a\nb")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["text"] != `a\nb` {
		t.Errorf("expected flattened text, got %v", record["text"])
	}
}

func TestNewCompactHandler_Defaults(t *testing.T) {
	t.Parallel()

	h := NewCompactHandler(nil, 0)
	if h.handler == nil {
		t.Error("expected default handler")
	}
	if h.maxWidth != DefaultMaxWidth {
		t.Errorf("expected max width %d, got %d", DefaultMaxWidth, h.maxWidth)
	}
}
