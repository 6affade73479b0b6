package main

import (
	"errors"
	"strings"
	"testing"
)

func TestNewFragmentsCmd(t *testing.T) {
	t.Parallel()

	cmd := NewFragmentsCmd()
	if cmd.Use != "fragments [path]" {
		t.Errorf("expected use 'fragments [path]', got %q", cmd.Use)
	}

	var usageErr *UsageError
	if err := cmd.Args(cmd, []string{"a", "b"}); !errors.As(err, &usageErr) {
		t.Errorf("expected *UsageError for two arguments, got %v", err)
	}
	if err := cmd.Args(cmd, []string{"a"}); err != nil {
		t.Errorf("expected one argument to be accepted, got %v", err)
	}
}

func TestRunFragments(t *testing.T) {
	t.Parallel()

	t.Run("lists markers", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "App.tsx", "return (\n  <>\n    <div/>\n  </>\n);\n")

		code, stdout, _ := runCLI(t, "fragments", path)
		if code != 0 {
			t.Errorf("expected exit code 0, got %d", code)
		}
		want := "OPEN at L2: <>\nCLOSE at L4: </>\n"
		if stdout != want {
			t.Errorf("got %q, want %q", stdout, want)
		}
	})

	t.Run("unmatched fragment exits 1", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "App.tsx", "<>\n<div/>\n")

		code, stdout, _ := runCLI(t, "fragments", path)
		if code != 1 {
			t.Errorf("expected exit code 1, got %d", code)
		}
		if !strings.HasPrefix(stdout, "OPEN at L1: <>") {
			t.Errorf("unexpected output: %q", stdout)
		}
	})

	t.Run("markdown report", func(t *testing.T) {
		t.Parallel()
		path := writeFile(t, "App.tsx", "<></>\n")

		code, stdout, _ := runCLI(t, "fragments", "--markdown", path)
		if code != 0 {
			t.Errorf("expected exit code 0, got %d", code)
		}
		if !strings.Contains(stdout, "# Fragments: ") {
			t.Errorf("unexpected output: %q", stdout)
		}
	})
}
