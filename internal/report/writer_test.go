package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/tagbalance/internal/model"
)

// createAuditReport creates a report with one unclosed tag and one stray closer.
func createAuditReport(path string) *model.AuditReport {
	r := model.NewAuditReport(path)
	r.DateScanned = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.Lexer = "line"
	r.Recovery = "truncate-on-mismatch"
	r.TrackedTags = model.DefaultTrackedTags
	r.Opened = 2
	r.Closed = 2
	r.Remaining = []model.StackEntry{{Tag: "div", Line: 3}}
	r.StrayClosers = 1
	r.Diagnostics = []model.Diagnostic{
		model.NewDiagnostic(model.DiagnosticStrayCloser, "form", 7, "Stray </%s> at L%d", "form", 7).WithText("</form>"),
		model.NewDiagnostic(model.DiagnosticUnclosed, "div", 3, "Unclosed %s from L%d", "div", 3),
	}
	return r
}

func createBalancedAuditReport(path string) *model.AuditReport {
	r := model.NewAuditReport(path)
	r.Lexer = "line"
	r.Recovery = "truncate-on-mismatch"
	r.TrackedTags = model.DefaultTrackedTags
	r.Opened = 1
	r.Closed = 1
	return r
}

func createBalanceReport() *model.BalanceReport {
	r := model.NewBalanceReport("App.tsx", "div")
	r.Recovery = "reset-on-negative"
	r.Opened = 3
	r.Closed = 4
	r.FinalBalance = 0
	r.Diagnostics = []model.Diagnostic{
		model.NewDiagnostic(model.DiagnosticNegativeBalance, "div", 9, "Negative balance! Count: %d", -1).WithText("</div>"),
	}
	return r
}

func createFragmentReport() *model.FragmentReport {
	return &model.FragmentReport{
		Path: "App.tsx",
		Markers: []model.FragmentMarker{
			{Kind: model.EventOpen, Line: 2, Text: "<>"},
			{Kind: model.EventClose, Line: 5, Text: "</>"},
		},
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("audit prints stack size and unclosed tags first", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteAudit(createAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := "Remaining Stack Size: 1\nUnclosed div from L3\nStray </form> at L7\n"
		if got := buf.String(); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("balanced audit prints zero stack size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteAudit(createBalancedAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := buf.String(); got != "Remaining Stack Size: 0\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})

	t.Run("multiple audits get headers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := NewSimpleWriter(&buf).WriteAudit(createBalancedAuditReport("a.tsx"), createAuditReport("b.tsx"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "==> a.tsx <==") || !strings.Contains(output, "==> b.tsx <==") {
			t.Errorf("expected per-file headers, got:\n%s", output)
		}
		if strings.Index(output, "a.tsx") > strings.Index(output, "b.tsx") {
			t.Error("expected reports in input order")
		}
	})

	t.Run("verbose audit adds summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		if _, err := w.WriteAudit(createBalancedAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "tags=div,form,section,main") {
			t.Errorf("expected tracked tags in summary, got:\n%s", output)
		}
		if !strings.Contains(output, "All tracked tags are balanced.") {
			t.Errorf("expected balanced note, got:\n%s", output)
		}
	})

	t.Run("balance prints negative lines and final balance", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteBalance(createBalanceReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Line 9: </div>\nNegative balance! Count: -1\nFinal balance: 0\n"
		if got := buf.String(); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("fragments prints one line per marker", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteFragments(createFragmentReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "OPEN at L2: <>\nCLOSE at L5: </>\n"
		if got := buf.String(); got != want {
			t.Errorf("got:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("color adds escape codes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithColor(true))
		if _, err := w.WriteAudit(createAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("expected ANSI escape codes, got %q", buf.String())
		}
	})

	t.Run("no color by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteAudit(createAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "\x1b[") {
			t.Errorf("expected no ANSI escape codes, got %q", buf.String())
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("audit document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithVersion("v1.2.3"))
		if _, err := w.WriteAudit(createAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var doc struct {
			Version    string `json:"version"`
			Command    string `json:"command"`
			Imbalanced bool   `json:"imbalanced"`
			Reports    []struct {
				Path        string `json:"path"`
				Remaining   []model.StackEntry
				Diagnostics []struct {
					Kind     string `json:"kind"`
					Severity string `json:"severity"`
				} `json:"diagnostics"`
			} `json:"reports"`
		}
		if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
		}
		if doc.Version != "v1.2.3" || doc.Command != "audit" || !doc.Imbalanced {
			t.Errorf("unexpected envelope: %+v", doc)
		}
		if len(doc.Reports) != 1 || doc.Reports[0].Path != "App.tsx" {
			t.Fatalf("unexpected reports: %+v", doc.Reports)
		}
		if len(doc.Reports[0].Diagnostics) != 2 {
			t.Fatalf("expected 2 diagnostics, got %d", len(doc.Reports[0].Diagnostics))
		}
		if doc.Reports[0].Diagnostics[1].Severity != "HIGH" {
			t.Errorf("expected severity label HIGH, got %s", doc.Reports[0].Diagnostics[1].Severity)
		}
	})

	t.Run("empty audit is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteAudit(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"reports":[]`) {
			t.Errorf("expected empty reports array, got %s", buf.String())
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WriteBalance(createBalanceReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"command\": \"divs\"") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})

	t.Run("fragment kinds are names", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteFragments(createFragmentReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"kind":"open"`) || !strings.Contains(buf.String(), `"kind":"close"`) {
			t.Errorf("expected kind names, got %s", buf.String())
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("expected trailing newline")
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("audit", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, "v1.0.0").WriteAudit(createAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()

		for _, want := range []string{
			"# Tag Balance Audit",
			"## App.tsx",
			"Remaining Stack Size",
			"[!CAUTION]",
			"`<div>` opened at L3",
			"Stray Closer",
			"`Stray </form> at L7`",
			"mermaid",
			"tagbalance v1.0.0",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q:\n%s", want, output)
			}
		}
	})

	t.Run("messages with tags are not rendered as HTML", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, "").WriteAudit(createAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "| Stray </form>") {
			t.Errorf("expected message in a code span, got:\n%s", buf.String())
		}
	})

	t.Run("balanced audit shows tip", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, "").WriteAudit(createBalancedAuditReport("App.tsx")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "[!TIP]") || !strings.Contains(output, "No diagnostics.") {
			t.Errorf("expected balanced output, got:\n%s", output)
		}
	})

	t.Run("balance", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, "").WriteBalance(createBalanceReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "Final Balance") || !strings.Contains(output, "Negative Balance") {
			t.Errorf("unexpected output:\n%s", output)
		}
	})

	t.Run("fragments", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, "").WriteFragments(createFragmentReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()
		if !strings.Contains(output, "OPEN") || !strings.Contains(output, "CLOSE") {
			t.Errorf("unexpected output:\n%s", output)
		}
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format Format
		want   string
	}{
		{format: FormatText, want: "*report.SimpleWriter"},
		{format: "", want: "*report.SimpleWriter"},
		{format: FormatJSON, want: "*report.JSONWriter"},
		{format: FormatMarkdown, want: "*report.MarkdownWriter"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			w, err := New(&bytes.Buffer{}, tt.format, Options{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := typeName(w); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		if _, err := New(&bytes.Buffer{}, "xml", Options{}); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected short unchanged, got %s", got)
	}
	if got := truncate("<div className=\"container\">", 10); got != "<div cl..." {
		t.Errorf("unexpected truncation: %s", got)
	}
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
