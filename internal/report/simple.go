package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nao1215/tagbalance/internal/model"
)

// SimpleWriter outputs the plain text report. The stack and balance lines
// keep a fixed format so the output can be grepped; other diagnostics follow
// them.
type SimpleWriter struct {
	baseWriter

	// verbose adds a summary line with counters and policies per file.
	verbose bool

	styles styles
}

type styles struct {
	high   *color.Color
	medium *color.Color
	low    *color.Color
	ok     *color.Color
	header *color.Color
}

func newStyles(enabled bool) styles {
	s := styles{
		high:   color.New(color.FgRed, color.Bold),
		medium: color.New(color.FgYellow),
		low:    color.New(color.FgCyan),
		ok:     color.New(color.FgGreen),
		header: color.New(color.Bold),
	}
	for _, c := range []*color.Color{s.high, s.medium, s.low, s.ok, s.header} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s styles) forSeverity(sev model.Severity) *color.Color {
	switch sev {
	case model.SeverityHigh:
		return s.high
	case model.SeverityMedium:
		return s.medium
	default:
		return s.low
	}
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables ANSI colors keyed on diagnostic severity.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.styles = newStyles(enabled)
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
// Colors are off unless WithColor(true) is given.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		styles:     newStyles(false),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteAudit writes
//
//	Remaining Stack Size: N
//	Unclosed <tag> from L<line>
//
// followed by one line per implicit close or stray closer. When more than
// one report is given each block is preceded by a `==> path <==` header.
func (w *SimpleWriter) WriteAudit(reports ...*model.AuditReport) (int, error) {
	var sb strings.Builder
	for i, r := range reports {
		if len(reports) > 1 {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(w.styles.header.Sprintf("==> %s <==", r.Path))
			sb.WriteString("\n")
		}
		w.writeAudit(&sb, r)
	}
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeAudit(sb *strings.Builder, r *model.AuditReport) {
	if w.verbose {
		fmt.Fprintf(sb, "Scanned %s: lexer=%s recovery=%s tags=%s opened=%d closed=%d\n",
			r.Path, r.Lexer, r.Recovery, model.NewTagSet(r.TrackedTags...), r.Opened, r.Closed)
	}

	fmt.Fprintf(sb, "Remaining Stack Size: %d\n", len(r.Remaining))
	for _, d := range r.DiagnosticsOf(model.DiagnosticUnclosed) {
		sb.WriteString(w.styles.forSeverity(d.Severity).Sprint(d.Message))
		sb.WriteString("\n")
	}
	for _, d := range r.Diagnostics {
		if d.Kind == model.DiagnosticUnclosed {
			continue
		}
		sb.WriteString(w.styles.forSeverity(d.Severity).Sprint(d.Message))
		sb.WriteString("\n")
	}
	if w.verbose && !r.HasImbalance() {
		sb.WriteString(w.styles.ok.Sprint("All tracked tags are balanced."))
		sb.WriteString("\n")
	}
}

// WriteBalance writes
//
//	Line <n>: <trimmed line>
//	Negative balance! Count: <balance>
//
// for every negative-balance diagnostic, then `Final balance: N`.
func (w *SimpleWriter) WriteBalance(r *model.BalanceReport) (int, error) {
	var sb strings.Builder
	if w.verbose {
		fmt.Fprintf(&sb, "Scanned %s: tag=%s policy=%s opened=%d self-closed=%d closed=%d\n",
			r.Path, r.Tag, r.Recovery, r.Opened, r.SelfClosed, r.Closed)
	}
	for _, d := range r.Diagnostics {
		fmt.Fprintf(&sb, "Line %d: %s\n", d.Line, d.Text)
		sb.WriteString(w.styles.forSeverity(d.Severity).Sprint(d.Message))
		sb.WriteString("\n")
	}

	final := fmt.Sprintf("Final balance: %d", r.FinalBalance)
	if r.FinalBalance != 0 {
		final = w.styles.high.Sprint(final)
	}
	sb.WriteString(final)
	sb.WriteString("\n")
	return io.WriteString(w.output, sb.String())
}

// WriteFragments writes one `OPEN at L<n>: <line>` or `CLOSE at L<n>: <line>`
// line per marker.
func (w *SimpleWriter) WriteFragments(r *model.FragmentReport) (int, error) {
	var sb strings.Builder
	for _, m := range r.Markers {
		label := "OPEN"
		if m.Kind == model.EventClose {
			label = "CLOSE"
		}
		fmt.Fprintf(&sb, "%s at L%d: %s\n", label, m.Line, m.Text)
	}
	if w.verbose {
		fmt.Fprintf(&sb, "Fragments in %s: %d open, %d close\n",
			r.Path, r.Count(model.EventOpen), r.Count(model.EventClose))
	}
	return io.WriteString(w.output, sb.String())
}
