package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/tagbalance/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Column widths of the source snippets in Markdown tables.
const (
	maxMessageWidth = 60
	maxSourceWidth  = 50
)

// MarkdownWriter outputs reports in Markdown format, for pasting into pull
// requests and issues.
type MarkdownWriter struct {
	baseWriter

	version string
	title   cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, version string) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		version:    version,
		title:      cases.Title(language.English),
	}
}

// WriteAudit outputs the audit reports as one document with a section per file.
func (w *MarkdownWriter) WriteAudit(reports ...*model.AuditReport) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Tag Balance Audit")
	md.PlainText("")

	for _, r := range reports {
		w.writeAudit(md, r)
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeAudit(md *markdown.Markdown, r *model.AuditReport) {
	md.H2(r.Path)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", "`" + r.Path + "`"},
			{"Scan Date", r.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Lexer", r.Lexer},
			{"Recovery", r.Recovery},
			{"Tracked Tags", model.NewTagSet(r.TrackedTags...).String()},
			{"Opened", strconv.Itoa(r.Opened)},
			{"Closed", strconv.Itoa(r.Closed)},
			{"Remaining Stack Size", strconv.Itoa(len(r.Remaining))},
		},
	})
	md.PlainText("")

	switch {
	case len(r.Remaining) > 0:
		md.Cautionf("%d tag(s) are never closed.", len(r.Remaining))
	case r.StrayClosers > 0:
		md.Warningf("%d closing tag(s) match no open tag.", r.StrayClosers)
	case r.ImplicitCloses > 0:
		md.Importantf("%d tag(s) were closed implicitly by an outer closer.", r.ImplicitCloses)
	default:
		md.Tip("All tracked tags are balanced.")
	}
	md.PlainText("")

	if len(r.Remaining) > 0 {
		items := make([]string, len(r.Remaining))
		for i, e := range r.Remaining {
			items[i] = "`<" + string(e.Tag) + ">` opened at L" + strconv.Itoa(e.Line)
		}
		md.PlainText("### Open Stack")
		md.PlainText("")
		md.BulletList(items...)
		md.PlainText("")
	}

	w.writeDiagnostics(md, r.Diagnostics)
}

// WriteBalance outputs the balance report.
func (w *MarkdownWriter) WriteBalance(r *model.BalanceReport) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Tag Balance: " + r.Path)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"File", "`" + r.Path + "`"},
			{"Scan Date", r.DateScanned.Format("2006-01-02 15:04:05 MST")},
			{"Tag", "`" + string(r.Tag) + "`"},
			{"Policy", r.Recovery},
			{"Opened", strconv.Itoa(r.Opened)},
			{"Self-Closed", strconv.Itoa(r.SelfClosed)},
			{"Closed", strconv.Itoa(r.Closed)},
			{"Final Balance", strconv.Itoa(r.FinalBalance)},
		},
	})
	md.PlainText("")

	switch {
	case r.FinalBalance > 0:
		md.Cautionf("%d more `<%s>` opened than closed.", r.FinalBalance, r.Tag)
	case len(r.Diagnostics) > 0:
		md.Warningf("The balance went negative on %d line(s).", len(r.Diagnostics))
	case r.FinalBalance < 0:
		md.Warningf("%d more `</%s>` than openers.", -r.FinalBalance, r.Tag)
	default:
		md.Tip("Balanced.")
	}
	md.PlainText("")

	w.writeDiagnostics(md, r.Diagnostics)
	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteFragments outputs the fragment markers as a table.
func (w *MarkdownWriter) WriteFragments(r *model.FragmentReport) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Fragments: " + r.Path)
	md.PlainText("")

	if len(r.Markers) == 0 {
		md.PlainText("No fragments found.")
		md.PlainText("")
	} else {
		rows := make([][]string, len(r.Markers))
		for i, m := range r.Markers {
			rows[i] = []string{
				strings.ToUpper(m.Kind.String()),
				strconv.Itoa(m.Line),
				codeSpan(truncate(m.Text, maxSourceWidth)),
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Marker", "Line", "Source"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if r.HasImbalance() {
		md.Warningf("%d fragment opener(s) but %d closer(s).",
			r.Count(model.EventOpen), r.Count(model.EventClose))
		md.PlainText("")
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writeDiagnostics writes a severity chart and a table of diagnostics,
// highest severity first.
func (w *MarkdownWriter) writeDiagnostics(md *markdown.Markdown, diags []model.Diagnostic) {
	md.PlainText("### Diagnostics")
	md.PlainText("")
	if len(diags) == 0 {
		md.PlainText("No diagnostics.")
		md.PlainText("")
		return
	}

	w.writePieChart(md, diags)

	sorted := model.SortedBySeverity(diags)
	rows := make([][]string, len(sorted))
	for i, d := range sorted {
		src := "-"
		if d.Text != "" {
			src = codeSpan(truncate(d.Text, maxSourceWidth))
		}
		rows[i] = []string{
			d.Severity.String(),
			w.kindTitle(d.Kind),
			strconv.Itoa(d.Line),
			codeSpan(truncate(d.Message, maxMessageWidth)),
			src,
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Kind", "Line", "Message", "Source"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, kind := range []model.DiagnosticKind{
		model.DiagnosticUnclosed,
		model.DiagnosticNegativeBalance,
		model.DiagnosticStrayCloser,
		model.DiagnosticImplicitClose,
	} {
		if n := countKind(diags, kind); n > 0 {
			info := model.GetDiagnosticInfo(kind)
			md.Details(w.kindTitle(kind)+" ("+strconv.Itoa(n)+")", info.Impact+" "+info.Recommendation)
		}
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart for severity distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, diags []model.Diagnostic) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Diagnostic Severity Distribution"),
		piechart.WithShowData(true),
	)

	counts := model.SeverityCounts(diags)
	for _, sev := range []model.Severity{model.SeverityHigh, model.SeverityMedium, model.SeverityLow, model.SeverityInfo} {
		if counts[sev] > 0 {
			chart.LabelAndIntValue(w.title.String(sev.String()), uint64(counts[sev])) //nolint:gosec // counts are never negative
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	footer := "*Report generated by tagbalance"
	if w.version != "" {
		footer += " " + w.version
	}
	md.PlainText(footer + "*")
}

// kindTitle turns "stray-closer" into "Stray Closer".
func (w *MarkdownWriter) kindTitle(kind model.DiagnosticKind) string {
	return w.title.String(strings.ReplaceAll(string(kind), "-", " "))
}

func countKind(diags []model.Diagnostic, kind model.DiagnosticKind) int {
	n := 0
	for _, d := range diags {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// truncate shortens s to maxWidth display cells with an ellipsis.
func truncate(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// codeSpan wraps s in backticks and escapes table pipes.
func codeSpan(s string) string {
	return "`" + strings.ReplaceAll(s, "|", `\|`) + "`"
}
