package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/tagbalance/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is embedded in every document.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion sets the tool version recorded in the document.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport wraps scan results with metadata. Every command emits exactly
// one document so output can be piped straight into jq.
type JSONReport struct {
	// Version is the tagbalance version that generated this report.
	Version string `json:"version,omitempty"`

	// Command is the subcommand that produced the results.
	Command string `json:"command"`

	// Imbalanced is true when any of the reports found a problem.
	Imbalanced bool `json:"imbalanced"`

	// Reports holds the per-file results.
	Reports any `json:"reports"`
}

// WriteAudit outputs all audit reports as one document.
func (w *JSONWriter) WriteAudit(reports ...*model.AuditReport) (int, error) {
	imbalanced := false
	for _, r := range reports {
		imbalanced = imbalanced || r.HasImbalance()
	}
	if reports == nil {
		reports = []*model.AuditReport{}
	}
	return w.writeJSON(&JSONReport{
		Version:    w.version,
		Command:    "audit",
		Imbalanced: imbalanced,
		Reports:    reports,
	})
}

// WriteBalance outputs the balance report.
func (w *JSONWriter) WriteBalance(report *model.BalanceReport) (int, error) {
	return w.writeJSON(&JSONReport{
		Version:    w.version,
		Command:    "divs",
		Imbalanced: report.HasImbalance(),
		Reports:    []*model.BalanceReport{report},
	})
}

// WriteFragments outputs the fragment report.
func (w *JSONWriter) WriteFragments(report *model.FragmentReport) (int, error) {
	return w.writeJSON(&JSONReport{
		Version:    w.version,
		Command:    "fragments",
		Imbalanced: report.HasImbalance(),
		Reports:    []*model.FragmentReport{report},
	})
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
