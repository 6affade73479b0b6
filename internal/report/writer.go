package report

import (
	"fmt"
	"io"

	"github.com/nao1215/tagbalance/internal/model"
)

// Writer defines the interface for report output.
// Each method returns the number of bytes written and any error encountered.
type Writer interface {
	// WriteAudit outputs the results of the stack scanner, one report per file.
	WriteAudit(reports ...*model.AuditReport) (int, error)

	// WriteBalance outputs the result of the counting scanner.
	WriteBalance(report *model.BalanceReport) (int, error)

	// WriteFragments outputs the fragment markers of a file.
	WriteFragments(report *model.FragmentReport) (int, error)
}

// Format selects a Writer implementation.
type Format string

const (
	// FormatText is the plain text format.
	FormatText Format = "text"
	// FormatJSON is the JSON format.
	FormatJSON Format = "json"
	// FormatMarkdown is the Markdown format.
	FormatMarkdown Format = "markdown"
)

// Options are the settings shared by all writers.
type Options struct {
	// Color enables ANSI colors. Only the text format uses it.
	Color bool

	// Verbose adds scan details to the text format.
	Verbose bool

	// Version is embedded in JSON and Markdown output.
	Version string
}

// New returns the Writer for the given format.
func New(output io.Writer, format Format, opts Options) (Writer, error) {
	switch format {
	case FormatText, "":
		return NewSimpleWriter(output, WithColor(opts.Color), WithVerbose(opts.Verbose)), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(opts.Version)), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output, opts.Version), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
