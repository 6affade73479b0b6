package model

import "fmt"

// DiagnosticKind identifies what a Diagnostic is about.
type DiagnosticKind string

const (
	// DiagnosticUnclosed is a tag still open at end of input.
	DiagnosticUnclosed DiagnosticKind = "unclosed"

	// DiagnosticStrayCloser is a closing tag with no opener in the stack.
	DiagnosticStrayCloser DiagnosticKind = "stray-closer"

	// DiagnosticImplicitClose is an entry dropped from the stack because a
	// closer further down the stack was matched.
	DiagnosticImplicitClose DiagnosticKind = "implicit-close"

	// DiagnosticNegativeBalance is a line where the running balance went below zero.
	DiagnosticNegativeBalance DiagnosticKind = "negative-balance"
)

// Diagnostic is one finding of a scan.
type Diagnostic struct {
	Kind     DiagnosticKind `json:"kind"`
	Severity Severity       `json:"severity"`
	Tag      TagName        `json:"tag,omitempty"`

	// Line is the 1-based line the finding refers to.
	Line int `json:"line"`

	// Message is a one-line description suitable for terminal output.
	Message string `json:"message"`

	// Text is the offending line, trimmed.
	Text string `json:"text,omitempty"`
}

// NewDiagnostic creates a Diagnostic with the severity of its kind.
func NewDiagnostic(kind DiagnosticKind, tag TagName, line int, format string, args ...any) Diagnostic {
	return Diagnostic{
		Kind:     kind,
		Severity: GetSeverity(kind),
		Tag:      tag,
		Line:     line,
		Message:  fmt.Sprintf(format, args...),
	}
}

// WithText returns a copy of d carrying the given line text.
func (d Diagnostic) WithText(text string) Diagnostic {
	d.Text = text
	return d
}
