package model

import (
	"slices"
	"time"
)

// StackEntry is an opened tag that has not been matched by a closer yet.
type StackEntry struct {
	Tag  TagName `json:"tag"`
	Line int     `json:"line"`
}

// AuditReport is the result of scanning one file with the stack scanner.
type AuditReport struct {
	// Path is the scanned file.
	Path string `json:"path"`

	// DateScanned is when the scan finished.
	DateScanned time.Time `json:"date_scanned"`

	// Lexer is the name of the lexer that produced the tag events.
	Lexer string `json:"lexer"`

	// Recovery is the name of the recovery policy applied to mismatched closers.
	Recovery string `json:"recovery"`

	// TrackedTags is the allow-list used for the scan.
	TrackedTags []TagName `json:"tracked_tags"`

	// Opened and Closed count the tracked open and close events seen.
	Opened int `json:"opened"`
	Closed int `json:"closed"`

	// Remaining holds the tags still open at end of input, bottom of the
	// stack first.
	Remaining []StackEntry `json:"remaining"`

	// StrayClosers counts closers that matched nothing in the stack.
	// It stays zero when stray closers are not reported.
	StrayClosers int `json:"stray_closers"`

	// ImplicitCloses counts entries dropped by stack truncation.
	ImplicitCloses int `json:"implicit_closes"`

	// Diagnostics lists every finding in the order it was produced.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// NewAuditReport creates an empty AuditReport for path.
func NewAuditReport(path string) *AuditReport {
	return &AuditReport{
		Path:        path,
		Remaining:   make([]StackEntry, 0),
		Diagnostics: make([]Diagnostic, 0),
	}
}

// HasImbalance reports whether the scan found anything wrong.
func (r *AuditReport) HasImbalance() bool {
	return len(r.Remaining) > 0 || len(r.Diagnostics) > 0
}

// DiagnosticsOf returns the diagnostics of the given kind.
func (r *AuditReport) DiagnosticsOf(kind DiagnosticKind) []Diagnostic {
	return filterDiagnostics(r.Diagnostics, kind)
}

// BalanceReport is the result of scanning one file with the counting scanner.
type BalanceReport struct {
	// Path is the scanned file.
	Path string `json:"path"`

	// DateScanned is when the scan finished.
	DateScanned time.Time `json:"date_scanned"`

	// Tag is the single tag that was counted.
	Tag TagName `json:"tag"`

	// Recovery is the name of the policy applied when the balance goes negative.
	Recovery string `json:"recovery"`

	// Opened, SelfClosed and Closed are the raw occurrence counts.
	Opened     int `json:"opened"`
	SelfClosed int `json:"self_closed"`
	Closed     int `json:"closed"`

	// FinalBalance is the running balance at end of input. After a reset it
	// is not comparable to a whole-file opened minus closed count.
	FinalBalance int `json:"final_balance"`

	// Diagnostics lists the negative balance events in line order.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// NewBalanceReport creates an empty BalanceReport for path.
func NewBalanceReport(path string, tag TagName) *BalanceReport {
	return &BalanceReport{
		Path:        path,
		Tag:         tag,
		Diagnostics: make([]Diagnostic, 0),
	}
}

// HasImbalance reports whether the file is unbalanced.
func (r *BalanceReport) HasImbalance() bool {
	return r.FinalBalance != 0 || len(r.Diagnostics) > 0
}

// FragmentMarker is a line holding a JSX fragment opener or closer.
type FragmentMarker struct {
	Kind EventKind `json:"kind"`
	Line int       `json:"line"`
	Text string    `json:"text"`
}

// FragmentReport lists the fragment markers of one file.
type FragmentReport struct {
	Path    string           `json:"path"`
	Markers []FragmentMarker `json:"markers"`
}

// Count returns the number of markers of the given kind.
func (r *FragmentReport) Count(kind EventKind) int {
	n := 0
	for _, m := range r.Markers {
		if m.Kind == kind {
			n++
		}
	}
	return n
}

// HasImbalance reports whether the numbers of fragment openers and closers differ.
func (r *FragmentReport) HasImbalance() bool {
	return r.Count(EventOpen) != r.Count(EventClose)
}

// SeverityCounts tallies diagnostics by severity.
func SeverityCounts(diags []Diagnostic) map[Severity]int {
	counts := make(map[Severity]int, 4)
	for _, d := range diags {
		counts[d.Severity]++
	}
	return counts
}

// SortedBySeverity returns a copy of diags ordered by severity (highest
// first) and then by line.
func SortedBySeverity(diags []Diagnostic) []Diagnostic {
	out := slices.Clone(diags)
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		if a.Severity != b.Severity {
			return int(b.Severity) - int(a.Severity)
		}
		return a.Line - b.Line
	})
	return out
}

func filterDiagnostics(diags []Diagnostic, kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
