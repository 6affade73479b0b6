package model

// Severity represents how strongly a finding indicates broken markup.
//
// Severity is an ordered integer so findings can be sorted and compared;
// String provides the label used in reports.
type Severity int

const (
	// SeverityInfo is informational only.
	SeverityInfo Severity = iota

	// SeverityLow marks findings that are usually the side effect of another
	// problem, such as tags closed implicitly by recovery.
	SeverityLow

	// SeverityMedium marks malformed markup that may still render, such as a
	// closing tag with no opener.
	SeverityMedium

	// SeverityHigh marks structural imbalance: tags left open at end of file
	// or more closers than openers.
	SeverityHigh
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	default:
		return "UNKNOWN"
	}
}

// DiagnosticInfo holds the metadata of a diagnostic kind.
type DiagnosticInfo struct {
	Severity       Severity
	Impact         string
	Recommendation string
}

// diagnosticInfoMapping is the single source of truth for how each kind of
// diagnostic is ranked and explained in reports.
var diagnosticInfoMapping = map[DiagnosticKind]DiagnosticInfo{
	DiagnosticUnclosed: {
		Severity:       SeverityHigh,
		Impact:         "The tag is opened but never closed, so every following sibling is nested inside it.",
		Recommendation: "Add the missing closing tag or make the element self-closing.",
	},
	DiagnosticNegativeBalance: {
		Severity:       SeverityHigh,
		Impact:         "More closing tags than opening tags were seen up to this line.",
		Recommendation: "Remove the extra closing tag or restore the opener it belongs to.",
	},
	DiagnosticStrayCloser: {
		Severity:       SeverityMedium,
		Impact:         "A closing tag appears with no matching opener in scope.",
		Recommendation: "Remove the closing tag or add the opener it was meant to close.",
	},
	DiagnosticImplicitClose: {
		Severity:       SeverityLow,
		Impact:         "The tag was closed implicitly by an outer closing tag.",
		Recommendation: "Close the tag explicitly before closing its parent.",
	},
}

// GetDiagnosticInfo returns the metadata for a diagnostic kind.
// Unknown kinds are reported as informational.
func GetDiagnosticInfo(kind DiagnosticKind) DiagnosticInfo {
	if info, ok := diagnosticInfoMapping[kind]; ok {
		return info
	}
	return DiagnosticInfo{
		Severity:       SeverityInfo,
		Impact:         "Unknown diagnostic kind. Review manually.",
		Recommendation: "Inspect the reported line.",
	}
}

// GetSeverity returns the severity for a diagnostic kind.
func GetSeverity(kind DiagnosticKind) Severity {
	return GetDiagnosticInfo(kind).Severity
}

// MarshalText encodes the severity as its label so JSON reports stay readable.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
