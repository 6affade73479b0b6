// Package report renders scan results.
//
// This package contains writers for different output formats:
//   - SimpleWriter: the plain text lines printed by the audit, divs and
//     fragments commands, optionally colored
//   - JSONWriter: structured JSON output for tool integration
//   - MarkdownWriter: a Markdown document for sharing in reviews
//
// Report data structures live in the model package; writers only format
// them. All writers implement the Writer interface so the CLI can pick one
// by Format.
package report
