// Package main provides the entry point for the tagbalance CLI.
//
// tagbalance audits JSX/TSX/HTML source files for unbalanced markup tags.
// It reports tags left open, closers with no opener and lines where a tag's
// running balance goes negative.
//
// Usage:
//
//	tagbalance audit [path...]
//	tagbalance divs <path>
//	tagbalance fragments [path]
//
// Exit status is 0 when everything is balanced, 1 when an imbalance was
// found and 2 on usage or I/O errors. See --help for all available options.
package main

// main is the entry point for tagbalance.
func main() {
	Execute()
}
