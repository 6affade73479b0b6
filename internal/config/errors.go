package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers can match them with errors.Is.
var (
	// ErrNoTarget is returned when there is no file to scan.
	ErrNoTarget = errors.New("no target specified: provide a file path or set audit.target")

	// ErrInvalidJobs is returned when the number of concurrent jobs is not positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown are given.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrUnknownLexer is returned when the lexer name is not registered.
	ErrUnknownLexer = errors.New("unknown lexer: must be one of line, html")

	// ErrNoTrackedTags is returned when the tracked tag allow-list is empty.
	ErrNoTrackedTags = errors.New("no tracked tags: at least one tag name is required")

	// ErrInvalidTagName is returned when a tag name contains characters the
	// lexers cannot match.
	ErrInvalidTagName = errors.New("invalid tag name: only letters and digits are allowed")
)
