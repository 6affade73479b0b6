package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/tagbalance/internal/lexer"
	"github.com/nao1215/tagbalance/internal/model"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "tagbalance"

	// DefaultTarget is the file audited when no path is given on the command line.
	DefaultTarget = "App.tsx"

	// DefaultLexer is the lexer used by the audit command.
	DefaultLexer = lexer.NameLine

	// DefaultCountedTag is the tag counted by the divs command.
	DefaultCountedTag = "div"

	// DefaultJobs is the number of files audited concurrently.
	// Scans are CPU-bound and short; a handful of workers is enough.
	DefaultJobs = 4
)

// Config holds all options of a run. It is populated from defaults, then
// from the configuration file, then from CLI flags, and passed explicitly
// to the code that needs it.
type Config struct {
	// Targets are the files to scan, as given on the command line.
	Targets []string

	// DefaultTarget is scanned by the audit command when Targets is empty.
	DefaultTarget string

	// TrackedTags is the allow-list of tag names the audit command inspects.
	TrackedTags []string

	// Lexer is the name of the lexer used by the audit command.
	Lexer string

	// Strict disables stack truncation on mismatched closers.
	Strict bool

	// ReportUnmatchedClosers reports closers that match no open tag.
	// When false they are silently ignored.
	ReportUnmatchedClosers bool

	// CountedTag is the tag counted by the divs command.
	CountedTag string

	// KeepNegative keeps a negative running balance instead of resetting it to zero.
	KeepNegative bool

	// Jobs is the number of files audited concurrently.
	Jobs int

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the configuration file given with --config.
	// If empty, the file is searched for as described in FindConfigFile.
	ConfigFilePath string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the file the report is written to instead of stdout.
	ReportFile string

	// Color enables ANSI colors in the text report.
	Color bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	tags := make([]string, len(model.DefaultTrackedTags))
	for i, t := range model.DefaultTrackedTags {
		tags[i] = string(t)
	}
	return &Config{
		DefaultTarget:          DefaultTarget,
		TrackedTags:            tags,
		Lexer:                  DefaultLexer,
		ReportUnmatchedClosers: true,
		CountedTag:             DefaultCountedTag,
		Jobs:                   DefaultJobs,
	}
}

// XDGConfigDir returns the XDG config directory for tagbalance.
// On Linux: ~/.config/tagbalance
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// TagSet returns the tracked tags as a model.TagSet.
func (c *Config) TagSet() model.TagSet {
	return model.ParseTagSet(c.TrackedTags)
}

// AuditTargets returns the files the audit command scans: the command line
// targets, or the default target when none were given.
func (c *Config) AuditTargets() []string {
	if len(c.Targets) > 0 {
		return c.Targets
	}
	if c.DefaultTarget == "" {
		return nil
	}
	return []string{c.DefaultTarget}
}

// ApplyFile overlays the values set in a configuration file.
// Zero values in the file leave the current setting untouched.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	if f.Audit.Target != "" {
		c.DefaultTarget = f.Audit.Target
	}
	if len(f.Audit.Tags) > 0 {
		c.TrackedTags = f.Audit.Tags
	}
	if f.Audit.Lexer != "" {
		c.Lexer = f.Audit.Lexer
	}
	if f.Audit.Strict != nil {
		c.Strict = *f.Audit.Strict
	}
	if f.Audit.ReportUnmatchedClosers != nil {
		c.ReportUnmatchedClosers = *f.Audit.ReportUnmatchedClosers
	}
	if f.Audit.Jobs != 0 {
		c.Jobs = f.Audit.Jobs
	}
	if f.Divs.Tag != "" {
		c.CountedTag = f.Divs.Tag
	}
	if f.Divs.KeepNegative != nil {
		c.KeepNegative = *f.Divs.KeepNegative
	}
	if f.Output.Color != nil {
		c.Color = *f.Output.Color
	}
}

// Validate checks that the configuration is usable and returns the first
// problem found.
func (c *Config) Validate() error {
	if len(c.AuditTargets()) == 0 {
		return ErrNoTarget
	}
	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if !lexer.Known(c.Lexer) {
		return ErrUnknownLexer
	}
	tags := c.TagSet()
	if tags.Len() == 0 {
		return ErrNoTrackedTags
	}
	for _, t := range tags.Names() {
		if !t.Valid() {
			return ErrInvalidTagName
		}
	}
	if !model.TagName(c.CountedTag).Valid() {
		return ErrInvalidTagName
	}
	return nil
}
