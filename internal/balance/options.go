package balance

import (
	"log/slog"

	"github.com/nao1215/tagbalance/internal/lexer"
	"github.com/nao1215/tagbalance/internal/model"
)

// DefaultCountedTag is the tag counted by Check when none is given.
const DefaultCountedTag model.TagName = "div"

// options holds the settings shared by Audit, Check and Fragments.
type options struct {
	tags            model.TagSet
	lexer           lexer.Lexer
	recovery        RecoveryPolicy
	negative        NegativePolicy
	reportUnmatched bool
	countedTag      model.TagName
	logger          *slog.Logger
}

// Option configures a scan.
type Option func(*options)

// WithTags sets the tracked tag allow-list for Audit.
func WithTags(tags model.TagSet) Option {
	return func(o *options) {
		o.tags = tags
	}
}

// WithLexer sets the lexer used by Audit. By default a LineLexer for the
// tracked tags is used.
func WithLexer(l lexer.Lexer) Option {
	return func(o *options) {
		o.lexer = l
	}
}

// WithRecovery sets the stack scanner's mismatch policy.
func WithRecovery(p RecoveryPolicy) Option {
	return func(o *options) {
		o.recovery = p
	}
}

// WithNegativePolicy sets the counter scanner's negative balance policy.
func WithNegativePolicy(p NegativePolicy) Option {
	return func(o *options) {
		o.negative = p
	}
}

// WithReportUnmatchedClosers controls whether stray closers are reported.
// They are reported by default.
func WithReportUnmatchedClosers(report bool) Option {
	return func(o *options) {
		o.reportUnmatched = report
	}
}

// WithCountedTag sets the single tag counted by Check.
func WithCountedTag(tag model.TagName) Option {
	return func(o *options) {
		if tag != "" {
			o.countedTag = tag
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		tags:            model.NewTagSet(model.DefaultTrackedTags...),
		recovery:        RecoveryTruncateOnMismatch,
		negative:        NegativeResetToZero,
		reportUnmatched: true,
		countedTag:      DefaultCountedTag,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.lexer == nil {
		o.lexer = lexer.NewLineLexer(o.tags)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
