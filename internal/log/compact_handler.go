package log

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultMaxWidth is the display width string attributes are truncated to.
const DefaultMaxWidth = 80

// Ellipsis marks a truncated attribute value.
const Ellipsis = "..."

// CompactHandler wraps an slog.Handler and shortens string attribute values.
// Newlines are replaced with the visible marker `\n` and values wider than
// maxWidth display cells are cut and suffixed with Ellipsis. Width is
// measured in terminal cells so CJK text is not cut mid-column.
type CompactHandler struct {
	handler  slog.Handler
	maxWidth int
}

// NewCompactHandler creates a CompactHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used. A non-positive
// maxWidth selects DefaultMaxWidth.
func NewCompactHandler(handler slog.Handler, maxWidth int) *CompactHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	if maxWidth <= 0 {
		maxWidth = DefaultMaxWidth
	}
	return &CompactHandler{handler: handler, maxWidth: maxWidth}
}

// Enabled reports whether the handler handles records at the given level.
func (h *CompactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle compacts the record's attributes and passes it to the underlying handler.
func (h *CompactHandler) Handle(ctx context.Context, r slog.Record) error {
	compacted := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		compacted.AddAttrs(h.compactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, compacted)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *CompactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	compacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		compacted[i] = h.compactAttr(a)
	}
	return &CompactHandler{handler: h.handler.WithAttrs(compacted), maxWidth: h.maxWidth}
}

// WithGroup returns a new handler with the given group name.
func (h *CompactHandler) WithGroup(name string) slog.Handler {
	return &CompactHandler{handler: h.handler.WithGroup(name), maxWidth: h.maxWidth}
}

func (h *CompactHandler) compactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		compacted := make([]slog.Attr, len(attrs))
		for i, ga := range attrs {
			compacted[i] = h.compactAttr(ga)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(compacted...)}
	case slog.KindString:
		return slog.String(a.Key, Compact(a.Value.String(), h.maxWidth))
	default:
		return a
	}
}

// Compact flattens line breaks in s and truncates it to maxWidth display cells.
func Compact(s string, maxWidth int) string {
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// NewLogger creates a new text slog.Logger with compact attribute handling.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewCompactHandler(slog.NewTextHandler(w, handlerOptions(verbose)), DefaultMaxWidth))
}

// NewJSONLogger creates a new slog.Logger with compact attribute handling
// that outputs JSON format.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewCompactHandler(slog.NewJSONHandler(w, handlerOptions(verbose)), DefaultMaxWidth))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
