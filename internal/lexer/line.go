package lexer

import (
	"iter"
	"regexp"
	"strings"

	"github.com/nao1215/tagbalance/internal/model"
)

const lineCommentMarker = "//"

var (
	// lineOpenPattern matches "<name" followed by whitespace, ">" or the end
	// of the line. The end-of-line case makes "<div" with attributes on the
	// following lines count as an opener.
	lineOpenPattern = regexp.MustCompile(`<([a-zA-Z0-9]+)(?:\s|>|$)`)

	lineClosePattern = regexp.MustCompile(`</([a-zA-Z0-9]+)>`)

	lineSelfClosingPattern = regexp.MustCompile(`<([a-zA-Z0-9]+)[^>]*/>`)
)

// LineLexer recognizes tags one line at a time with regular expressions.
//
// JSX block comments are removed first. For every line it then blanks
// string literals, drops the "//" comment, removes self-closing tags, and
// reports openers followed by closers. All openers of a line are yielded
// before its closers. Line numbers always refer to the input.
type LineLexer struct {
	tags model.TagSet
}

// NewLineLexer creates a LineLexer for the given tracked tags.
func NewLineLexer(tags model.TagSet) *LineLexer {
	return &LineLexer{tags: tags}
}

// Name implements Lexer.
func (l *LineLexer) Name() string {
	return NameLine
}

// Lex implements Lexer.
func (l *LineLexer) Lex(src *model.Source) iter.Seq[model.TagEvent] {
	return func(yield func(model.TagEvent) bool) {
		if len(src.Lines) == 0 {
			return
		}
		for i, line := range stripSource(src.Text()) {
			for _, ev := range l.lexLine(i+1, line) {
				if !yield(ev) {
					return
				}
			}
		}
	}
}

// lexLine returns the tracked events of a single stripped line.
func (l *LineLexer) lexLine(lineNum int, clean string) []model.TagEvent {
	text := strings.TrimSpace(clean)

	var events []model.TagEvent
	emit := func(kind model.EventKind, name string) {
		tag := model.TagName(name)
		if !l.tags.Contains(tag) {
			return
		}
		events = append(events, model.TagEvent{Kind: kind, Name: tag, Line: lineNum, Text: text})
	}

	for _, m := range lineSelfClosingPattern.FindAllStringSubmatch(clean, -1) {
		emit(model.EventSelfClose, m[1])
	}
	clean = lineSelfClosingPattern.ReplaceAllString(clean, "")

	for _, m := range lineOpenPattern.FindAllStringSubmatch(clean, -1) {
		emit(model.EventOpen, m[1])
	}
	for _, m := range lineClosePattern.FindAllStringSubmatch(clean, -1) {
		emit(model.EventClose, m[1])
	}
	return events
}
