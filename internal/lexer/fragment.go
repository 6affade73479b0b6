package lexer

import (
	"iter"
	"strings"

	"github.com/nao1215/tagbalance/internal/model"
)

const (
	fragmentOpener = "<>"
	fragmentCloser = "</>"
)

// FragmentLexer reports the lines holding JSX fragment openers and closers.
//
// Each line yields at most one opener and one closer event, however many
// fragments it contains. Events carry an empty tag name. No comment or
// string stripping is applied.
type FragmentLexer struct{}

// NewFragmentLexer creates a FragmentLexer.
func NewFragmentLexer() *FragmentLexer {
	return &FragmentLexer{}
}

// Name implements Lexer.
func (l *FragmentLexer) Name() string {
	return "fragment"
}

// Lex implements Lexer.
func (l *FragmentLexer) Lex(src *model.Source) iter.Seq[model.TagEvent] {
	return func(yield func(model.TagEvent) bool) {
		for i, line := range src.Lines {
			text := strings.TrimSpace(line)
			if strings.Contains(line, fragmentOpener) {
				if !yield(model.TagEvent{Kind: model.EventOpen, Line: i + 1, Text: text}) {
					return
				}
			}
			if strings.Contains(line, fragmentCloser) {
				if !yield(model.TagEvent{Kind: model.EventClose, Line: i + 1, Text: text}) {
					return
				}
			}
		}
	}
}
