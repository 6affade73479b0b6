package lexer

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/nao1215/tagbalance/internal/model"
)

// Names of the lexers that New can build.
const (
	NameLine = "line"
	NameHTML = "html"
)

// ErrUnknownLexer is returned by New when the name is not registered.
var ErrUnknownLexer = errors.New("unknown lexer")

// Lexer produces the tag events of a source.
//
// Implementations must be safe to call on several sources concurrently; the
// returned sequence is lazy and is consumed once.
type Lexer interface {
	// Name identifies the lexer in reports.
	Name() string

	// Lex yields the tag events of src in source order.
	Lex(src *model.Source) iter.Seq[model.TagEvent]
}

// Names returns the lexer names accepted by New.
func Names() []string {
	return []string{NameLine, NameHTML}
}

// Known reports whether name is accepted by New.
func Known(name string) bool {
	return slices.Contains(Names(), name)
}

// New returns the lexer registered under name, tracking the given tags.
func New(name string, tags model.TagSet) (Lexer, error) {
	switch name {
	case NameLine, "":
		return NewLineLexer(tags), nil
	case NameHTML:
		return NewHTMLLexer(tags), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownLexer, name, Names())
	}
}

// Collect drains a lexer into a slice. It is mostly useful in tests and for
// small inputs.
func Collect(l Lexer, src *model.Source) []model.TagEvent {
	return slices.Collect(l.Lex(src))
}
