package lexer

import (
	"iter"
	"strings"

	"github.com/nao1215/tagbalance/internal/model"
	"golang.org/x/net/html"
)

// HTMLLexer recognizes tags with the golang.org/x/net/html tokenizer.
//
// Unlike LineLexer it understands comments, quoted attribute values and tags
// spanning several lines. It only tokenizes: no tree is built and no
// implied end tags are inserted, so the balance scanners still see exactly
// what is written. The tokenizer lowercases tag names, so tracked names are
// matched case-insensitively.
type HTMLLexer struct {
	tags model.TagSet
}

// NewHTMLLexer creates an HTMLLexer for the given tracked tags.
func NewHTMLLexer(tags model.TagSet) *HTMLLexer {
	names := tags.Names()
	for i, n := range names {
		names[i] = model.TagName(strings.ToLower(string(n)))
	}
	return &HTMLLexer{tags: model.NewTagSet(names...)}
}

// Name implements Lexer.
func (l *HTMLLexer) Name() string {
	return NameHTML
}

// Lex implements Lexer.
func (l *HTMLLexer) Lex(src *model.Source) iter.Seq[model.TagEvent] {
	return func(yield func(model.TagEvent) bool) {
		z := html.NewTokenizer(strings.NewReader(src.Text()))
		line := 1
		for {
			tt := z.Next()
			if tt == html.ErrorToken {
				// io.EOF or a read error; either way the input is exhausted.
				return
			}

			start := line
			line += strings.Count(string(z.Raw()), "\n")

			var kind model.EventKind
			switch tt {
			case html.StartTagToken:
				kind = model.EventOpen
			case html.EndTagToken:
				kind = model.EventClose
			case html.SelfClosingTagToken:
				kind = model.EventSelfClose
			default:
				continue
			}

			name, _ := z.TagName()
			tag := model.TagName(name)
			if !l.tags.Contains(tag) {
				continue
			}
			ev := model.TagEvent{Kind: kind, Name: tag, Line: start, Text: lineText(src, start)}
			if !yield(ev) {
				return
			}
		}
	}
}

func lineText(src *model.Source, line int) string {
	if line < 1 || line > len(src.Lines) {
		return ""
	}
	return strings.TrimSpace(src.Lines[line-1])
}
