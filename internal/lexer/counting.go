package lexer

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nao1215/tagbalance/internal/model"
)

var (
	doubleQuotedPattern = regexp.MustCompile(`"[^"]*"`)
	singleQuotedPattern = regexp.MustCompile(`'[^']*'`)

	// jsxBlockCommentPattern matches {/* ... */}, the comment form JSX allows
	// between elements.
	jsxBlockCommentPattern = regexp.MustCompile(`(?s)\{\s*/\*.*?\*/\s*\}`)

	lineCommentPattern = regexp.MustCompile(`//.*`)
)

// CountingLexer counts the occurrences of a single tag per line after
// removing string literals and comments from the whole text.
//
// Events are raw pattern occurrences: a self-closing "<div/>" yields both an
// EventOpen and an EventSelfClose, so a consumer computes
// opens - selfClosed - closes per line. The events are meant for
// balance.CounterScanner, not for the stack scanner.
type CountingLexer struct {
	tag             model.TagName
	opener          string
	closer          string
	selfClosingTags *regexp.Regexp
}

// NewCountingLexer creates a CountingLexer for tag.
func NewCountingLexer(tag model.TagName) *CountingLexer {
	quoted := regexp.QuoteMeta(string(tag))
	return &CountingLexer{
		tag:             tag,
		opener:          "<" + string(tag),
		closer:          "</" + string(tag),
		selfClosingTags: regexp.MustCompile(`<` + quoted + `[^>]*/>`),
	}
}

// Name implements Lexer.
func (l *CountingLexer) Name() string {
	return "counting"
}

// Lex implements Lexer.
func (l *CountingLexer) Lex(src *model.Source) iter.Seq[model.TagEvent] {
	return func(yield func(model.TagEvent) bool) {
		lines := strings.Split(Sanitize(src.Text()), "\n")
		for i, line := range lines {
			text := strings.TrimSpace(line)
			emit := func(kind model.EventKind, n int) bool {
				for range n {
					if !yield(model.TagEvent{Kind: kind, Name: l.tag, Line: i + 1, Text: text}) {
						return false
					}
				}
				return true
			}
			if !emit(model.EventOpen, l.countOpeners(line)) {
				return
			}
			if !emit(model.EventSelfClose, len(l.selfClosingTags.FindAllStringIndex(line, -1))) {
				return
			}
			if !emit(model.EventClose, strings.Count(line, l.closer)) {
				return
			}
		}
	}
}

// countOpeners counts "<tag" occurrences that are not followed by a word
// character, so "<divider" is not an opener of "div".
func (l *CountingLexer) countOpeners(line string) int {
	n := 0
	rest := line
	for {
		idx := strings.Index(rest, l.opener)
		if idx < 0 {
			return n
		}
		rest = rest[idx+len(l.opener):]
		if r, _ := utf8.DecodeRuneInString(rest); rest == "" || !isWordRune(r) {
			n++
		}
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Sanitize blanks out string literals and removes comments so that tag-like
// text inside them is not counted.
//
// Double- and single-quoted literals become "" and '' respectively, JSX block
// comments {/* */} and // line comments are removed. Newlines inside removed
// text are kept so line numbers still match the input.
func Sanitize(text string) string {
	text = replaceKeepingNewlines(doubleQuotedPattern, text, `""`)
	text = replaceKeepingNewlines(singleQuotedPattern, text, `''`)
	text = replaceKeepingNewlines(jsxBlockCommentPattern, text, "")
	return lineCommentPattern.ReplaceAllString(text, "")
}

func replaceKeepingNewlines(re *regexp.Regexp, text, repl string) string {
	return re.ReplaceAllStringFunc(text, func(match string) string {
		return repl + strings.Repeat("\n", strings.Count(match, "\n"))
	})
}
