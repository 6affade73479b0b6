// Package lexer turns source text into a lazy sequence of tag events.
//
// The balance scanners only ever see model.TagEvent values, so the way tags
// are recognized can change without touching the balance logic. Four
// implementations are provided:
//   - LineLexer: line-oriented regular expressions, used by the stack scanner
//   - CountingLexer: whole-file sanitizer plus per-line occurrence counts for
//     a single tag, used by the counting scanner
//   - HTMLLexer: the golang.org/x/net/html tokenizer, for plain HTML files
//   - FragmentLexer: JSX fragment openers and closers (<> and </>)
//
// # Known limitation
//
// LineLexer and CountingLexer match strictly within one line. A tag whose
// attributes span several lines is seen as an opener on its first line, and
// a "/>" on a later line is not associated with it. This is kept on purpose:
// the lexers approximate structure, they do not parse it.
package lexer
