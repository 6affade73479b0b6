package lexer

import (
	"strings"
)

// StripLine blanks the string literals of one line and drops its "//"
// comment. A quoted literal becomes an empty literal of the same quote style,
// so `const s = "<div>"` turns into `const s = ""`. Escaped quotes do not end
// a literal. An unterminated quote, such as the apostrophe in "don't", is
// left alone together with the rest of the line.
func StripLine(line string) string {
	var sb strings.Builder
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"' || c == '\'':
			end := findClosingQuote(line, i+1, c)
			if end < 0 {
				sb.WriteString(line[i:])
				return sb.String()
			}
			sb.WriteByte(c)
			sb.WriteByte(c)
			i = end
		case strings.HasPrefix(line[i:], lineCommentMarker):
			return sb.String()
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// stripSource removes JSX block comments from the whole text, keeping their
// newlines, and then applies StripLine to every line.
func stripSource(text string) []string {
	lines := strings.Split(replaceKeepingNewlines(jsxBlockCommentPattern, text, ""), "\n")
	for i, line := range lines {
		lines[i] = StripLine(line)
	}
	return lines
}

// findClosingQuote returns the index of the first unescaped quote at or
// after start, or -1.
func findClosingQuote(line string, start int, quote byte) int {
	for i := start; i < len(line); i++ {
		if line[i] == quote && !isEscaped(line, i) {
			return i
		}
	}
	return -1
}

// isEscaped reports whether the byte at pos is preceded by an odd number of
// backslashes.
func isEscaped(line string, pos int) bool {
	count := 0
	for i := pos - 1; i >= 0 && line[i] == '\\'; i-- {
		count++
	}
	return count%2 == 1
}
