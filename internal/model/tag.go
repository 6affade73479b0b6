package model

import (
	"regexp"
	"slices"
	"strings"
)

// TagName is the name of a markup tag such as "div" or "form".
type TagName string

// DefaultTrackedTags is the allow-list inspected when nothing else is configured.
var DefaultTrackedTags = []TagName{"div", "form", "section", "main"}

// tagNamePattern matches the names the lexers are able to recognize.
var tagNamePattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Valid reports whether the name can appear in a tag the lexers recognize.
func (n TagName) Valid() bool {
	return tagNamePattern.MatchString(string(n))
}

// TagSet is an allow-list of tracked tag names. Lookups are case-sensitive,
// the same way the patterns that produce the names are.
type TagSet struct {
	names []TagName
	index map[TagName]struct{}
}

// NewTagSet creates a TagSet from the given names. Duplicates and surrounding
// whitespace are dropped while source order is kept.
func NewTagSet(names ...TagName) TagSet {
	set := TagSet{index: make(map[TagName]struct{}, len(names))}
	for _, n := range names {
		n = TagName(strings.TrimSpace(string(n)))
		if n == "" {
			continue
		}
		if _, ok := set.index[n]; ok {
			continue
		}
		set.index[n] = struct{}{}
		set.names = append(set.names, n)
	}
	return set
}

// ParseTagSet builds a TagSet from raw strings, as read from flags or config files.
func ParseTagSet(raw []string) TagSet {
	names := make([]TagName, 0, len(raw))
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			names = append(names, TagName(part))
		}
	}
	return NewTagSet(names...)
}

// Contains reports whether name is tracked.
func (s TagSet) Contains(name TagName) bool {
	_, ok := s.index[name]
	return ok
}

// Names returns the tracked names in the order they were added.
func (s TagSet) Names() []TagName {
	return slices.Clone(s.names)
}

// Len returns the number of tracked names.
func (s TagSet) Len() int {
	return len(s.names)
}

// String returns the names joined by commas.
func (s TagSet) String() string {
	parts := make([]string, len(s.names))
	for i, n := range s.names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ",")
}

// EventKind classifies a TagEvent.
type EventKind int

const (
	// EventOpen is an opening tag such as <div>.
	EventOpen EventKind = iota

	// EventClose is a closing tag such as </div>.
	EventClose

	// EventSelfClose is a tag that closes itself, such as <div/>.
	EventSelfClose
)

// String returns the lowercase name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventOpen:
		return "open"
	case EventClose:
		return "close"
	case EventSelfClose:
		return "self-close"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind as its name.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// TagEvent is one tag occurrence reported by a lexer.
// An empty Name denotes a JSX fragment (<> or </>).
type TagEvent struct {
	Kind EventKind `json:"kind"`
	Name TagName   `json:"name"`

	// Line is the 1-based source line.
	Line int `json:"line"`

	// Text is the line the event was found on, after comments and strings
	// were removed by the lexer.
	Text string `json:"text,omitempty"`
}

// Source is the content of one file split into lines.
type Source struct {
	// Path is the file the content was read from. It may be empty for
	// in-memory input.
	Path string

	// Lines holds the file content without line terminators.
	Lines []string
}

// NewSource splits content into lines. Both "\n" and "\r\n" terminate a line
// and a trailing terminator does not produce an extra empty line.
func NewSource(path, content string) *Source {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}
	return &Source{Path: path, Lines: lines}
}

// Text joins the lines back together with "\n".
func (s *Source) Text() string {
	return strings.Join(s.Lines, "\n")
}
