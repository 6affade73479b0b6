package model

import (
	"slices"
	"testing"
)

func TestTagNameValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name TagName
		want bool
	}{
		{"div", true},
		{"h1", true},
		{"Modal", true},
		{"", false},
		{"my-tag", false},
		{"a b", false},
		{"div>", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()
			if got := tt.name.Valid(); got != tt.want {
				t.Errorf("TagName(%q).Valid() = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTagSet(t *testing.T) {
	t.Parallel()

	t.Run("drops duplicates and blanks, keeps order", func(t *testing.T) {
		t.Parallel()
		s := NewTagSet("form", " div ", "", "form", "main")
		if got := s.Names(); !slices.Equal(got, []TagName{"form", "div", "main"}) {
			t.Errorf("unexpected names: %v", got)
		}
		if s.Len() != 3 || s.String() != "form,div,main" {
			t.Errorf("unexpected set: len=%d string=%s", s.Len(), s)
		}
	})

	t.Run("parse splits commas", func(t *testing.T) {
		t.Parallel()
		s := ParseTagSet([]string{"div,span", "form"})
		for _, n := range []TagName{"div", "span", "form"} {
			if !s.Contains(n) {
				t.Errorf("expected %s in set", n)
			}
		}
		if s.Contains("section") {
			t.Error("unexpected section in set")
		}
	})

	t.Run("lookups are case-sensitive", func(t *testing.T) {
		t.Parallel()
		if NewTagSet("div").Contains("DIV") {
			t.Error("expected DIV not to match div")
		}
	})

	t.Run("names returns a copy", func(t *testing.T) {
		t.Parallel()
		s := NewTagSet("div")
		names := s.Names()
		names[0] = "form"
		if !s.Contains("div") || s.Names()[0] != "div" {
			t.Error("modifying Names() result changed the set")
		}
	})
}

func TestNewSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "single line without newline", content: "<div>", want: []string{"<div>"}},
		{name: "trailing newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\nb", want: []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			src := NewSource("x", tt.content)
			if !slices.Equal(src.Lines, tt.want) {
				t.Errorf("got %q, want %q", src.Lines, tt.want)
			}
		})
	}
}

func TestEventKindString(t *testing.T) {
	t.Parallel()

	for kind, want := range map[EventKind]string{
		EventOpen:      "open",
		EventClose:     "close",
		EventSelfClose: "self-close",
		EventKind(42):  "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d: got %s, want %s", kind, got, want)
		}
	}
}
