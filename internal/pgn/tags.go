package pgn

import (
	"fmt"
	"strings"
)

// Tag is one PGN header pair.
type Tag struct {
	Name  string
	Value string
}

// SevenTagRoster contains the seven standard PGN tags in their required
// order. Other tags render after these, in insertion order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// TagSet holds a game's PGN header tags.
type TagSet struct {
	tags []Tag
}

// Set adds or replaces a tag by name.
func (s *TagSet) Set(name, value string) {
	for i := range s.tags {
		if s.tags[i].Name == name {
			s.tags[i].Value = value
			return
		}
	}
	s.tags = append(s.tags, Tag{Name: name, Value: value})
}

// Get returns a tag value by name.
func (s *TagSet) Get(name string) (string, bool) {
	for _, t := range s.tags {
		if t.Name == name {
			return t.Value, true
		}
	}
	return "", false
}

// Len returns the number of set tags.
func (s *TagSet) Len() int {
	return len(s.tags)
}

// Header renders the tag pairs as PGN header lines, seven-tag-roster
// tags first. Returns "" when no tags are set.
func (s *TagSet) Header() string {
	if len(s.tags) == 0 {
		return ""
	}
	var sb strings.Builder
	written := make(map[string]bool, len(s.tags))
	for _, name := range SevenTagRoster {
		if v, ok := s.Get(name); ok {
			fmt.Fprintf(&sb, "[%s %q]\n", name, v)
			written[name] = true
		}
	}
	for _, t := range s.tags {
		if !written[t.Name] {
			fmt.Fprintf(&sb, "[%s %q]\n", t.Name, t.Value)
		}
	}
	return sb.String()
}
