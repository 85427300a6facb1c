package dom

import (
	"fmt"
	"strings"
)

// Selector is a parsed compound simple selector: an optional tag name, an
// optional "#id", and zero or more ".class" parts, all of which must match.
type Selector struct {
	Tag     string
	ID      string
	Classes []string
}

// ParseSelector parses a compound simple selector such as "button",
// ".item", "#save", or "li.item.active". An empty selector is invalid.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("%w: empty selector", ErrBadSelector)
	}
	if strings.ContainsAny(s, " >+~[]():,") {
		return Selector{}, fmt.Errorf("%w: %q", ErrBadSelector, s)
	}

	var sel Selector
	rest := s
	// Leading tag name runs until the first # or . marker.
	if i := strings.IndexAny(rest, "#."); i != 0 {
		if i < 0 {
			sel.Tag = rest
			return sel, nil
		}
		sel.Tag = rest[:i]
		rest = rest[i:]
	}
	for rest != "" {
		marker := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "#.")
		var part string
		if end < 0 {
			part, rest = rest, ""
		} else {
			part, rest = rest[:end], rest[end:]
		}
		if part == "" {
			return Selector{}, fmt.Errorf("%w: %q", ErrBadSelector, s)
		}
		switch marker {
		case '#':
			if sel.ID != "" {
				return Selector{}, fmt.Errorf("%w: multiple ids in %q", ErrBadSelector, s)
			}
			sel.ID = part
		case '.':
			sel.Classes = append(sel.Classes, part)
		}
	}
	return sel, nil
}

// Matches reports whether the element satisfies every part of the selector.
func (sel Selector) Matches(el *Element) bool {
	if el == nil {
		return false
	}
	if sel.Tag != "" && sel.Tag != el.tag {
		return false
	}
	if sel.ID != "" && sel.ID != el.id {
		return false
	}
	for _, c := range sel.Classes {
		if !el.HasClass(c) {
			return false
		}
	}
	return true
}

// String reassembles the selector in canonical tag#id.class order.
func (sel Selector) String() string {
	var b strings.Builder
	b.WriteString(sel.Tag)
	if sel.ID != "" {
		b.WriteByte('#')
		b.WriteString(sel.ID)
	}
	for _, c := range sel.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}
