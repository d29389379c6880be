package gallery

import (
	"fmt"
)

// Section is a closed set of tab identifiers.
type Section interface {
	comparable
	fmt.Stringer
}

// TabGroup tracks which section of a widget is visible. Exactly one section is
// active at any time.
type TabGroup[S Section] struct {
	sections []S
	current  S
}

// NewTabGroup builds a tab group over the ordered sections with def active.
func NewTabGroup[S Section](def S, sections ...S) (*TabGroup[S], error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrInvalidSections)
	}

	seen := make(map[S]struct{}, len(sections))
	for _, s := range sections {
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: section %s listed twice", ErrInvalidSections, s)
		}
		seen[s] = struct{}{}
	}
	if _, ok := seen[def]; !ok {
		return nil, fmt.Errorf("%w: default section %s is not a member", ErrInvalidSections, def)
	}

	owned := make([]S, len(sections))
	copy(owned, sections)
	return &TabGroup[S]{sections: owned, current: def}, nil
}

// Select makes s the active section. Selecting the active section is a no-op.
// s must be a member of the group.
func (g *TabGroup[S]) Select(s S) {
	if g.indexOf(s) < 0 {
		panic(fmt.Sprintf("gallery: section %s is not in this tab group", s))
	}
	g.current = s
}

// SelectIndex activates the section at position i. It reports false and leaves
// the group unchanged when i is out of range.
func (g *TabGroup[S]) SelectIndex(i int) bool {
	if i < 0 || i >= len(g.sections) {
		return false
	}
	g.current = g.sections[i]
	return true
}

// Next advances to the following section, wrapping at the end.
func (g *TabGroup[S]) Next() S {
	i := (g.Index() + 1) % len(g.sections)
	g.current = g.sections[i]
	return g.current
}

// Prev moves to the preceding section, wrapping at the start.
func (g *TabGroup[S]) Prev() S {
	i := (g.Index() - 1 + len(g.sections)) % len(g.sections)
	g.current = g.sections[i]
	return g.current
}

// Current returns the active section.
func (g *TabGroup[S]) Current() S {
	return g.current
}

// IsActive reports whether s is the active section.
func (g *TabGroup[S]) IsActive(s S) bool {
	return g.current == s
}

// Index returns the position of the active section.
func (g *TabGroup[S]) Index() int {
	return g.indexOf(g.current)
}

// Sections returns the members in display order.
func (g *TabGroup[S]) Sections() []S {
	out := make([]S, len(g.sections))
	copy(out, g.sections)
	return out
}

func (g *TabGroup[S]) indexOf(s S) int {
	for i, candidate := range g.sections {
		if candidate == s {
			return i
		}
	}
	return -1
}
