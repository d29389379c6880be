package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TabList renders a row of tab triggers. The active trigger sits on the
// background colour inside the muted track, the way shadcn tabs do.
type TabList struct {
	BaseComponent
	labels  []string
	active  int
	focused bool
	numbers bool
}

// NewTabList creates a tab list with the first trigger active.
func NewTabList(labels ...string) *TabList {
	return &TabList{
		BaseComponent: NewBaseComponent(),
		labels:        labels,
	}
}

// View renders the tab list.
func (t *TabList) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the tab list. When the context is wider than the
// triggers, they are stretched to share the width evenly.
func (t *TabList) ViewWithContext(ctx RenderContext) string {
	if len(t.labels) == 0 {
		return ""
	}
	palette := ctx.Theme.Palette
	track := t.ComputeStyle(ctx.Theme).Background(palette.Muted.Base)

	cell := 0
	if ctx.Constraints.HasWidth() {
		cell = ctx.Constraints.MaxWidth / len(t.labels)
	}

	triggers := make([]string, len(t.labels))
	for i, label := range t.labels {
		if t.numbers {
			label = string(rune('1'+i)) + " " + label
		}
		style := lipgloss.NewStyle().
			Padding(0, 2).
			Background(palette.Muted.Base).
			Foreground(palette.Muted.OnBase).
			Align(lipgloss.Center)
		if i == t.active {
			style = style.
				Background(palette.Background.Base).
				Foreground(palette.Background.OnBase).
				Bold(true)
			if t.focused {
				style = style.Underline(true).Foreground(palette.Ring)
			}
		}
		if cell > lipgloss.Width(label)+4 {
			style = style.Width(cell)
		}
		triggers[i] = style.Render(label)
	}
	return track.Render(strings.Join(triggers, ""))
}

// WithActive marks the trigger at index as active.
func (t *TabList) WithActive(index int) *TabList {
	if index >= 0 && index < len(t.labels) {
		t.active = index
	}
	return t
}

// WithFocus draws the active trigger with the focus ring colour.
func (t *TabList) WithFocus(focused bool) *TabList {
	t.focused = focused
	return t
}

// WithNumbers prefixes triggers with their 1-based shortcut key.
func (t *TabList) WithNumbers() *TabList {
	t.numbers = true
	return t
}

// Active returns the index of the active trigger.
func (t *TabList) Active() int {
	return t.active
}

// Labels returns the trigger labels.
func (t *TabList) Labels() []string {
	return append([]string(nil), t.labels...)
}
