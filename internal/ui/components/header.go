package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
)

// Heading is a section heading: an optional badge, a title and a muted
// description. Page-level headings use the display typography and are
// centered.
type Heading struct {
	BaseComponent
	title       string
	description string
	badge       string
	level       int
	centered    bool
}

// NewHeading creates a level-2 heading with the given title.
func NewHeading(title string) *Heading {
	return &Heading{
		BaseComponent: NewBaseComponent(),
		title:         title,
		level:         2,
	}
}

// View renders the heading.
func (h *Heading) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the heading with the given theme context.
func (h *Heading) ViewWithContext(ctx RenderContext) string {
	var title *Text
	switch h.level {
	case 1:
		title = DisplayText(h.title)
	case 2:
		title = TitleText(h.title)
	default:
		title = EmphasisText(h.title)
	}

	rows := make([]ui.Renderable, 0, 3)
	if h.badge != "" {
		rows = append(rows, SecondaryBadge(h.badge))
	}
	rows = append(rows, title.Wrapped())
	var description *Text
	if h.description != "" {
		description = MutedText(h.description).Wrapped()
		rows = append(rows, description)
	}

	stack := VStack(rows...)
	if h.centered {
		title.Centered()
		if description != nil {
			description.Centered()
		}
		stack.WithCrossAlign(CrossCenter)
	}
	return h.ComputeStyle(ctx.Theme).Render(stack.ViewWithContext(ctx))
}

// WithDescription sets the muted line under the title.
func (h *Heading) WithDescription(description string) *Heading {
	h.description = description
	return h
}

// WithBadge shows a small badge above the title.
func (h *Heading) WithBadge(badge string) *Heading {
	h.badge = badge
	return h
}

// WithLevel sets the heading level, clamped to 1..3.
func (h *Heading) WithLevel(level int) *Heading {
	h.level = min(max(level, 1), 3)
	return h
}

// Centered centers every line of the heading.
func (h *Heading) Centered() *Heading {
	h.centered = true
	return h
}

// WithAppliers applies theme-based style modifiers.
func (h *Heading) WithAppliers(appliers ...StyleFunc) *Heading {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the heading title.
func (h *Heading) Title() string {
	return h.title
}

// Description returns the heading description.
func (h *Heading) Description() string {
	return h.description
}

// Level returns the heading level.
func (h *Heading) Level() int {
	return h.level
}
