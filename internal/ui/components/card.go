package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Card is a bordered surface with an optional header (title, description,
// trailing action) above its content and an optional footer below.
type Card struct {
	BaseComponent
	title       string
	description string
	action      ui.Renderable
	content     []ui.Renderable
	footer      ui.Renderable
	focused     bool
	width       int
}

// NewCard creates a card around the given content.
func NewCard(content ...ui.Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the card with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	children := make([]ui.Renderable, 0, len(c.content)+3)
	if header := c.header(); header != nil {
		children = append(children, header)
	}
	children = append(children, c.content...)
	if c.footer != nil {
		children = append(children, c.footer)
	}

	container := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithGap(1).
		WithWidth(c.width).
		WithAppliers(Border(BorderVariantRounded))
	if c.focused {
		container.WithAppliers(RingBorder())
	}
	container.WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if c.strategy == nil {
			return base
		}
		return c.strategy.Apply(base, theme)
	})
	return container.ViewWithContext(ctx)
}

func (c *Card) header() ui.Renderable {
	if c.title == "" && c.description == "" && c.action == nil {
		return nil
	}

	var lines []ui.Renderable
	if c.title != "" {
		lines = append(lines, TitleText(c.title))
	}
	if c.description != "" {
		lines = append(lines, MutedText(c.description).Wrapped())
	}
	heading := VStack(lines...)
	if c.action == nil {
		return heading
	}
	return NewSplit(heading, c.action)
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithDescription sets the muted line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithAction places r at the right edge of the header row.
func (c *Card) WithAction(r ui.Renderable) *Card {
	c.action = r
	return c
}

// WithFooter sets the footer.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithFocus highlights the border with the focus ring colour.
func (c *Card) WithFocus(focused bool) *Card {
	c.focused = focused
	return c
}

// WithWidth fixes the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers to the card frame.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends content.
func (c *Card) Add(content ...ui.Renderable) *Card {
	c.content = append(c.content, content...)
	return c
}

// Title returns the card title.
func (c *Card) Title() string {
	return c.title
}
