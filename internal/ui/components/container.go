package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a vertical stack of children. Card, Panel and
// Alert are built on it.
type Container struct {
	BaseComponent
	layout  *Stack
	border  lipgloss.Border
	padding Spacing
	margin  Spacing
	width   int
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context. Children are
// given the width left inside border and padding.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	if c.border.Top != "" {
		style = style.Border(c.border)
	}
	style = c.padding.apply(style, false)
	style = c.margin.apply(style, true)

	outer := -1
	switch {
	case c.width > 0:
		outer = c.width
	case ctx.Constraints.HasWidth():
		outer = ctx.Constraints.MaxWidth - c.margin.Horizontal()
	}

	childCtx := ctx
	if outer >= 0 {
		// lipgloss widths include padding but exclude the border.
		boxed := max(outer-style.GetHorizontalBorderSize(), 0)
		inner := max(boxed-style.GetHorizontalPadding(), 0)
		childCtx = ctx.WithConstraints(WithMaxWidth(inner))
		style = style.Width(boxed)
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(childCtx)
	}
	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithPadding sets the padding using a Spacing value object.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin using a Spacing value object.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithWidth fixes the outer width, border included.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}
