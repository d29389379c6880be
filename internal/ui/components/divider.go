package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Divider renders a horizontal separator in the border colour. Without an
// explicit width it spans the context width.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider drawn with "─".
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width(40)
	}
	style := d.ComputeStyle(ctx.Theme).Foreground(ctx.Theme.Palette.Border)
	return style.Render(strings.Repeat(d.char, max(width, 0)))
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithStyle sets the divider style.
func (d *Divider) WithStyle(style lipgloss.Style) *Divider {
	d.SetStyle(style)
	return d
}

// DottedDivider creates a dotted divider.
func DottedDivider() *Divider {
	return NewDivider().WithChar("·")
}
