package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CodeBlock renders a multi-line snippet on the muted surface. An optional
// action such as a copy button is pinned to the top-right corner.
type CodeBlock struct {
	BaseComponent
	code   string
	action *Button
}

// NewCodeBlock creates a code block.
func NewCodeBlock(code string) *CodeBlock {
	return &CodeBlock{
		BaseComponent: NewBaseComponent(),
		code:          strings.TrimRight(code, "\n"),
	}
}

// View renders the block.
func (c *CodeBlock) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the block at the context width.
func (c *CodeBlock) ViewWithContext(ctx RenderContext) string {
	palette := ctx.Theme.Palette
	style := c.ComputeStyle(ctx.Theme).
		Background(palette.Muted.Base).
		Foreground(palette.Muted.OnBase).
		Padding(0, 1)

	lines := strings.Split(c.code, "\n")
	action := ""
	if c.action != nil {
		action = c.action.ViewWithContext(ctx)
	}

	width := 0
	for _, line := range lines {
		width = max(width, lipgloss.Width(line))
	}
	if action != "" {
		width = max(width, lipgloss.Width(lines[0])+lipgloss.Width(action)+2)
	}
	if ctx.Constraints.HasWidth() {
		width = max(ctx.Constraints.MaxWidth-style.GetHorizontalPadding(), 1)
	}

	row := lipgloss.NewStyle().Width(width)
	out := make([]string, len(lines))
	for i, line := range lines {
		if i == 0 && action != "" {
			gap := max(width-lipgloss.Width(line)-lipgloss.Width(action), 1)
			line = line + strings.Repeat(" ", gap) + action
		}
		out[i] = row.Render(line)
	}
	return style.Render(strings.Join(out, "\n"))
}

// WithAction pins a button to the first line.
func (c *CodeBlock) WithAction(action *Button) *CodeBlock {
	c.action = action
	return c
}

// Code returns the snippet.
func (c *CodeBlock) Code() string {
	return c.code
}
