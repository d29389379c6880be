package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Input is a single-line text field. An empty value shows the placeholder in
// the muted colour.
type Input struct {
	BaseComponent
	value       string
	placeholder string
	focused     bool
	width       int
	lines       int
	trailing    string
}

// NewInput creates an input showing placeholder until a value is set.
func NewInput(placeholder string) *Input {
	return &Input{
		BaseComponent: NewBaseComponent(),
		placeholder:   placeholder,
		lines:         1,
	}
}

// NewTextarea creates a multi-line input lines rows tall.
func NewTextarea(placeholder string, lines int) *Input {
	in := NewInput(placeholder)
	in.lines = max(lines, 1)
	return in
}

// NewSelectTrigger renders the closed state of a select: the chosen label,
// or the placeholder, followed by a chevron.
func NewSelectTrigger(label, placeholder string) *Input {
	in := NewInput(placeholder).WithValue(label)
	in.trailing = "⌄"
	return in
}

// View renders the input.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the input with layout context.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	state := InputStateDefault
	if i.focused {
		state = InputStateFocus
	}
	style := InputStyle(ctx.Theme, state).Inherit(i.ComputeStyle(ctx.Theme))

	outer := i.width
	if outer <= 0 {
		outer = ctx.Width(32)
	}
	inner := max(outer-style.GetHorizontalFrameSize(), 1)

	text := i.value
	textStyle := lipgloss.NewStyle()
	if text == "" {
		text = i.placeholder
		textStyle = textStyle.Foreground(ctx.Theme.Palette.Background.Muted)
	}

	if i.trailing != "" {
		avail := max(inner-lipgloss.Width(i.trailing)-1, 0)
		text = truncate(text, avail)
		pad := max(inner-lipgloss.Width(text)-lipgloss.Width(i.trailing), 1)
		body := textStyle.Render(text) + strings.Repeat(" ", pad) + i.trailing
		return style.Width(inner + style.GetHorizontalPadding()).Render(body)
	}

	content := textStyle.Render(truncate(text, inner))
	if i.lines > 1 {
		content += strings.Repeat("\n", i.lines-1)
	}
	return style.Width(inner + style.GetHorizontalPadding()).Render(content)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return strings.Repeat(".", max(width, 0))
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// WithValue sets the field value.
func (i *Input) WithValue(value string) *Input {
	i.value = value
	return i
}

// WithFocus draws the field with the focus ring.
func (i *Input) WithFocus(focused bool) *Input {
	i.focused = focused
	return i
}

// WithWidth fixes the outer width of the field.
func (i *Input) WithWidth(width int) *Input {
	i.width = width
	return i
}

// Value returns the field value.
func (i *Input) Value() string {
	return i.value
}
