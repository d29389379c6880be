package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Checkbox is a boxed check mark followed by a label.
type Checkbox struct {
	BaseComponent
	label   string
	checked bool
}

// NewCheckbox creates a checkbox.
func NewCheckbox(label string, checked bool) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		label:         label,
		checked:       checked,
	}
}

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the checkbox.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	box := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Border).Render("[ ]")
	if c.checked {
		box = lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Primary.Base).Bold(true).Render("[✓]")
	}
	return box + " " + c.ComputeStyle(ctx.Theme).Render(c.label)
}

// Checked reports whether the box is ticked.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// RadioGroup renders mutually exclusive options, one per line.
type RadioGroup struct {
	BaseComponent
	options  []string
	selected int
}

// NewRadioGroup creates a radio group with selected chosen. A negative
// selected renders every option unchosen.
func NewRadioGroup(selected int, options ...string) *RadioGroup {
	return &RadioGroup{
		BaseComponent: NewBaseComponent(),
		options:       options,
		selected:      selected,
	}
}

// View renders the group.
func (r *RadioGroup) View() string {
	return r.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the group.
func (r *RadioGroup) ViewWithContext(ctx RenderContext) string {
	style := r.ComputeStyle(ctx.Theme)
	rows := make([]string, len(r.options))
	for i, opt := range r.options {
		mark := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Border).Render("( )")
		if i == r.selected {
			mark = lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Primary.Base).Render("(•)")
		}
		rows[i] = mark + " " + style.Render(opt)
	}
	return strings.Join(rows, "\n")
}

// Selected returns the chosen option index.
func (r *RadioGroup) Selected() int {
	return r.selected
}
