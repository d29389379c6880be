package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Panel frames a single interactive widget with a label. The frame switches
// to the ring colour while the widget holds focus, so keyboard users can see
// which control the keys drive.
type Panel struct {
	BaseComponent
	label   string
	hint    string
	focused bool
	width   int
	body    []ui.Renderable
}

// NewPanel creates a panel around the given widget views.
func NewPanel(label string, body ...ui.Renderable) *Panel {
	return &Panel{
		BaseComponent: NewBaseComponent(),
		label:         label,
		body:          body,
	}
}

// View renders the panel with the default theme.
func (p *Panel) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the panel.
func (p *Panel) ViewWithContext(ctx RenderContext) string {
	header := ui.Renderable(LabelText(p.label))
	if p.hint != "" && p.focused {
		header = NewSplit(LabelText(p.label), MutedText(p.hint))
	}

	children := make([]ui.Renderable, 0, len(p.body)+1)
	children = append(children, header)
	children = append(children, p.body...)

	frame := NewContainer(children...).
		WithPadding(SymmetricSpacing(0, 1)).
		WithWidth(p.width).
		WithAppliers(Border(BorderVariantRounded))
	if p.focused {
		frame.WithAppliers(RingBorder())
	}
	frame.WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if p.strategy == nil {
			return base
		}
		return p.strategy.Apply(base, theme)
	})
	return frame.ViewWithContext(ctx)
}

// WithFocus sets the focus frame.
func (p *Panel) WithFocus(focused bool) *Panel {
	p.focused = focused
	return p
}

// WithHint sets the key hint shown while focused.
func (p *Panel) WithHint(hint string) *Panel {
	p.hint = hint
	return p
}

// WithWidth fixes the outer width of the frame.
func (p *Panel) WithWidth(width int) *Panel {
	p.width = width
	return p
}

// WithAppliers applies theme-based style modifiers to the frame.
func (p *Panel) WithAppliers(appliers ...StyleFunc) *Panel {
	p.AddAppliers(appliers...)
	return p
}

// Add appends widget views below the label.
func (p *Panel) Add(body ...ui.Renderable) *Panel {
	p.body = append(p.body, body...)
	return p
}

// Label returns the panel label.
func (p *Panel) Label() string {
	return p.label
}

// IsFocused reports whether the panel is drawn with the focus ring.
func (p *Panel) IsFocused() bool {
	return p.focused
}
