package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the visual treatment of a button.
type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDestructive
	ButtonVariantOutline
	ButtonVariantGhost
	ButtonVariantLink
)

// ButtonVariants lists every variant in showcase order.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{
		ButtonVariantDefault,
		ButtonVariantSecondary,
		ButtonVariantDestructive,
		ButtonVariantOutline,
		ButtonVariantGhost,
		ButtonVariantLink,
	}
}

func (v ButtonVariant) String() string {
	switch v {
	case ButtonVariantSecondary:
		return "secondary"
	case ButtonVariantDestructive:
		return "destructive"
	case ButtonVariantOutline:
		return "outline"
	case ButtonVariantGhost:
		return "ghost"
	case ButtonVariantLink:
		return "link"
	default:
		return "default"
	}
}

// ButtonSize controls horizontal padding.
type ButtonSize int

const (
	ButtonSizeDefault ButtonSize = iota
	ButtonSizeSmall
	ButtonSizeLarge
)

// Button is a single-line clickable label. Outline buttons are bracketed so
// they read as buttons without a background.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	size     ButtonSize
	disabled bool
	focused  bool
	block    bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	style := b.computeStyle(ctx.Theme)
	label := b.label
	if b.variant == ButtonVariantOutline {
		bracket := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Border)
		if b.focused {
			bracket = bracket.Foreground(ctx.Theme.Palette.Ring)
		}
		return bracket.Render("[") + style.Render(label) + bracket.Render("]")
	}
	if b.block && ctx.Constraints.HasWidth() {
		style = style.Width(ctx.Constraints.MaxWidth).Align(lipgloss.Center)
	}
	return style.Render(label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}

	if b.variant != ButtonVariantLink {
		pad := 2
		switch b.size {
		case ButtonSizeSmall:
			pad = 1
		case ButtonSizeLarge:
			pad = 3
		}
		style = style.Padding(0, pad)
	}

	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Reverse(b.variant == ButtonVariantGhost)
	}
	return style
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFocus marks the button as the keyboard target.
func (b *Button) WithFocus(focused bool) *Button {
	b.focused = focused
	return b
}

// FullWidth stretches the button across the context width.
func (b *Button) FullWidth() *Button {
	b.block = true
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Variant returns the button variant.
func (b *Button) Variant() ButtonVariant {
	return b.variant
}

// IsFocused reports whether the button is the keyboard target.
func (b *Button) IsFocused() bool {
	return b.focused
}
