package components

import (
	"github.com/charmbracelet/lipgloss"
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSecondary
	BadgeVariantDestructive
	BadgeVariantOutline
)

// BadgeVariants lists every variant in showcase order.
func BadgeVariants() []BadgeVariant {
	return []BadgeVariant{BadgeVariantDefault, BadgeVariantSecondary, BadgeVariantDestructive, BadgeVariantOutline}
}

// Badge is a small inline label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := b.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}

	if b.variant == BadgeVariantOutline {
		edge := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Border)
		return edge.Render("(") + style.Render(b.text) + edge.Render(")")
	}
	return style.Padding(0, 1).Render(b.text)
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SecondaryBadge creates a secondary badge.
func SecondaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSecondary)
}

// OutlineBadge creates an outline badge.
func OutlineBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantOutline)
}
