package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant selects the colour treatment of an alert.
type AlertVariant int

const (
	AlertVariantDefault AlertVariant = iota
	AlertVariantDestructive
	AlertVariantSuccess
)

// Alert is a bordered callout with an icon, an optional title and a message.
type Alert struct {
	BaseComponent
	title   string
	message string
	icon    string
	variant AlertVariant
}

// NewAlert creates a new alert with the given message.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
		icon:          "ℹ",
	}
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	var lines []ui.Renderable
	if a.title != "" {
		lines = append(lines, EmphasisText(a.title))
	}
	lines = append(lines, NewText(a.message).Wrapped())

	body := NewPrefixed(NewText(a.icon), VStack(lines...))

	container := NewContainer(body).WithPadding(SymmetricSpacing(0, 1))
	variant := a.variant
	container.WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if strategy := theme.Variants.Get(variant); strategy != nil {
			return strategy.Apply(base, theme)
		}
		return base
	})
	container.WithAppliers(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if a.strategy == nil {
			return base
		}
		return a.strategy.Apply(base, theme)
	})
	return container.ViewWithContext(ctx)
}

// WithVariant sets the alert variant and its default icon.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	switch variant {
	case AlertVariantDestructive:
		a.icon = "✗"
	case AlertVariantSuccess:
		a.icon = "✓"
	default:
		a.icon = "ℹ"
	}
	return a
}

// WithIcon sets a custom icon.
func (a *Alert) WithIcon(icon string) *Alert {
	a.icon = icon
	return a
}

// WithTitle adds a title to the alert.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithAppliers applies theme-based style modifiers.
func (a *Alert) WithAppliers(appliers ...StyleFunc) *Alert {
	a.AddAppliers(appliers...)
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}

// DestructiveAlert creates an error alert.
func DestructiveAlert(title, message string) *Alert {
	return NewAlert(message).WithTitle(title).WithVariant(AlertVariantDestructive)
}

// SuccessAlert creates a success alert.
func SuccessAlert(title, message string) *Alert {
	return NewAlert(message).WithTitle(title).WithVariant(AlertVariantSuccess)
}
