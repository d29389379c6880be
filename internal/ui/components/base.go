package components

import (
	"github.com/alexisbeaulieu97/showcase/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides the style plumbing shared by every component.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies theme data to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style after applying the strategy for theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// Spacing is padding or margin in CSS order: top, right, bottom, left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left plus right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top plus bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

func (s Spacing) apply(style lipgloss.Style, margin bool) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	if margin {
		return style.Margin(s.Top, s.Right, s.Bottom, s.Left)
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints bounds the width a component may use. A negative MaxWidth means
// unbounded.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// HasWidth reports whether a maximum width is set.
func (c Constraints) HasWidth() bool {
	return c.MaxWidth >= 0
}

// Shrink returns constraints reduced by n columns, never below zero.
func (c Constraints) Shrink(n int) Constraints {
	if !c.HasWidth() {
		return c
	}
	c.MaxWidth -= n
	if c.MaxWidth < 0 {
		c.MaxWidth = 0
	}
	if c.MinWidth > c.MaxWidth {
		c.MinWidth = c.MaxWidth
	}
	return c
}

// RenderContext carries the theme and layout bounds through a render.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// NewContext returns a context for theme bounded to width columns.
func NewContext(theme Theme, width int) RenderContext {
	ctx := RenderContext{Theme: theme, Constraints: Unconstrained()}
	if width > 0 {
		ctx.Constraints = WithMaxWidth(width)
	}
	return ctx
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// Width returns the maximum width, or fallback when unbounded.
func (r RenderContext) Width(fallback int) int {
	if r.Constraints.HasWidth() {
		return r.Constraints.MaxWidth
	}
	return fallback
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it supports contexts and falls back to View.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
