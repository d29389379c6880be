package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Text renders styled text. Wrapped text is word-wrapped to the context width.
type Text struct {
	BaseComponent
	content string
	wrap    bool
	align   lipgloss.Position
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		align:         lipgloss.Left,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	content := t.content
	style := t.ComputeStyle(ctx.Theme)
	if t.wrap && ctx.Constraints.HasWidth() && ctx.Constraints.MaxWidth > 0 {
		content = wordwrap.String(content, ctx.Constraints.MaxWidth)
	}
	if t.align != lipgloss.Left && ctx.Constraints.HasWidth() {
		style = style.Width(ctx.Constraints.MaxWidth).Align(t.align)
	}
	return style.Render(content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// Wrapped enables word wrapping at the context width.
func (t *Text) Wrapped() *Text {
	t.wrap = true
	return t
}

// Centered centers the text within the context width.
func (t *Text) Centered() *Text {
	t.align = lipgloss.Center
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// DisplayText renders page-level headlines.
func DisplayText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantDisplay))
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// MutedText is secondary copy such as card descriptions.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}

// LabelText labels a form control.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantLabel))
}

// EmphasisText creates emphasized text using theme typography.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// CodeText creates inline code using theme typography.
func CodeText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantCode))
}

// BodyText creates plain body copy.
func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantBody))
}
