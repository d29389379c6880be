package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Avatar shows up to three initials on the muted surface, standing in for a
// profile picture.
type Avatar struct {
	BaseComponent
	initials string
}

// NewAvatar creates an avatar from explicit initials. When initials is empty
// they are derived from name.
func NewAvatar(initials, name string) *Avatar {
	if initials == "" {
		initials = Initials(name)
	}
	return &Avatar{
		BaseComponent: NewBaseComponent(),
		initials:      strings.ToUpper(initials),
	}
}

// Initials returns the first letter of up to the first three words of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
		if b.Len() >= 3 {
			break
		}
	}
	return b.String()
}

// View renders the avatar.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the avatar.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	style := a.ComputeStyle(ctx.Theme).
		Background(ctx.Theme.Palette.Muted.Base).
		Foreground(ctx.Theme.Palette.Muted.OnBase).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center)
	return style.Render(a.initials)
}

// Text returns the rendered initials.
func (a *Avatar) Text() string {
	return a.initials
}
