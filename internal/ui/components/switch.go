package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Switch is an on/off toggle track with a label beside it.
type Switch struct {
	BaseComponent
	label   string
	on      bool
	focused bool
}

// NewSwitch creates a switch.
func NewSwitch(label string, on bool) *Switch {
	return &Switch{
		BaseComponent: NewBaseComponent(),
		label:         label,
		on:            on,
	}
}

// View renders the switch.
func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the switch.
func (s *Switch) ViewWithContext(ctx RenderContext) string {
	palette := ctx.Theme.Palette
	track := lipgloss.NewStyle().Background(palette.Muted.Base).Foreground(palette.Muted.OnBase)
	thumb := " ○"
	if s.on {
		track = lipgloss.NewStyle().Background(palette.Primary.Base).Foreground(palette.Primary.OnBase)
		thumb = "● "
	}
	if s.focused {
		track = track.Underline(true)
	}
	return track.Render(" "+thumb+" ") + " " + s.ComputeStyle(ctx.Theme).Render(s.label)
}

// WithFocus marks the switch as the keyboard target.
func (s *Switch) WithFocus(focused bool) *Switch {
	s.focused = focused
	return s
}

// On reports whether the switch is on.
func (s *Switch) On() bool {
	return s.on
}

// Label returns the switch label.
func (s *Switch) Label() string {
	return s.label
}
