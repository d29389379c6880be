package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Slider renders a horizontal track filled to a fraction in [0, 1] with a
// thumb at the fill edge.
type Slider struct {
	BaseComponent
	fraction float64
	width    int
	focused  bool
}

// NewSlider creates a slider filled to fraction. Values outside [0, 1] are
// clamped.
func NewSlider(fraction float64) *Slider {
	return &Slider{
		BaseComponent: NewBaseComponent(),
		fraction:      clampFraction(fraction),
	}
}

func clampFraction(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Min(math.Max(f, 0), 1)
}

// View renders the slider.
func (s *Slider) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the slider across the context width.
func (s *Slider) ViewWithContext(ctx RenderContext) string {
	width := s.width
	if width <= 0 {
		width = ctx.Width(30)
	}
	width = max(width, 3)

	track := width - 1
	filled := s.Filled(track)

	palette := ctx.Theme.Palette
	fill := lipgloss.NewStyle().Foreground(palette.Primary.Base)
	rest := lipgloss.NewStyle().Foreground(palette.Muted.Base)
	thumb := lipgloss.NewStyle().Foreground(palette.Primary.Base).Bold(true)
	if s.focused {
		thumb = thumb.Foreground(palette.Ring)
	}

	return s.ComputeStyle(ctx.Theme).Render(
		fill.Render(strings.Repeat("━", filled)) +
			thumb.Render("●") +
			rest.Render(strings.Repeat("─", track-filled)),
	)
}

// Filled returns how many of track cells sit left of the thumb.
func (s *Slider) Filled(track int) int {
	return int(math.Round(s.fraction * float64(track)))
}

// WithWidth fixes the track width.
func (s *Slider) WithWidth(width int) *Slider {
	s.width = width
	return s
}

// WithFocus draws the thumb in the ring colour.
func (s *Slider) WithFocus(focused bool) *Slider {
	s.focused = focused
	return s
}

// Fraction returns the fill fraction.
func (s *Slider) Fraction() float64 {
	return s.fraction
}
