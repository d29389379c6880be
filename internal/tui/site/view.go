package site

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the scrolled page above the status line and key help.
func (m Model) View() string {
	if !m.ready {
		return "Loading…"
	}
	page := m.viewport.View()
	if m.width > m.viewport.Width {
		page = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
	}
	return page + "\n" + m.footer()
}

func (m Model) footer() string {
	muted := lipgloss.NewStyle().Foreground(m.theme.Palette.Background.Muted)
	accent := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Palette.Primary.Base)

	parts := []string{accent.Render(m.Focused())}
	if s := m.widgetStatus(); s != "" {
		parts = append(parts, s)
	}
	if m.ready {
		parts = append(parts, muted.Render(percent(m.viewport.ScrollPercent())))
	}
	status := strings.Join(parts, muted.Render(" · "))

	return status + "\n" + m.help.View(m.keys)
}

// widgetStatus prefers the model's own message over the widget's notice.
func (m Model) widgetStatus() string {
	if m.status != "" {
		return m.status
	}
	if m.focus == focusQuickStart {
		return m.page.quick.status()
	}
	return ""
}

func percent(f float64) string {
	return fmt.Sprintf("%d%%", int(f*100+0.5))
}
