package site

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/showcase/internal/content"
)

// Update handles terminal events, key presses and work delivered by the
// event loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case loopMsg:
		msg.run()
		m.refresh()
		return m, m.loop.wait()

	case contentChangedMsg:
		m.log.WithFields(map[string]interface{}{
			"path":   msg.event.Path,
			"event":  msg.event.Type.String(),
			"events": msg.event.Count,
		}).Debug("content changed")
		return m, tea.Batch(loadContent(m.opts.ContentPath), m.loop.wait())

	case contentLoadedMsg:
		m.applyContent(msg)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.theme = m.theme.Toggled()
		m.status = fmt.Sprintf("Theme: %s", m.theme.Name)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextFocus):
		m.focus = (m.focus + 1) % focusTargets
		m.status = ""
		m.refresh()
		m.scrollToFocus()
		return m, nil

	case key.Matches(msg, m.keys.PrevFocus):
		m.focus = (m.focus + focusTargets - 1) % focusTargets
		m.status = ""
		m.refresh()
		m.scrollToFocus()
		return m, nil

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if m.focus == focusPreview {
		m.handlePreviewKey(msg)
	} else {
		m.handleQuickStartKey(msg)
	}
	m.refresh()
	return m, nil
}

func (m *Model) handleQuickStartKey(msg tea.KeyMsg) {
	q := m.page.quick
	switch {
	case key.Matches(msg, m.keys.NextSection):
		q.next()
	case key.Matches(msg, m.keys.PrevSection):
		q.prev()
	case key.Matches(msg, m.keys.Section):
		q.selectIndex(sectionIndex(msg))
	case key.Matches(msg, m.keys.Up):
		q.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		q.moveCursor(1)
	case key.Matches(msg, m.keys.Copy):
		ok, err := q.copySelected()
		switch {
		case err != nil:
			m.log.Error(err, "copy request rejected")
			m.status = err.Error()
		case !ok:
			m.status = "Nothing to copy on this tab"
		default:
			m.status = ""
		}
	}
}

func (m *Model) handlePreviewKey(msg tea.KeyMsg) {
	p := m.page.preview
	switch {
	case key.Matches(msg, m.keys.NextSection):
		p.tabs.Next()
	case key.Matches(msg, m.keys.PrevSection):
		p.tabs.Prev()
	case key.Matches(msg, m.keys.Section):
		p.tabs.SelectIndex(sectionIndex(msg))
	case key.Matches(msg, m.keys.Increase):
		m.formOnly(p.adjust(1))
	case key.Matches(msg, m.keys.Decrease):
		m.formOnly(p.adjust(-1))
	case key.Matches(msg, m.keys.Toggle):
		m.formOnly(p.flip())
	}
}

func (m *Model) formOnly(handled bool) {
	if handled {
		m.status = ""
		return
	}
	m.status = "Switch to the Form tab to use the controls"
}

// sectionIndex maps the digit keys to zero-based tab indices.
func sectionIndex(msg tea.KeyMsg) int {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return -1
	}
	return int(s[0] - '1')
}

// resize fits the viewport between the top of the screen and the footer.
func (m *Model) resize() {
	height := max(m.height-lipgloss.Height(m.footer()), 1)
	width := max(m.pageWidth(), 1)
	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.viewport.KeyMap = viewport.KeyMap{
			PageUp:   m.keys.PageUp,
			PageDown: m.keys.PageDown,
		}
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.refresh()
}

func (m *Model) applyContent(msg contentLoadedMsg) {
	if msg.err != nil {
		m.log.Error(msg.err, "content reload failed")
		m.status = fmt.Sprintf("Reload failed: %v", msg.err)
		return
	}

	p, err := buildPage(msg.content, m.page.quick.tabs.Current(), m.page.preview.tabs.Current(), m.deps())
	if err != nil {
		m.log.Error(err, "content rebuild failed")
		m.status = fmt.Sprintf("Reload failed: %v", err)
		return
	}
	m.page.close()
	m.page = p
	m.status = "Content reloaded"
	m.log.Info("content reloaded")
	m.refresh()
}

func loadContent(path string) tea.Cmd {
	return func() tea.Msg {
		c, err := content.Load(path)
		return contentLoadedMsg{content: c, err: err}
	}
}
