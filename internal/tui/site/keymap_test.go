package site

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMapBindings(t *testing.T) {
	keys := DefaultKeyMap()

	cases := []struct {
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, keys.NextFocus},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, keys.PrevFocus},
		{tea.KeyMsg{Type: tea.KeyEnter}, keys.Copy},
		{tea.KeyMsg{Type: tea.KeySpace}, keys.Toggle},
		{tea.KeyMsg{Type: tea.KeyPgDown}, keys.PageDown},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, keys.Quit},
		{runes("3"), keys.Section},
		{runes("+"), keys.Increase},
	}
	for _, tc := range cases {
		assert.True(t, key.Matches(tc.msg, tc.binding), tc.msg.String())
	}
}

func TestHelpListsEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 16, n)
	assert.NotEmpty(t, keys.ShortHelp())
}

func TestSectionIndex(t *testing.T) {
	assert.Equal(t, 0, sectionIndex(runes("1")))
	assert.Equal(t, 3, sectionIndex(runes("4")))
	assert.Equal(t, -1, sectionIndex(runes("x")))
	assert.Equal(t, -1, sectionIndex(tea.KeyMsg{Type: tea.KeyTab}))
}
