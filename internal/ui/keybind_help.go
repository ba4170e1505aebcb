package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a help.Model styled like the rest of the app.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	m.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return m
}

// RenderKeybindHelp produces the footer help bar. In leader mode it shows the
// keys that may follow in a box prefixed with the sequence typed so far.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode, width int) string {
	if keyHandler == nil {
		return ""
	}
	km := NewKeyMap(keyHandler.Registry, keyHandler, mode)
	bindings := km.ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	m := newHelpModel()
	m.Width = width
	content := m.ShortHelpView(bindings)
	if !keyHandler.LeaderWaiting {
		return content
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	prefix := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Render(strings.Join(keyHandler.Buffer, " "))
	return boxStyle.Render(prefix + " " + content)
}
