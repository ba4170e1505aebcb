package ui

import (
	"botdash/internal/view"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors shared with the page renderer
const (
	ColorAccent    = view.ColorAccent
	ColorHighlight = view.ColorHighlight
	ColorDanger    = view.ColorDanger
	ColorMuted     = view.ColorMuted
	ColorText      = view.ColorText
)

// Styles contains the app-level styles (the page itself uses view.Styles).
var Styles = struct {
	Title   lipgloss.Style // Bold accent color - screen titles
	Muted   lipgloss.Style // Dimmed text
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Seq     lipgloss.Style // History sequence numbers
	Event   lipgloss.Style // History event names
	Error   lipgloss.Style // Failed transitions
	Spinner lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Seq: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Event: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Spinner: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
}
