package view

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the page
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - active tab, borders
	ColorDanger    = "196" // Red - errors, deductions
	ColorSuccess   = "42"  // Green - success boxes, incoming
	ColorInfo      = "75"  // Blue - outgoing, ids
	ColorMuted     = "241" // Gray - hints, placeholders
	ColorText      = "252" // Light gray - normal text
	ColorWarning   = "214" // Yellow - referral codes
	ColorCode      = "236" // Dark gray - code background
)

// Styles contains the style definitions used by Page.Render.
var Styles = struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	Box        lipgloss.Style // Section box (highlight border)
	Card       lipgloss.Style // Item card inside a section
	ResultOK   lipgloss.Style // Settled action, success
	ResultFail lipgloss.Style // Settled action, error
	Tile       lipgloss.Style // Summary counter

	Section     lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Empty       lipgloss.Style
	Value       lipgloss.Style
	Code        lipgloss.Style
	Button      lipgloss.Style
	ButtonBusy  lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Hint        lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	ResultOK: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Foreground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ResultFail: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
	Tile: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Value: lipgloss.NewStyle().
		Bold(true),
	Code: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorCode)).
		Foreground(lipgloss.Color(ColorText)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	ButtonBusy: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// toneStyles colors badges by tone.
var toneStyles = map[Tone]lipgloss.Style{
	ToneNeutral: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
	ToneInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInfo)),
	ToneSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
	ToneDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)),
	ToneWarning: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
	ToneAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)),
}
