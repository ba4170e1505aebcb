package format

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FitEllipsis is the single-column marker used when clipping to a terminal width.
const FitEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string, ignoring
// ANSI escape sequences.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// FitWidth clips s to at most maxWidth terminal columns, ending with
// FitEllipsis when clipped. Wide runes (emoji, CJK) count as two columns.
func FitWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	available := maxWidth - VisualWidth(FitEllipsis)
	if available < 0 {
		return FitEllipsis
	}
	out := make([]rune, 0, len(s))
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > available {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + FitEllipsis
}
