package ui

import (
	"fmt"
	"strings"
	"time"

	"botdash/internal/format"
	"botdash/internal/state"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HistoryView lists the dashboard's recorded transition events.
type HistoryView struct {
	viewport viewport.Model
	entries  []state.Entry
	width    int
}

// Ensure HistoryView implements View.
var _ View = (*HistoryView)(nil)

// NewHistoryView creates an empty history view.
func NewHistoryView() *HistoryView {
	return &HistoryView{
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
	}
}

// Init implements View.
func (h *HistoryView) Init() tea.Cmd { return nil }

// SetEntries replaces the listed events and scrolls to the newest.
func (h *HistoryView) SetEntries(entries []state.Entry) {
	h.entries = entries
	h.refresh()
	h.viewport.GotoBottom()
}

// SetSize resizes the viewport; height excludes the footer.
func (h *HistoryView) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	h.width = width
	h.viewport.Width = width
	h.viewport.Height = height
	h.refresh()
}

func (h *HistoryView) refresh() {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("История событий (%d)", len(h.entries))))
	b.WriteString("\n\n")
	if len(h.entries) == 0 {
		b.WriteString(Styles.Empty.Render("Нет событий"))
	}
	for _, e := range h.entries {
		detail, failed := DescribeEvent(e.Event)
		seq := Styles.Seq.Render(fmt.Sprintf("%4d", e.Seq))
		name := Styles.Event.Render(e.Event.Name())
		line := format.FitWidth(detail, h.width-format.VisualWidthStyled(seq+name)-2)
		if failed {
			line = Styles.Error.Render(line)
		}
		b.WriteString(seq + " " + name + " " + line + "\n")
	}
	h.viewport.SetContent(b.String())
}

// Update implements View.
func (h *HistoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements View.
func (h *HistoryView) View() string {
	return h.viewport.View()
}

// DescribeEvent returns a one-line summary of ev and whether it records a failure.
func DescribeEvent(ev state.Event) (string, bool) {
	switch e := ev.(type) {
	case state.RefreshRequested:
		parts := make([]string, len(e.Requests))
		for i, r := range e.Requests {
			parts[i] = fmt.Sprintf("%s#%d", r.Resource, r.Generation)
		}
		return strings.Join(parts, " "), false
	case state.ResourceLoaded:
		s := fmt.Sprintf("%s#%d %s (%s)", e.Resource, e.Generation, e.Result, e.Duration.Round(time.Millisecond))
		if e.Err != nil {
			return s + ": " + e.Err.Error(), true
		}
		return s, false
	case state.ActionStarted:
		return fmt.Sprintf("%s %s", e.Kind, e.RequestID), false
	case state.ActionSettled:
		s := fmt.Sprintf("%s %s %s (%s)", e.Kind, e.RequestID, e.Outcome(), e.Duration.Round(time.Millisecond))
		if e.Err != nil {
			return s + ": " + e.Err.Error(), true
		}
		return s, false
	case state.TabSelected:
		return fmt.Sprintf("%s → %s", e.From, e.Tab), false
	default:
		return "", false
	}
}
