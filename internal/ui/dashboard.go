package ui

import (
	"botdash/internal/view"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Default dimensions used until the first tea.WindowSizeMsg (and in tests).
const (
	defaultWidth  = 100
	defaultHeight = 30
)

// PageView shows the rendered dashboard page in a scrollable viewport.
type PageView struct {
	viewport viewport.Model
	spinner  spinner.Model
	page     view.Page
	width    int
	busy     bool // true while loading or an action is pending
}

// Ensure PageView implements View.
var _ View = (*PageView)(nil)

// NewPageView creates an empty page view in its busy (initial loading) state.
func NewPageView() *PageView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Spinner

	return &PageView{
		viewport: viewport.New(defaultWidth, defaultHeight),
		spinner:  s,
		page:     view.Page{Loading: true},
		width:    defaultWidth,
		busy:     true,
	}
}

// Init implements View.
func (p *PageView) Init() tea.Cmd {
	return p.spinner.Tick
}

// SetPage replaces the page and redraws the viewport content, keeping the
// scroll position.
func (p *PageView) SetPage(page view.Page) {
	p.page = page
	p.refresh()
}

// Page returns the page currently shown.
func (p *PageView) Page() view.Page { return p.page }

// SetBusy starts or stops the spinner. It returns the tick command when the
// spinner has to start.
func (p *PageView) SetBusy(busy bool) tea.Cmd {
	was := p.busy
	p.busy = busy
	if busy && !was {
		return p.spinner.Tick
	}
	return nil
}

// SetSize resizes the viewport; height excludes the footer.
func (p *PageView) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = height
	p.refresh()
}

func (p *PageView) refresh() {
	p.viewport.SetContent(p.page.Render(p.width))
}

// Update implements View.
func (p *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !p.busy {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd
	}

	// Scroll keys and mouse wheel go to the viewport.
	var cmd tea.Cmd
	p.viewport, cmd = p.viewport.Update(msg)
	return p, cmd
}

// View implements View.
func (p *PageView) View() string {
	if p.page.Loading {
		return p.spinner.View() + " " + p.page.Render(p.width)
	}
	return p.viewport.View()
}

// Indicator returns the spinner frame while busy, otherwise "".
func (p *PageView) Indicator() string {
	if !p.busy {
		return ""
	}
	return p.spinner.View()
}
