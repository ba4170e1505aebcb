package ui

import (
	"strings"

	"botdash/internal/action"
	"botdash/internal/api"
	"botdash/internal/state"
	"botdash/internal/view"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// footerHeight is the number of lines reserved below the page for the help bar.
const footerHeight = 1

// AppModel is the root model. It switches between the dashboard page and the
// event history, and is the only code that applies state events.
type AppModel struct {
	Mode       AppMode
	State      *state.Dashboard
	Backend    api.Backend
	Page       *PageView
	History    *HistoryView
	KeyHandler *KeyHandler
	Recorder   Recorder

	width  int
	height int
}

// Option configures an AppModel.
type Option func(*appOptions)

type appOptions struct {
	recorder     Recorder
	tab          state.Tab
	historyLimit int
}

// WithRecorder reports fetch and action outcomes to r.
func WithRecorder(r Recorder) Option {
	return func(o *appOptions) { o.recorder = r }
}

// WithInitialTab selects t before the first render.
func WithInitialTab(t state.Tab) Option {
	return func(o *appOptions) { o.tab = t }
}

// WithHistoryLimit bounds the recorded event history.
func WithHistoryLimit(n int) Option {
	return func(o *appOptions) { o.historyLimit = n }
}

// NewAppModel creates the root application model for backend b.
func NewAppModel(b api.Backend, opts ...Option) *AppModel {
	o := appOptions{recorder: nopRecorder{}, tab: state.TabOverview, historyLimit: state.DefaultHistoryLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.recorder == nil {
		o.recorder = nopRecorder{}
	}

	m := &AppModel{
		Mode:       ModeDashboard,
		State:      state.NewDashboard(b, state.WithHistoryLimit(o.historyLimit)),
		Backend:    b,
		Page:       NewPageView(),
		History:    NewHistoryView(),
		KeyHandler: NewKeyHandler(newDefaultRegistry()),
		Recorder:   o.recorder,
		width:      defaultWidth,
		height:     defaultHeight,
	}
	m.State.Apply(state.TabSelected{Tab: o.tab})
	return m
}

func newDefaultRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	dashboard := []AppMode{ModeDashboard}
	for i, t := range state.Tabs() {
		tab := t
		key := string(rune('1' + i))
		reg.BindWithDescForMode(key, func() tea.Msg { return SelectTabMsg{Tab: tab} }, "", dashboard)
	}
	reg.BindWithDescForMode("tab", func() tea.Msg { return NextTabMsg{} }, "вкладка", dashboard)
	reg.BindWithDescForMode("shift+tab", func() tea.Msg { return PrevTabMsg{} }, "", dashboard)
	reg.BindWithDesc("r", func() tea.Msg { return RefreshMsg{} }, "обновить")
	reg.BindWithDescForMode("w", func() tea.Msg { return InvokeActionMsg{Kind: action.KindWebhook} }, "webhook", dashboard)
	reg.BindWithDescForMode("t", func() tea.Msg { return InvokeActionMsg{Kind: action.KindUsersboxTest} }, "тест API", dashboard)
	reg.BindWithDesc("h", func() tea.Msg { return ToggleHistoryMsg{} }, "история")
	reg.BindWithDesc("q", tea.Quit, "выход")
	reg.Bind("ctrl+c", tea.Quit)

	reg.BindWithDesc("SPC r", func() tea.Msg { return RefreshMsg{} }, "Обновить данные")
	reg.BindWithDescForMode("SPC w", func() tea.Msg { return InvokeActionMsg{Kind: action.KindWebhook} }, "Настроить Webhook", dashboard)
	reg.BindWithDescForMode("SPC t", func() tea.Msg { return InvokeActionMsg{Kind: action.KindUsersboxTest} }, "Тестировать API", dashboard)
	reg.BindWithDesc("SPC h", func() tea.Msg { return ToggleHistoryMsg{} }, "История событий")
	reg.BindWithDesc("SPC q", tea.Quit, "Выход")
	return reg
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model: starts the spinner and the initial load.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Page.Init(), a.refresh())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Page.SetSize(msg.Width, msg.Height-footerHeight)
		a.History.SetSize(msg.Width, msg.Height-footerHeight)
		return a, nil
	case tea.KeyMsg:
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, keyCmd
			}
		}
		if a.Mode == ModeHistory && msg.String() == "esc" {
			a.Mode = ModeDashboard
			return a, nil
		}
	case spinner.TickMsg:
		_, cmd := a.Page.Update(msg)
		return a, cmd
	case state.ResourceLoaded:
		return a.handleResourceLoaded(msg)
	case action.SettledMsg[api.WebhookResult]:
		return a.handleActionSettled(state.WebhookSettled(msg), webhookOutcome(msg.Payload))
	case action.SettledMsg[api.UsersboxResult]:
		return a.handleActionSettled(state.UsersboxSettled(msg), usersboxOutcome(msg.Payload))
	case SelectTabMsg:
		return a.handleSelectTab(msg.Tab)
	case NextTabMsg:
		return a.handleSelectTab(a.State.NextTab())
	case PrevTabMsg:
		return a.handleSelectTab(a.State.PrevTab())
	case RefreshMsg:
		return a, a.refresh()
	case InvokeActionMsg:
		return a.handleInvokeAction(msg.Kind)
	case ToggleHistoryMsg:
		if a.Mode == ModeHistory {
			a.Mode = ModeDashboard
		} else {
			a.Mode = ModeHistory
			a.History.SetEntries(a.State.History())
		}
		return a, nil
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	body := a.currentView().View()
	if a.Mode == ModeDashboard && a.State.Loading() {
		return body
	}
	footer := RenderKeybindHelp(a.KeyHandler, a.Mode, a.width)
	if ind := a.Page.Indicator(); ind != "" && !a.State.Loading() {
		footer = ind + " " + footer
	}
	if footer == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, strings.TrimRight(body, "\n"), footer)
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeHistory {
		return a.History
	}
	return a.Page
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeDashboard:
		if p, ok := v.(*PageView); ok {
			a.Page = p
		}
	case ModeHistory:
		if h, ok := v.(*HistoryView); ok {
			a.History = h
		}
	}
}

// render rebuilds the page from the current state and keeps the spinner and
// history in sync. It returns the spinner tick when the spinner starts.
func (a *AppModel) render() tea.Cmd {
	snap := a.State.Snapshot()
	a.Page.SetPage(view.Build(snap))
	if a.Mode == ModeHistory {
		a.History.SetEntries(a.State.History())
	}
	busy := snap.Loading || snap.Fetching || snap.Webhook.Pending() || snap.Usersbox.Pending()
	return a.Page.SetBusy(busy)
}

// Snapshot returns the current dashboard state.
func (a *AppModel) Snapshot() state.Snapshot {
	return a.State.Snapshot()
}
