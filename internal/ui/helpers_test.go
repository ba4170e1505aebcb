package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"botdash/internal/api"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMsg builds a KeyMsg whose String() is s.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// collect runs cmd and any batched commands it yields, returning the
// resulting messages. Spinner ticks are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
	case spinner.TickMsg:
	default:
		out = append(out, msg)
	}
	return out
}

// isIntent reports whether msg is a user intent produced by a key binding.
func isIntent(msg tea.Msg) bool {
	switch msg.(type) {
	case SelectTabMsg, NextTabMsg, PrevTabMsg, RefreshMsg, InvokeActionMsg, ToggleHistoryMsg:
		return true
	}
	return false
}

// feed passes every message to the model. Intents produced along the way are
// processed immediately; the remaining results (fetch and action completions,
// quit) are returned without being applied.
func feed(m tea.Model, msgs ...tea.Msg) []tea.Msg {
	var results []tea.Msg
	queue := append([]tea.Msg(nil), msgs...)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		_, cmd := m.Update(msg)
		for _, out := range collect(cmd) {
			if isIntent(out) {
				queue = append(queue, out)
			} else {
				results = append(results, out)
			}
		}
	}
	return results
}

// drive feeds msgs and then every result they produce until nothing is left.
func drive(m tea.Model, msgs ...tea.Msg) {
	for out := feed(m, msgs...); len(out) > 0; out = feed(m, out...) {
	}
}

type fakeBackend struct {
	statsCalls   atomic.Int32
	webhookCalls atomic.Int32

	usersErr   error
	webhookErr error
}

func (f *fakeBackend) Stats(context.Context) (*api.StatsSnapshot, error) {
	n := int(f.statsCalls.Add(1))
	return &api.StatsSnapshot{TotalUsers: 42, TotalMessages: n}, nil
}

func (f *fakeBackend) Users(context.Context) (*api.UsersResponse, error) {
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return &api.UsersResponse{Users: []api.UserRecord{{UserID: "1", FirstName: "Иван", Username: "ivan"}}}, nil
}

func (f *fakeBackend) Referrals(context.Context) (*api.ReferralsResponse, error) {
	return &api.ReferralsResponse{}, nil
}

func (f *fakeBackend) SetWebhook(context.Context) (*api.WebhookResult, error) {
	f.webhookCalls.Add(1)
	if f.webhookErr != nil {
		return nil, f.webhookErr
	}
	return &api.WebhookResult{Status: api.StatusSuccess, WebhookURL: "https://bot.example/api/webhook"}, nil
}

func (f *fakeBackend) TestUsersbox(context.Context) (*api.UsersboxResult, error) {
	return nil, errors.New("usersbox unavailable")
}

type fakeRecorder struct {
	mu      sync.Mutex
	fetches []string
	actions []string
}

func (r *fakeRecorder) ObserveFetch(resource, result string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetches = append(r.fetches, fmt.Sprintf("%s:%s", resource, result))
}

func (r *fakeRecorder) ObserveAction(kind, outcome string, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, fmt.Sprintf("%s:%s", kind, outcome))
}
