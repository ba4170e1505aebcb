package ui

import (
	"strings"
	"testing"

	"botdash/internal/api"
	"botdash/internal/state"
	"botdash/internal/view"

	"github.com/charmbracelet/bubbles/spinner"
)

func TestPageView_LoadingShowsSpinnerAndText(t *testing.T) {
	p := NewPageView()
	out := p.View()
	if !strings.Contains(out, view.LoadingText) {
		t.Errorf("expected loading text, got %q", out)
	}
	if p.Indicator() == "" {
		t.Error("expected spinner while loading")
	}
}

func TestPageView_SetBusy(t *testing.T) {
	p := NewPageView()
	if cmd := p.SetBusy(true); cmd != nil {
		t.Error("already busy: no new tick expected")
	}
	if cmd := p.SetBusy(false); cmd != nil {
		t.Error("stopping: no tick expected")
	}
	if p.Indicator() != "" {
		t.Error("expected no indicator when idle")
	}
	if cmd := p.SetBusy(true); cmd == nil {
		t.Error("starting: expected tick")
	}
}

func TestPageView_IdleIgnoresTicks(t *testing.T) {
	p := NewPageView()
	p.SetBusy(false)
	if _, cmd := p.Update(spinner.TickMsg{}); cmd != nil {
		t.Error("idle spinner should stop ticking")
	}
}

func TestPageView_ScrollsLongPage(t *testing.T) {
	users := &api.UsersResponse{}
	for i := 0; i < 40; i++ {
		users.Users = append(users.Users, api.UserRecord{FirstName: "user"})
	}
	p := NewPageView()
	p.SetSize(80, 10)
	p.SetPage(view.Build(state.Snapshot{Tab: state.TabUsers, Users: users}))

	top := p.View()
	p.Update(keyMsg("j"))
	if p.View() == top {
		t.Error("expected j to scroll the viewport")
	}
	if got := len(strings.Split(p.View(), "\n")); got != 10 {
		t.Errorf("expected 10 visible lines, got %d", got)
	}
}

func TestHistoryView_DescribesEvents(t *testing.T) {
	d := state.NewDashboard(&fakeBackend{})
	d.Apply(state.RefreshRequested{})
	d.Apply(state.TabSelected{Tab: state.TabUsers})

	h := NewHistoryView()
	h.SetEntries(d.History())
	out := h.View()
	for _, want := range []string{"История событий (2)", "RefreshRequested", "stats#1", "overview → users"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}
