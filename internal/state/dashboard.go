package state

import (
	"fmt"

	"botdash/internal/action"
	"botdash/internal/api"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultHistoryLimit bounds the number of events a Dashboard remembers.
const DefaultHistoryLimit = 256

// Entry is one recorded event.
type Entry struct {
	Seq   uint64
	Event Event
}

// Transition reports what Apply did.
type Transition struct {
	// Recorded is true when the event was accepted and appended to the history.
	Recorded bool
	// Result is set for ResourceLoaded.
	Result ApplyResult
	// Requests lists the fetches to perform for RefreshRequested.
	Requests []Request
	// Cmd performs the call for an accepted ActionStarted.
	Cmd tea.Cmd
}

// Dashboard is the explicit state container. It is not safe for concurrent
// use; the Bubble Tea update loop is its only caller.
type Dashboard struct {
	store    *Store
	router   Router
	webhook  *action.Runner[api.WebhookResult]
	usersbox *action.Runner[api.UsersboxResult]

	history []Entry
	limit   int
	seq     uint64
}

// DashboardOption configures a Dashboard.
type DashboardOption func(*Dashboard)

// WithHistoryLimit overrides DefaultHistoryLimit.
func WithHistoryLimit(n int) DashboardOption {
	return func(d *Dashboard) {
		if n > 0 {
			d.limit = n
		}
	}
}

// NewDashboard creates the initial state: loading, overview tab, both
// actions idle. The actions call b.
func NewDashboard(b api.Backend, opts ...DashboardOption) *Dashboard {
	d := &Dashboard{
		store:    NewStore(),
		webhook:  action.NewRunner(action.KindWebhook, b.SetWebhook),
		usersbox: action.NewRunner(action.KindUsersboxTest, b.TestUsersbox),
		limit:    DefaultHistoryLimit,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Apply performs one transition.
func (d *Dashboard) Apply(ev Event) Transition {
	switch e := ev.(type) {
	case RefreshRequested:
		e.Requests = make([]Request, 0, resourceCount)
		for _, r := range Resources() {
			e.Requests = append(e.Requests, Request{Resource: r, Generation: d.store.Issue(r)})
		}
		d.record(e)
		return Transition{Recorded: true, Requests: e.Requests}

	case ResourceLoaded:
		e.Result = d.store.Apply(e)
		d.record(e)
		return Transition{Recorded: true, Result: e.Result}

	case ActionStarted:
		var cmd tea.Cmd
		switch e.Kind {
		case action.KindWebhook:
			cmd = d.webhook.Invoke()
			e.RequestID = d.webhook.Status().RequestID
		case action.KindUsersboxTest:
			cmd = d.usersbox.Invoke()
			e.RequestID = d.usersbox.Status().RequestID
		}
		if cmd == nil {
			return Transition{}
		}
		d.record(e)
		return Transition{Recorded: true, Cmd: cmd}

	case ActionSettled:
		var ok bool
		switch e.Kind {
		case action.KindWebhook:
			ok = d.webhook.Settle(action.SettledMsg[api.WebhookResult]{
				Kind: e.Kind, RequestID: e.RequestID, Payload: e.Webhook, Err: e.Err, Duration: e.Duration,
			})
		case action.KindUsersboxTest:
			ok = d.usersbox.Settle(action.SettledMsg[api.UsersboxResult]{
				Kind: e.Kind, RequestID: e.RequestID, Payload: e.Usersbox, Err: e.Err, Duration: e.Duration,
			})
		}
		if !ok {
			return Transition{}
		}
		d.record(e)
		return Transition{Recorded: true}

	case TabSelected:
		e.From = d.router.Active()
		if !d.router.Select(e.Tab) {
			return Transition{}
		}
		d.record(e)
		return Transition{Recorded: true}

	default:
		panic(fmt.Sprintf("state: unknown event %T", ev))
	}
}

func (d *Dashboard) record(ev Event) {
	d.seq++
	d.history = append(d.history, Entry{Seq: d.seq, Event: ev})
	if over := len(d.history) - d.limit; over > 0 {
		d.history = append(d.history[:0:0], d.history[over:]...)
	}
}

// History returns the recorded events, oldest first.
func (d *Dashboard) History() []Entry {
	out := make([]Entry, len(d.history))
	copy(out, d.history)
	return out
}

// Tab returns the active tab.
func (d *Dashboard) Tab() Tab { return d.router.Active() }

// NextTab returns the tab after the active one.
func (d *Dashboard) NextTab() Tab { return d.router.Next() }

// PrevTab returns the tab before the active one.
func (d *Dashboard) PrevTab() Tab { return d.router.Prev() }

// Loading reports whether no fetch has settled yet.
func (d *Dashboard) Loading() bool { return d.store.Loading() }

// Snapshot is an immutable view of the dashboard for rendering.
type Snapshot struct {
	Loading   bool
	// Fetching is true while the latest request of any resource is unsettled.
	Fetching  bool
	Tab       Tab
	Stats     *api.StatsSnapshot
	Users     *api.UsersResponse
	Referrals *api.ReferralsResponse
	Webhook   action.Status[api.WebhookResult]
	Usersbox  action.Status[api.UsersboxResult]
}

// Snapshot captures the current state.
func (d *Dashboard) Snapshot() Snapshot {
	return Snapshot{
		Loading:   d.store.Loading(),
		Fetching:  d.store.InFlight(),
		Tab:       d.router.Active(),
		Stats:     d.store.Stats,
		Users:     d.store.Users,
		Referrals: d.store.Referrals,
		Webhook:   d.webhook.Status(),
		Usersbox:  d.usersbox.Status(),
	}
}
