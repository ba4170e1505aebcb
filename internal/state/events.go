package state

import (
	"time"

	"botdash/internal/action"
	"botdash/internal/api"
)

// Event is a named transition of the dashboard state. Events are the only
// input Dashboard.Apply accepts.
type Event interface {
	Name() string
}

// Request identifies one issued fetch.
type Request struct {
	Resource   Resource
	Generation uint64
}

// RefreshRequested reloads all three resources. Apply fills in Requests with
// the generations it issued.
type RefreshRequested struct {
	Requests []Request
}

// ResourceLoaded settles one fetch. Exactly one of the payload fields
// matching Resource is set on success; Err is set on failure.
type ResourceLoaded struct {
	Resource   Resource
	Generation uint64
	Stats      *api.StatsSnapshot
	Users      *api.UsersResponse
	Referrals  *api.ReferralsResponse
	Err        error
	Duration   time.Duration

	// Result is filled in by Apply.
	Result ApplyResult
}

// ActionStarted invokes one of the actions. Apply fills in RequestID.
type ActionStarted struct {
	Kind      action.Kind
	RequestID string
}

// ActionSettled completes an action invocation.
type ActionSettled struct {
	Kind      action.Kind
	RequestID string
	Webhook   *api.WebhookResult
	Usersbox  *api.UsersboxResult
	Err       error
	Duration  time.Duration
}

// Outcome classifies the settle.
func (e ActionSettled) Outcome() action.Outcome {
	if e.Err != nil {
		return action.OutcomeError
	}
	return action.OutcomeSuccess
}

// TabSelected switches the active tab. Apply fills in From.
type TabSelected struct {
	Tab  Tab
	From Tab
}

func (RefreshRequested) Name() string { return "RefreshRequested" }
func (ResourceLoaded) Name() string   { return "ResourceLoaded" }
func (ActionStarted) Name() string    { return "ActionStarted" }
func (ActionSettled) Name() string    { return "ActionSettled" }
func (TabSelected) Name() string      { return "TabSelected" }

// WebhookSettled converts the runner's message into an event.
func WebhookSettled(msg action.SettledMsg[api.WebhookResult]) ActionSettled {
	return ActionSettled{
		Kind:      msg.Kind,
		RequestID: msg.RequestID,
		Webhook:   msg.Payload,
		Err:       msg.Err,
		Duration:  msg.Duration,
	}
}

// UsersboxSettled converts the runner's message into an event.
func UsersboxSettled(msg action.SettledMsg[api.UsersboxResult]) ActionSettled {
	return ActionSettled{
		Kind:      msg.Kind,
		RequestID: msg.RequestID,
		Usersbox:  msg.Payload,
		Err:       msg.Err,
		Duration:  msg.Duration,
	}
}
