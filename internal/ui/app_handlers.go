package ui

import (
	"botdash/internal/action"
	"botdash/internal/api"
	"botdash/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Action outcome labels reported to the Recorder.
const (
	outcomeSuccess  = "success"
	outcomeRejected = "rejected" // call completed, backend reported status != success
	outcomeError    = "error"
)

// Fetch result labels reported to the Recorder.
var fetchResults = map[state.ApplyResult]string{
	state.Applied: "ok",
	state.Failed:  "error",
	state.Stale:   "stale",
}

// refresh issues a new generation for every resource and starts the fetches.
// In-flight requests are not cancelled; their responses become stale.
func (a *AppModel) refresh() tea.Cmd {
	tr := a.State.Apply(state.RefreshRequested{})
	for _, r := range tr.Requests {
		zap.L().Debug("fetch issued",
			zap.String("resource", r.Resource.String()),
			zap.Uint64("generation", r.Generation))
	}
	return tea.Batch(loadAllCmd(a.Backend, tr.Requests), a.render())
}

func (a *appModelAdapter) handleResourceLoaded(ev state.ResourceLoaded) (tea.Model, tea.Cmd) {
	tr := a.State.Apply(ev)
	a.Recorder.ObserveFetch(ev.Resource.String(), fetchResults[tr.Result], ev.Duration)

	fields := []zap.Field{
		zap.String("resource", ev.Resource.String()),
		zap.Uint64("generation", ev.Generation),
		zap.Duration("duration", ev.Duration),
	}
	switch tr.Result {
	case state.Applied:
		zap.L().Debug("fetch applied", fields...)
	case state.Stale:
		zap.L().Debug("stale response discarded", fields...)
	case state.Failed:
		zap.L().Warn("fetch failed", append(fields, zap.Error(ev.Err))...)
	}
	return a, a.render()
}

func (a *appModelAdapter) handleInvokeAction(kind action.Kind) (tea.Model, tea.Cmd) {
	// The action panels are not on screen until the first fetch settles.
	if a.State.Loading() {
		return a, nil
	}
	tr := a.State.Apply(state.ActionStarted{Kind: kind})
	if !tr.Recorded {
		return a, nil
	}
	hist := a.State.History()
	started := hist[len(hist)-1].Event.(state.ActionStarted)
	zap.L().Info("action started",
		zap.String("action", string(kind)),
		zap.String("request_id", started.RequestID))
	return a, tea.Batch(tr.Cmd, a.render())
}

func (a *appModelAdapter) handleActionSettled(ev state.ActionSettled, outcome string) (tea.Model, tea.Cmd) {
	if !a.State.Apply(ev).Recorded {
		zap.L().Debug("ignored settle for unknown invocation",
			zap.String("action", string(ev.Kind)),
			zap.String("request_id", ev.RequestID))
		return a, nil
	}
	if ev.Err != nil {
		outcome = outcomeError
	}
	a.Recorder.ObserveAction(string(ev.Kind), outcome, ev.Duration)

	fields := []zap.Field{
		zap.String("action", string(ev.Kind)),
		zap.String("request_id", ev.RequestID),
		zap.String("outcome", outcome),
		zap.Duration("duration", ev.Duration),
	}
	if outcome == outcomeSuccess {
		zap.L().Info("action settled", fields...)
	} else {
		zap.L().Warn("action settled", append(fields, zap.Error(ev.Err))...)
	}
	return a, a.render()
}

func (a *appModelAdapter) handleSelectTab(t state.Tab) (tea.Model, tea.Cmd) {
	if a.State.Loading() {
		return a, nil
	}
	if !a.State.Apply(state.TabSelected{Tab: t}).Recorded {
		return a, nil
	}
	a.Page.viewport.GotoTop()
	return a, a.render()
}

func webhookOutcome(r *api.WebhookResult) string {
	if r != nil && r.OK() {
		return outcomeSuccess
	}
	return outcomeRejected
}

func usersboxOutcome(r *api.UsersboxResult) string {
	if r != nil && r.OK() {
		return outcomeSuccess
	}
	return outcomeRejected
}
