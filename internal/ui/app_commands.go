package ui

import (
	"context"
	"fmt"
	"time"

	"botdash/internal/api"
	"botdash/internal/state"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Recorder receives fetch and action outcomes, typically for metrics.
type Recorder interface {
	ObserveFetch(resource, result string, d time.Duration)
	ObserveAction(kind, outcome string, d time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) ObserveFetch(string, string, time.Duration)  {}
func (nopRecorder) ObserveAction(string, string, time.Duration) {}

// loadAllCmd returns one command per request, batched so the fetches run
// concurrently. Each settles on its own; there is no join.
func loadAllCmd(b api.Backend, reqs []state.Request) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(reqs))
	for _, req := range reqs {
		cmds = append(cmds, fetchCmd(b, req))
	}
	return tea.Batch(cmds...)
}

// fetchCmd returns a command that fetches one resource and reports it as a
// state.ResourceLoaded carrying the request's generation.
func fetchCmd(b api.Backend, req state.Request) tea.Cmd {
	return func() tea.Msg {
		return fetch(b, req)
	}
}

func fetch(b api.Backend, req state.Request) (ev state.ResourceLoaded) {
	start := time.Now()
	ev = state.ResourceLoaded{Resource: req.Resource, Generation: req.Generation}
	defer func() {
		if p := recover(); p != nil {
			ev.Stats, ev.Users, ev.Referrals = nil, nil, nil
			ev.Err = fmt.Errorf("fetch %s: panic: %v", req.Resource, p)
		}
		ev.Duration = time.Since(start)
	}()

	ctx := api.WithRequestID(context.Background(), uuid.NewString())
	switch req.Resource {
	case state.ResourceStats:
		ev.Err = fetchInto(ctx, b.Stats, &ev.Stats)
	case state.ResourceUsers:
		ev.Err = fetchInto(ctx, b.Users, &ev.Users)
	case state.ResourceReferrals:
		ev.Err = fetchInto(ctx, b.Referrals, &ev.Referrals)
	default:
		ev.Err = fmt.Errorf("unknown resource %s", req.Resource)
	}
	return ev
}

func fetchInto[T any](ctx context.Context, call func(context.Context) (*T, error), dst **T) error {
	v, err := call(ctx)
	if err != nil {
		return err
	}
	if v == nil {
		return api.ErrEmptyResponse
	}
	*dst = v
	return nil
}
