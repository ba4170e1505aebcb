package ui

import (
	"sync"

	"botdash/internal/api"
	"botdash/internal/state"

	"go.uber.org/zap"
)

// LoadOnce refreshes d and blocks until every resource has settled. The
// fetches run concurrently; results are applied in arrival order on the
// calling goroutine. It is used outside the interactive program.
func LoadOnce(b api.Backend, d *state.Dashboard, r Recorder) []state.ResourceLoaded {
	if r == nil {
		r = nopRecorder{}
	}
	tr := d.Apply(state.RefreshRequested{})

	results := make(chan state.ResourceLoaded, len(tr.Requests))
	var wg sync.WaitGroup
	for _, req := range tr.Requests {
		wg.Add(1)
		go func(req state.Request) {
			defer wg.Done()
			results <- fetch(b, req)
		}(req)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	loaded := make([]state.ResourceLoaded, 0, len(tr.Requests))
	for ev := range results {
		applied := d.Apply(ev)
		r.ObserveFetch(ev.Resource.String(), fetchResults[applied.Result], ev.Duration)
		if applied.Result == state.Failed {
			zap.L().Warn("fetch failed",
				zap.String("resource", ev.Resource.String()),
				zap.Duration("duration", ev.Duration),
				zap.Error(ev.Err))
		}
		ev.Result = applied.Result
		loaded = append(loaded, ev)
	}
	return loaded
}
