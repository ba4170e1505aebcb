package ui

import (
	"context"
	"errors"
	"testing"

	"botdash/internal/api"
	"botdash/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOnce_SettlesEveryResource(t *testing.T) {
	b := &fakeBackend{usersErr: errors.New("users down")}
	d := state.NewDashboard(b)
	rec := &fakeRecorder{}

	loaded := LoadOnce(b, d, rec)
	require.Len(t, loaded, 3)

	snap := d.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Stats)
	assert.Equal(t, 42, snap.Stats.TotalUsers)
	assert.Nil(t, snap.Users, "failed fetch leaves the resource absent")
	assert.NotNil(t, snap.Referrals)

	assert.ElementsMatch(t, []string{"stats:ok", "users:error", "referrals:ok"}, rec.fetches)
	for _, ev := range loaded {
		if ev.Resource == state.ResourceUsers {
			assert.Equal(t, state.Failed, ev.Result)
			assert.EqualError(t, ev.Err, "users down")
		}
	}
}

func TestLoadOnce_NilRecorder(t *testing.T) {
	b := &fakeBackend{}
	d := state.NewDashboard(b)
	assert.NotPanics(t, func() { LoadOnce(b, d, nil) })
	assert.NotNil(t, d.Snapshot().Users)
}

type nilStatsBackend struct {
	fakeBackend
}

func (*nilStatsBackend) Stats(context.Context) (*api.StatsSnapshot, error) { return nil, nil }

func TestLoadOnce_NilPayloadIsEmptyResponse(t *testing.T) {
	b := &nilStatsBackend{}
	d := state.NewDashboard(b)

	for _, ev := range LoadOnce(b, d, nil) {
		if ev.Resource == state.ResourceStats {
			assert.ErrorIs(t, ev.Err, api.ErrEmptyResponse)
			assert.Equal(t, state.Failed, ev.Result)
		}
	}
	assert.Nil(t, d.Snapshot().Stats)
}
