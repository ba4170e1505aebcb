package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"overview", TabOverview, false},
		{"users", TabUsers, false},
		{"referrals", TabReferrals, false},
		{"activity", TabActivity, false},
		{"Users", TabOverview, true},
		{"", TabOverview, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTab(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRouter_Select(t *testing.T) {
	var r Router
	assert.Equal(t, TabOverview, r.Active())

	assert.True(t, r.Select(TabUsers))
	assert.Equal(t, TabUsers, r.Active())

	assert.False(t, r.Select(TabUsers), "selecting the active tab is a no-op")
	assert.Equal(t, TabUsers, r.Active())
}

func TestRouter_SelectInvalidPanics(t *testing.T) {
	var r Router
	assert.Panics(t, func() { r.Select(Tab(7)) })
	assert.Panics(t, func() { r.Select(Tab(-1)) })
	assert.Equal(t, TabOverview, r.Active())
}

func TestRouter_Cycle(t *testing.T) {
	var r Router
	assert.Equal(t, TabUsers, r.Next())
	assert.Equal(t, TabActivity, r.Prev())

	r.Select(TabActivity)
	assert.Equal(t, TabOverview, r.Next())
	assert.Equal(t, TabReferrals, r.Prev())
}

func TestTab_Labels(t *testing.T) {
	for _, tab := range Tabs() {
		assert.True(t, tab.Valid())
		assert.NotEmpty(t, tab.Label())
	}
	assert.Equal(t, "👥 Пользователи", TabUsers.Label())
	assert.False(t, Tab(4).Valid())
	assert.Equal(t, "Tab(4)", Tab(4).String())
}
