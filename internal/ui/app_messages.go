package ui

import (
	"botdash/internal/action"
	"botdash/internal/state"
)

// Fetch results arrive as state.ResourceLoaded and action results as
// action.SettledMsg; the messages below are user intents.

// SelectTabMsg is sent when the user picks a tab directly (1-4).
type SelectTabMsg struct {
	Tab state.Tab
}

// NextTabMsg cycles to the following tab (tab).
type NextTabMsg struct{}

// PrevTabMsg cycles to the preceding tab (shift+tab).
type PrevTabMsg struct{}

// RefreshMsg reloads all three resources (r).
type RefreshMsg struct{}

// InvokeActionMsg triggers one of the actions (w, t).
type InvokeActionMsg struct {
	Kind action.Kind
}

// ToggleHistoryMsg switches between the page and the event history (h).
type ToggleHistoryMsg struct{}
