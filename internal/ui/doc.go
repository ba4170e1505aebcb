// Package ui is the interactive Bubble Tea front end of the dashboard.
//
// Core pieces:
//   - AppModel: root model; owns the state.Dashboard and is its only mutator
//   - PageView: the rendered page inside a scrollable viewport, plus the spinner
//   - HistoryView: the recorded transition events, newest last
//   - KeybindRegistry / KeyHandler: single keys and SPC-prefixed sequences
//
// Fetches and actions run as tea.Cmds and report back as messages; Update
// turns each message into a state event.
package ui
