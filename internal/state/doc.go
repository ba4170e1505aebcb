// Package state holds the dashboard's client-side state and the named
// transition events that are the only way to change it.
//
// Components:
//   - Store: the three independently fetched resources plus the initial
//     loading flag. Each resource carries a generation counter; only the
//     response to the latest issued request is applied.
//   - Router: the single active tab.
//   - Dashboard: Store, Router and the two action runners behind one
//     Apply-style API that records every accepted event in a bounded history.
//
// Nothing in this package performs I/O. Fetch and action commands live in
// package ui and report back with the events defined here.
package state
