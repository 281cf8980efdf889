// Package state owns the per-league matchup snapshots and the diff between
// consecutive polls.
//
// Store.Apply is the sole mutation entry point: it compares the incoming
// snapshot against the stored one, replaces it (never merges), and returns a
// Delta describing score and per-player movement. Deltas report strict
// increases only; score corrections that lower points are absorbed without
// producing activity. The store also tracks per-league fetch health so the UI
// can flag leagues whose data has gone stale.
package state
