// Package app provides the orchestration layer for the Gameday application.
//
// # Overview
//
// This package wires together configuration, the Sleeper client, polling,
// state management, flash scheduling, layout, and the UI to create the
// complete Gameday TUI experience. It serves as the composition root where
// all dependencies are initialized and connected.
//
// # Startup Sequence
//
//  1. Load configuration from ~/.config/gameday/config.toml
//  2. Resolve the current NFL season and week from the Sleeper state endpoint
//  3. Look up the followed user and their leagues for the season
//  4. Fetch the player directory and weekly projections (best effort)
//  5. Open the persisted key/value store and reconcile the tile layout
//     against the live league set
//  6. Start the background poller, which fans out one matchup fetch per
//     league each interval and feeds snapshots through the diff store into
//     the flash scheduler
//  7. Gather optional game context (scoreboard, odds, weather) in one shot
//  8. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Failures that make the dashboard meaningless are fatal: a bad config
// file, an unreachable Sleeper API, an unknown username, or an empty league
// list. Enrichment failures (player directory, projections, scoreboard,
// odds, weather) log a warning and degrade the display instead.
//
// Once running, per-league poll failures are recorded in the store and
// surfaced as staleness; polling continues for the other leagues.
package app
