// Package config handles loading and parsing Gameday configuration files.
//
// # Overview
//
// This package reads Gameday's TOML configuration to discover the Sleeper
// username to follow, optional overrides for season and week, poll cadence,
// highlight tuning, and the optional odds and weather integrations.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gameday/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/gameday/config.toml
//   - Poll interval: 30 seconds
//   - Score flash: 900ms, tile flash: 1200ms, player flash: 2000ms
//   - Tile flash threshold: 6.0 points
//
// # TOML Format
//
// Example config.toml:
//
//	username = "longsdenyell"
//	season = "2025"
//	week = 7
//	interval_seconds = 30
//
//	[flash]
//	score_ms = 900
//	tile_ms = 1200
//	player_ms = 2000
//	tile_threshold = 6.0
//
//	[odds]
//	endpoint = "https://example.com/lines"
//
//	[weather]
//	api_key = "..."
//
// All fields are optional except username, which the application requires at
// startup. Tilde expansion is performed automatically for paths.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Missing config files are NOT an error - defaults are used instead, and the
// username can still be supplied on the command line.
package config
