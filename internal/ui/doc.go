// Package ui provides the Bubble Tea TUI for Gameday.
//
// # Overview
//
// The UI is a board of league tiles. Each tile shows one league's matchup:
// team names, total scores, starting lineups with per-player points, bench
// count, and projected totals. Up to two leagues can be pinned to featured
// slots at the top of the board; featured tiles also show game context
// (betting line, venue weather) when those providers are configured.
//
// # Rendering Model
//
// The model itself holds almost no data. On every redraw tick it reads the
// current arrangement from the layout manager, snapshots from the state
// store, and flash status from the scheduler, and renders what it finds.
// Flashes are therefore drawn and cleared without any message plumbing; the
// tick just has to fire more often than the shortest flash duration.
//
// # Keyboard
//
// Selection moves with j/k, the selected tile moves with J/K, 1 and 2 pin
// it to a featured slot, 0 unpins it, and enter toggles collapse. All
// arrangement changes go through the layout manager, which persists them
// immediately. r requests an immediate poll cycle.
package ui
