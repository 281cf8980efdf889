// Package flash owns the short-lived highlight state driven by scoring
// deltas: a score flash on any point movement, a tile flash on a
// scoring-play-sized jump, and per-player highlights for everyone whose
// points went up. Each flash auto-clears on its own timer; nothing else in
// the program clears flash state.
package flash
