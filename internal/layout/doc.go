// Package layout manages the user's tile arrangement: drag ordering,
// per-tile collapse, and the two featured board slots. Mutations are pure
// command functions over an immutable State value; the Manager applies them,
// enforces the one-slot-per-league invariant, and persists every result.
package layout
