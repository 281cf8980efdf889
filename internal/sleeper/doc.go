// Package sleeper is the data-provider boundary: an HTTP client for the
// Sleeper fantasy API plus the assembly step that turns its raw league,
// roster, and matchup payloads into typed matchup snapshots. Everything
// downstream of this package operates on validated types and opaque player
// ids only.
package sleeper
