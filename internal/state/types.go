package state

import "time"

// MatchupSnapshot is one polling cycle's view of a single league's matchup,
// built at the provider boundary. Snapshots are replaced wholesale on each
// poll; they are never mutated in place.
type MatchupSnapshot struct {
	LeagueID   string
	LeagueName string
	Season     string
	TotalTeams int
	Week       int

	OwnTeamName      string
	OpponentTeamName string

	OwnPoints      float64
	OpponentPoints float64

	// Starter ids preserve lineup slot order.
	OwnStarters      []string
	OpponentStarters []string

	// Points per player for each side of the matchup.
	OwnPlayerPoints      map[string]float64
	OpponentPlayerPoints map[string]float64

	// Rostered players not in the starting lineup.
	Bench []string

	OwnProjected      float64
	OpponentProjected float64
	ProjectedPoints   map[string]float64

	FetchedAt time.Time
}

// Delta captures what changed between two consecutive snapshots of a league.
// It is consumed by the highlight scheduler and then discarded.
type Delta struct {
	LeagueID            string
	OwnPointsDelta      float64
	OpponentPointsDelta float64

	// Player ids whose points strictly increased, across both rosters.
	ChangedPlayerIDs map[string]bool
}

// LeagueStatus reports the health of the most recent fetches for a league.
type LeagueStatus struct {
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// Stale returns true when the league has failed several polls in a row.
func (s LeagueStatus) Stale() bool {
	return s.ConsecutiveFailures >= 2
}
