package sleeper

import (
	"context"
	"fmt"
	"time"

	"github.com/longsdenyell/sleeper-gameday/internal/state"
)

// FetchMatchup assembles the user's matchup snapshot for one league: it pulls
// the league's members, rosters, and week matchups, pairs the user's entry
// with its opponent, and returns a fully typed snapshot. The raw provider
// payloads never leave this package.
func (c *Client) FetchMatchup(ctx context.Context, userID string, league League, week int, projections map[string]float64) (state.MatchupSnapshot, error) {
	users, err := c.LeagueUsers(ctx, league.LeagueID)
	if err != nil {
		return state.MatchupSnapshot{}, fmt.Errorf("league %s users: %w", league.LeagueID, err)
	}
	rosters, err := c.LeagueRosters(ctx, league.LeagueID)
	if err != nil {
		return state.MatchupSnapshot{}, fmt.Errorf("league %s rosters: %w", league.LeagueID, err)
	}
	matchups, err := c.Matchups(ctx, league.LeagueID, week)
	if err != nil {
		return state.MatchupSnapshot{}, fmt.Errorf("league %s matchups: %w", league.LeagueID, err)
	}
	return buildSnapshot(userID, league, week, users, rosters, matchups, projections)
}

// buildSnapshot is the pure assembly step, split out for tests.
func buildSnapshot(userID string, league League, week int, users []LeagueUser, rosters []Roster, matchups []Matchup, projections map[string]float64) (state.MatchupSnapshot, error) {
	usersByID := make(map[string]LeagueUser, len(users))
	for _, u := range users {
		usersByID[u.UserID] = u
	}
	rostersByID := make(map[int]Roster, len(rosters))
	var ownRoster *Roster
	for _, r := range rosters {
		rostersByID[r.RosterID] = r
		if r.OwnedBy(userID) {
			own := r
			ownRoster = &own
		}
	}
	if ownRoster == nil {
		return state.MatchupSnapshot{}, fmt.Errorf("league %s: no roster owned by user %s", league.LeagueID, userID)
	}

	var own, opponent *Matchup
	for i := range matchups {
		if matchups[i].RosterID == ownRoster.RosterID {
			own = &matchups[i]
			break
		}
	}
	if own == nil {
		return state.MatchupSnapshot{}, fmt.Errorf("league %s: no matchup for roster %d in week %d", league.LeagueID, ownRoster.RosterID, week)
	}
	for i := range matchups {
		if matchups[i].MatchupID == own.MatchupID && matchups[i].RosterID != own.RosterID {
			opponent = &matchups[i]
			break
		}
	}

	snap := state.MatchupSnapshot{
		LeagueID:        league.LeagueID,
		LeagueName:      league.Name,
		Season:          league.Season,
		TotalTeams:      league.TotalRosters,
		Week:            week,
		OwnTeamName:     teamName(usersByID, ownRoster.OwnerID, "You"),
		OwnPoints:       own.Points,
		OwnStarters:     own.Starters,
		OwnPlayerPoints: own.PlayersPoints,
		Bench:           benchPlayers(ownRoster.Players, own.Starters),
		ProjectedPoints: map[string]float64{},
		FetchedAt:       time.Now(),
	}
	snap.OwnProjected = sumProjections(snap.ProjectedPoints, own.Starters, projections)

	snap.OpponentTeamName = "Opponent"
	if opponent != nil {
		snap.OpponentPoints = opponent.Points
		snap.OpponentStarters = opponent.Starters
		snap.OpponentPlayerPoints = opponent.PlayersPoints
		snap.OpponentProjected = sumProjections(snap.ProjectedPoints, opponent.Starters, projections)
		if oppRoster, ok := rostersByID[opponent.RosterID]; ok {
			snap.OpponentTeamName = teamName(usersByID, oppRoster.OwnerID, "Opponent")
		}
	}
	return snap, nil
}

func teamName(usersByID map[string]LeagueUser, ownerID, fallback string) string {
	u, ok := usersByID[ownerID]
	if !ok {
		return fallback
	}
	if name := u.TeamName(); name != "" {
		return name
	}
	return fallback
}

// benchPlayers returns rostered players not in the starting lineup, keeping
// roster order.
func benchPlayers(players, starters []string) []string {
	starting := make(map[string]bool, len(starters))
	for _, id := range starters {
		starting[id] = true
	}
	var bench []string
	for _, id := range players {
		if !starting[id] {
			bench = append(bench, id)
		}
	}
	return bench
}

// sumProjections accumulates each starter's projection into byID and returns
// the team total. Unknown players project to zero.
func sumProjections(byID map[string]float64, starters []string, projections map[string]float64) float64 {
	var total float64
	for _, pid := range starters {
		p := projections[pid]
		byID[pid] = p
		total += p
	}
	return total
}
