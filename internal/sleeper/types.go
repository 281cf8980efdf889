package sleeper

import "strings"

// NFLState mirrors the payload returned by /state/nfl.
type NFLState struct {
	Week       int    `json:"week"`
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
}

// User mirrors /user/{username}.
type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

// League mirrors one entry of /user/{id}/leagues/nfl/{season}.
type League struct {
	LeagueID        string   `json:"league_id"`
	Name            string   `json:"name"`
	Season          string   `json:"season"`
	TotalRosters    int      `json:"total_rosters"`
	RosterPositions []string `json:"roster_positions"`
}

// LeagueUser mirrors one entry of /league/{id}/users.
type LeagueUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Metadata    struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

// TeamName returns the user's custom team name, falling back to their
// display name.
func (u LeagueUser) TeamName() string {
	if name := strings.TrimSpace(u.Metadata.TeamName); name != "" {
		return name
	}
	return u.DisplayName
}

// Roster mirrors one entry of /league/{id}/rosters.
type Roster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	CoOwners []string `json:"co_owners"`
	Players  []string `json:"players"`
}

// OwnedBy reports whether the roster belongs to the user, as owner or
// co-owner.
func (r Roster) OwnedBy(userID string) bool {
	if r.OwnerID == userID {
		return true
	}
	for _, id := range r.CoOwners {
		if id == userID {
			return true
		}
	}
	return false
}

// Matchup mirrors one entry of /league/{id}/matchups/{week}. Two entries
// sharing a matchup id are opponents.
type Matchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	Starters      []string           `json:"starters"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

// Player is one entry of the /players/nfl directory.
type Player struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// Directory resolves player ids for display. The diff core never needs it;
// unknown ids render as themselves.
type Directory map[string]Player

// Name returns a display name like "Josh Allen (QB · BUF)", or the raw id
// when the player is unknown.
func (d Directory) Name(playerID string) string {
	p, ok := d[playerID]
	if !ok {
		return playerID
	}
	name := p.FullName
	if name == "" {
		name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	if name == "" {
		name = playerID
	}
	var suffix []string
	if p.Position != "" {
		suffix = append(suffix, p.Position)
	}
	if p.Team != "" {
		suffix = append(suffix, p.Team)
	}
	if len(suffix) == 0 {
		return name
	}
	return name + " (" + strings.Join(suffix, " · ") + ")"
}

// Position returns the player's position, or "" when unknown.
func (d Directory) Position(playerID string) string {
	return d[playerID].Position
}

// projectionRow tolerates the shifting field names the projections feed has
// used for fantasy points.
type projectionRow struct {
	PlayerID      string  `json:"player_id"`
	FantasyPoints float64 `json:"fantasy_points"`
	FPTotal       float64 `json:"fp_total"`
	Pts           float64 `json:"pts"`
}

func (r projectionRow) points() float64 {
	switch {
	case r.FantasyPoints != 0:
		return r.FantasyPoints
	case r.FPTotal != 0:
		return r.FPTotal
	default:
		return r.Pts
	}
}
