// Package espn fetches the NFL scoreboard for game context: kickoff times,
// game state, and venue coordinates. It is display enrichment only; matchup
// diffing never depends on it.
package espn

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

const (
	defaultScoreboardURL = "https://site.api.espn.com/apis/site/v2/sports/football/nfl/scoreboard"
	requestTimeout       = 8 * time.Second
)

// GameStatus is the coarse state of an NFL game.
type GameStatus string

const (
	StatusPre  GameStatus = "pre"
	StatusIn   GameStatus = "in"
	StatusPost GameStatus = "post"
)

// Venue locates a game for weather lookups.
type Venue struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Game is a normalized scoreboard entry.
type Game struct {
	ID       string
	Kickoff  time.Time
	Status   GameStatus
	Venue    *Venue
	TeamAbbr []string
}

// Client fetches the scoreboard.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a scoreboard client; an empty url uses the public ESPN
// endpoint.
func NewClient(url string) *Client {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		trimmed = defaultScoreboardURL
	}
	return &Client{
		url:  trimmed,
		http: &http.Client{Timeout: requestTimeout},
	}
}

// scoreboard mirrors just the fields of the ESPN payload we read.
type scoreboard struct {
	Events []struct {
		ID           string `json:"id"`
		Date         string `json:"date"`
		Competitions []struct {
			Status struct {
				Type struct {
					State string `json:"state"`
				} `json:"type"`
			} `json:"status"`
			Venue *struct {
				FullName string `json:"fullName"`
				Address  struct {
					Latitude  float64 `json:"latitude"`
					Longitude float64 `json:"longitude"`
				} `json:"address"`
			} `json:"venue"`
			Competitors []struct {
				Team struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
			} `json:"competitors"`
		} `json:"competitions"`
	} `json:"events"`
}

// ListGames fetches and normalizes today's scoreboard.
func (c *Client) ListGames(ctx context.Context) ([]Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("espn scoreboard returned status %d", resp.StatusCode)
	}

	var payload scoreboard
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode scoreboard: %w", err)
	}

	games := make([]Game, 0, len(payload.Events))
	for _, ev := range payload.Events {
		if len(ev.Competitions) == 0 {
			continue
		}
		comp := ev.Competitions[0]

		g := Game{ID: ev.ID, Status: normalizeStatus(comp.Status.Type.State), Kickoff: parseKickoff(ev.Date)}
		if comp.Venue != nil {
			g.Venue = &Venue{
				Name:      comp.Venue.FullName,
				Latitude:  comp.Venue.Address.Latitude,
				Longitude: comp.Venue.Address.Longitude,
			}
		}
		for _, c := range comp.Competitors {
			if abbr := strings.ToUpper(strings.TrimSpace(c.Team.Abbreviation)); abbr != "" {
				g.TeamAbbr = append(g.TeamAbbr, abbr)
			}
		}
		games = append(games, g)
	}
	return games, nil
}

// ByTeam indexes games by competitor abbreviation.
func ByTeam(games []Game) map[string]Game {
	out := make(map[string]Game, len(games)*2)
	for _, g := range games {
		for _, abbr := range g.TeamAbbr {
			out[abbr] = g
		}
	}
	return out
}

// parseKickoff handles the scoreboard's minute-precision timestamps as well
// as full RFC3339.
func parseKickoff(value string) time.Time {
	for _, layout := range []string{"2006-01-02T15:04Z07:00", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func normalizeStatus(state string) GameStatus {
	switch state {
	case "pre":
		return StatusPre
	case "post":
		return StatusPost
	default:
		return StatusIn
	}
}
