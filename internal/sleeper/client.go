package sleeper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

const (
	defaultBaseURL   = "https://api.sleeper.app/v1"
	defaultUserAgent = "gameday/0.1"
	requestTimeout   = 8 * time.Second
)

// Client talks to the Sleeper HTTP API. The timeout on the embedded
// http.Client bounds every fetch, which is what lets the poller treat a slow
// league the same as a failed one.
type Client struct {
	baseURL   string
	http      *http.Client
	userAgent string
}

// NewClient builds a Client for the given base URL; empty uses the public
// Sleeper API.
func NewClient(baseURL string) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("parse base url %q: %w", baseURL, err)
	}
	return &Client{
		baseURL: trimmed,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// State retrieves the current NFL week and season.
func (c *Client) State(ctx context.Context) (NFLState, error) {
	var payload NFLState
	if err := c.get(ctx, "/state/nfl", nil, &payload); err != nil {
		return NFLState{}, err
	}
	return payload, nil
}

// User looks up a Sleeper user by username.
func (c *Client) User(ctx context.Context, username string) (User, error) {
	var payload User
	if err := c.get(ctx, "/user/"+url.PathEscape(username), nil, &payload); err != nil {
		return User{}, err
	}
	if payload.UserID == "" {
		return User{}, fmt.Errorf("user %q not found", username)
	}
	return payload, nil
}

// Leagues lists the user's leagues for a season.
func (c *Client) Leagues(ctx context.Context, userID, season string) ([]League, error) {
	var payload []League
	path := fmt.Sprintf("/user/%s/leagues/nfl/%s", url.PathEscape(userID), url.PathEscape(season))
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// LeagueUsers lists the members of a league.
func (c *Client) LeagueUsers(ctx context.Context, leagueID string) ([]LeagueUser, error) {
	var payload []LeagueUser
	if err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/users", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// LeagueRosters lists the rosters of a league.
func (c *Client) LeagueRosters(ctx context.Context, leagueID string) ([]Roster, error) {
	var payload []Roster
	if err := c.get(ctx, "/league/"+url.PathEscape(leagueID)+"/rosters", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Matchups lists the week's matchup entries for a league.
func (c *Client) Matchups(ctx context.Context, leagueID string, week int) ([]Matchup, error) {
	var payload []Matchup
	path := fmt.Sprintf("/league/%s/matchups/%d", url.PathEscape(leagueID), week)
	if err := c.get(ctx, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Players downloads the full player directory. The payload is large; callers
// should fetch it once and keep it.
func (c *Client) Players(ctx context.Context) (Directory, error) {
	var payload Directory
	if err := c.get(ctx, "/players/nfl", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// Projections fetches projected fantasy points per player for a week.
func (c *Client) Projections(ctx context.Context, season string, week int) (map[string]float64, error) {
	values := url.Values{}
	values.Set("season", season)
	values.Set("week", strconv.Itoa(week))

	var rows []projectionRow
	if err := c.get(ctx, "/projections/nfl", values, &rows); err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		if row.PlayerID != "" {
			out[row.PlayerID] = row.points()
		}
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	reqURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("sleeper %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := sonic.ConfigDefault.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
