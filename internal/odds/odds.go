// Package odds fetches betting lines keyed by normalized team abbreviation.
// The provider is optional: a client without an endpoint configured reports
// no data, and callers render that rather than erroring.
package odds

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
)

const requestTimeout = 8 * time.Second

// Line is the subset of a game line the dashboard shows.
type Line struct {
	Team     string  `json:"team"`
	Spread   float64 `json:"spread"`
	Total    float64 `json:"total"`
	Favorite string  `json:"favorite"`
}

// Client fetches lines from a normalized odds endpoint.
type Client struct {
	url  string
	http *http.Client
}

// NewClient builds a client for the given endpoint. An empty endpoint
// disables the provider.
func NewClient(url string) *Client {
	return &Client{
		url:  strings.TrimSpace(url),
		http: &http.Client{Timeout: requestTimeout},
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// Fetch returns current lines indexed by team abbreviation. A disabled
// client returns an empty map and no error.
func (c *Client) Fetch(ctx context.Context) (map[string]Line, error) {
	if !c.Enabled() {
		return map[string]Line{}, nil
	}

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
		return nil, fmt.Errorf("odds endpoint returned status %d", resp.StatusCode)
	}

	var lines []Line
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&lines); err != nil {
		return nil, fmt.Errorf("decode odds: %w", err)
	}

	out := make(map[string]Line, len(lines))
	for _, line := range lines {
		abbr := strings.ToUpper(strings.TrimSpace(line.Team))
		if abbr == "" {
			continue
		}
		line.Team = abbr
		out[abbr] = line
	}
	return out, nil
}
