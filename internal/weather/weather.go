// Package weather fetches current conditions for game venues. Like odds,
// it is optional enrichment: no API key means no data, never an error.
package weather

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
	defaultBaseURL = "https://api.openweathermap.org/data/3.0/onecall"
	requestTimeout = 8 * time.Second
)

// Conditions is the venue weather the dashboard shows.
type Conditions struct {
	TempC       float64
	WindKph     float64
	Description string
}

// Client fetches conditions by coordinate.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a weather client. An empty apiKey disables the provider;
// an empty baseURL uses the OpenWeather one-call endpoint.
func NewClient(baseURL, apiKey string) *Client {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	return &Client{
		baseURL: trimmed,
		apiKey:  strings.TrimSpace(apiKey),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// onecall mirrors the fields we read from the OpenWeather payload. Wind
// arrives in m/s because we request metric units.
type onecall struct {
	Current struct {
		Temp      float64 `json:"temp"`
		WindSpeed float64 `json:"wind_speed"`
		Weather   []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"current"`
}

// Fetch returns current conditions at a coordinate, or nil when the provider
// is disabled.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (*Conditions, error) {
	if !c.Enabled() {
		return nil, nil
	}

	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', 4, 64))
	values.Set("units", "metric")
	values.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("weather endpoint returned status %d", resp.StatusCode)
	}

	var payload onecall
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode weather: %w", err)
	}

	cond := &Conditions{
		TempC:   payload.Current.Temp,
		WindKph: payload.Current.WindSpeed * 3.6,
	}
	if len(payload.Current.Weather) > 0 {
		cond.Description = payload.Current.Weather[0].Description
	}
	return cond, nil
}
