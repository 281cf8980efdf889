package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardFixture = `{
	"events": [
		{
			"id": "401547401",
			"date": "2025-10-12T17:00Z",
			"competitions": [{
				"status": {"type": {"state": "in"}},
				"venue": {
					"fullName": "Highmark Stadium",
					"address": {"latitude": 42.7738, "longitude": -78.787}
				},
				"competitors": [
					{"team": {"abbreviation": "BUF"}},
					{"team": {"abbreviation": "mia"}}
				]
			}]
		},
		{
			"id": "401547402",
			"date": "not-a-date",
			"competitions": [{
				"status": {"type": {"state": "scheduled"}},
				"competitors": [{"team": {"abbreviation": "KC"}}]
			}]
		},
		{"id": "broken", "competitions": []}
	]
}`

func TestListGames_Normalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(scoreboardFixture))
	}))
	defer srv.Close()

	games, err := NewClient(srv.URL).ListGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2, "event without competitions is dropped")

	live := games[0]
	assert.Equal(t, StatusIn, live.Status)
	assert.False(t, live.Kickoff.IsZero())
	require.NotNil(t, live.Venue)
	assert.Equal(t, "Highmark Stadium", live.Venue.Name)
	assert.Equal(t, 42.7738, live.Venue.Latitude)
	assert.Equal(t, []string{"BUF", "MIA"}, live.TeamAbbr, "abbreviations are upcased")

	// Unknown state strings fall back to in-progress, matching the upstream
	// behavior of only ever reporting pre/in/post.
	assert.Equal(t, StatusIn, games[1].Status)
	assert.True(t, games[1].Kickoff.IsZero())
	assert.Nil(t, games[1].Venue)
}

func TestListGames_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListGames(context.Background())
	assert.Error(t, err)
}

func TestByTeam(t *testing.T) {
	games := []Game{
		{ID: "g1", TeamAbbr: []string{"BUF", "MIA"}},
		{ID: "g2", TeamAbbr: []string{"KC"}},
	}

	byTeam := ByTeam(games)
	assert.Equal(t, "g1", byTeam["BUF"].ID)
	assert.Equal(t, "g1", byTeam["MIA"].ID)
	assert.Equal(t, "g2", byTeam["KC"].ID)
	_, ok := byTeam["SEA"]
	assert.False(t, ok)
}
