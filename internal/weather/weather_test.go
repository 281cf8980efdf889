package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_DisabledWithoutKey(t *testing.T) {
	c := NewClient("", "")
	assert.False(t, c.Enabled())

	cond, err := c.Fetch(context.Background(), 42.77, -78.79)
	require.NoError(t, err)
	assert.Nil(t, cond)
}

func TestFetch_ParsesConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "secret", r.URL.Query().Get("appid"))
		_, _ = w.Write([]byte(`{
			"current": {
				"temp": 4.5,
				"wind_speed": 10.0,
				"weather": [{"description": "light snow"}]
			}
		}`))
	}))
	defer srv.Close()

	cond, err := NewClient(srv.URL, "secret").Fetch(context.Background(), 42.77, -78.79)
	require.NoError(t, err)
	require.NotNil(t, cond)
	assert.Equal(t, 4.5, cond.TempC)
	assert.InDelta(t, 36.0, cond.WindKph, 1e-9, "m/s converts to km/h")
	assert.Equal(t, "light snow", cond.Description)
}

func TestFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad").Fetch(context.Background(), 0, 0)
	assert.Error(t, err)
}
