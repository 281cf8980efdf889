package odds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_DisabledReturnsEmpty(t *testing.T) {
	c := NewClient("")
	assert.False(t, c.Enabled())

	lines, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFetch_IndexesByUpcasedTeam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"team":"buf","spread":-3.5,"total":47.5,"favorite":"BUF"},
			{"team":"","spread":1.0}
		]`))
	}))
	defer srv.Close()

	lines, err := NewClient(srv.URL).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, -3.5, lines["BUF"].Spread)
	assert.Equal(t, 47.5, lines["BUF"].Total)
}

func TestFetch_UpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Fetch(context.Background())
	assert.Error(t, err)
}
