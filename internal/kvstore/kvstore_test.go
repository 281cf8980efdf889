package kvstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_MissingKey(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "state.json"))

	var v string
	assert.False(t, s.Get("nope", &v))
}

func TestSetGet_Roundtrip(t *testing.T) {
	s := Open(filepath.Join(t.TempDir(), "state.json"))

	type prefs struct {
		Username string `json:"username"`
		Interval int    `json:"interval"`
	}
	require.NoError(t, s.Set("settings", prefs{Username: "denyell", Interval: 30}))

	var got prefs
	require.True(t, s.Get("settings", &got))
	assert.Equal(t, "denyell", got.Username)
	assert.Equal(t, 30, got.Interval)
}

func TestSet_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "state.json")

	s := Open(path)
	require.NoError(t, s.Set("order", []string{"a", "b"}))

	reopened := Open(path)
	var order []string
	require.True(t, reopened.Get("order", &order))
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path)
	var v any
	assert.False(t, s.Get("anything", &v))

	// And the store still accepts writes afterwards.
	require.NoError(t, s.Set("k", "v"))
	var got string
	require.True(t, s.Get("k", &got))
	assert.Equal(t, "v", got)
}

func TestGet_CorruptValueTreatedAsAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"order":"not-an-array"}`), 0o644))

	s := Open(path)
	var order []string
	assert.False(t, s.Get("order", &order))
}

func TestOpen_DefaultPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s := Open("")
	require.NoError(t, s.Set("k", 1))

	_, err := os.Stat(filepath.Join(home, ".config", "gameday", "state.json"))
	assert.NoError(t, err)
}
