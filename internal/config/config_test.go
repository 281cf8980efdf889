package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.IntervalSeconds != defaultInterval {
		t.Fatalf("IntervalSeconds = %d, want %d", cfg.IntervalSeconds, defaultInterval)
	}
	if cfg.Flash.ScoreMS != 900 || cfg.Flash.TileMS != 1200 || cfg.Flash.PlayerMS != 2000 {
		t.Fatalf("Flash = %+v, want default durations", cfg.Flash)
	}
	if cfg.Flash.TileThreshold != 6.0 {
		t.Fatalf("TileThreshold = %v, want 6.0", cfg.Flash.TileThreshold)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
username = "  longsdenyell  "
season = "2025"
week = 7
interval_seconds = 45
sleeper_url = "http://localhost:8080/v1"

[flash]
score_ms = 500
tile_threshold = 3.5

[odds]
endpoint = "http://localhost:9000/lines"

[weather]
api_key = "abc123"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Username != "longsdenyell" {
		t.Fatalf("Username = %q, want %q", cfg.Username, "longsdenyell")
	}
	if cfg.Season != "2025" || cfg.Week != 7 {
		t.Fatalf("Season/Week = %q/%d, want 2025/7", cfg.Season, cfg.Week)
	}
	if cfg.Interval() != 45*time.Second {
		t.Fatalf("Interval = %v, want 45s", cfg.Interval())
	}
	if cfg.Flash.ScoreMS != 500 {
		t.Fatalf("Flash.ScoreMS = %d, want 500", cfg.Flash.ScoreMS)
	}
	// Unset flash fields keep their defaults.
	if cfg.Flash.TileMS != 1200 || cfg.Flash.PlayerMS != 2000 {
		t.Fatalf("Flash = %+v, want defaults for tile and player", cfg.Flash)
	}
	if cfg.Flash.TileThreshold != 3.5 {
		t.Fatalf("TileThreshold = %v, want 3.5", cfg.Flash.TileThreshold)
	}
	if cfg.Odds.Endpoint != "http://localhost:9000/lines" {
		t.Fatalf("Odds.Endpoint = %q", cfg.Odds.Endpoint)
	}
	if cfg.Weather.APIKey != "abc123" {
		t.Fatalf("Weather.APIKey = %q", cfg.Weather.APIKey)
	}
}

func TestLoad_NonPositiveValuesUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
interval_seconds = 0

[flash]
score_ms = -1
tile_threshold = 0.0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.IntervalSeconds != defaultInterval {
		t.Fatalf("IntervalSeconds = %d, want %d", cfg.IntervalSeconds, defaultInterval)
	}
	if cfg.Flash.ScoreMS != 900 {
		t.Fatalf("Flash.ScoreMS = %d, want 900", cfg.Flash.ScoreMS)
	}
	if cfg.Flash.TileThreshold != 6.0 {
		t.Fatalf("TileThreshold = %v, want 6.0", cfg.Flash.TileThreshold)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`username = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
