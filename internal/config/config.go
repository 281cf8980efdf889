package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Flash tunes the highlight durations and the tile jump threshold. These are
// presentation knobs, so they live in config rather than code.
type Flash struct {
	ScoreMS       int     `toml:"score_ms"`
	TileMS        int     `toml:"tile_ms"`
	PlayerMS      int     `toml:"player_ms"`
	TileThreshold float64 `toml:"tile_threshold"`
}

// Config captures everything Gameday reads at startup.
type Config struct {
	Username        string `toml:"username"`
	Season          string `toml:"season"` // empty uses the current NFL season
	Week            int    `toml:"week"`   // zero uses the current NFL week
	IntervalSeconds int    `toml:"interval_seconds"`

	SleeperURL string `toml:"sleeper_url"`
	StatePath  string `toml:"state_path"`

	Flash Flash `toml:"flash"`

	Odds struct {
		Endpoint string `toml:"endpoint"`
	} `toml:"odds"`

	Weather struct {
		APIKey string `toml:"api_key"`
	} `toml:"weather"`
}

const (
	defaultConfigPath = "~/.config/gameday/config.toml"
	defaultInterval   = 30
)

func defaults() Config {
	cfg := Config{IntervalSeconds: defaultInterval}
	cfg.Flash = Flash{ScoreMS: 900, TileMS: 1200, PlayerMS: 2000, TileThreshold: 6.0}
	return cfg
}

// Load locates and parses the gameday config, falling back to defaults when missing.
// A present-but-unparseable file is an error; silently ignoring a config the
// user wrote would be worse than failing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Username = strings.TrimSpace(cfg.Username)
	if cfg.IntervalSeconds <= 0 {
		cfg.IntervalSeconds = defaultInterval
	}
	def := defaults()
	if cfg.Flash.ScoreMS <= 0 {
		cfg.Flash.ScoreMS = def.Flash.ScoreMS
	}
	if cfg.Flash.TileMS <= 0 {
		cfg.Flash.TileMS = def.Flash.TileMS
	}
	if cfg.Flash.PlayerMS <= 0 {
		cfg.Flash.PlayerMS = def.Flash.PlayerMS
	}
	if cfg.Flash.TileThreshold <= 0 {
		cfg.Flash.TileThreshold = def.Flash.TileThreshold
	}
	return cfg, nil
}

// Interval returns the poll cadence as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
