package app

import (
	"testing"
	"time"

	"github.com/longsdenyell/sleeper-gameday/internal/config"
)

func TestFlashConfig_ConvertsMillisAndThreshold(t *testing.T) {
	got := flashConfig(config.Flash{ScoreMS: 900, TileMS: 1200, PlayerMS: 2000, TileThreshold: 6.0})

	if got.ScoreDuration != 900*time.Millisecond {
		t.Fatalf("ScoreDuration = %v, want 900ms", got.ScoreDuration)
	}
	if got.TileDuration != 1200*time.Millisecond {
		t.Fatalf("TileDuration = %v, want 1200ms", got.TileDuration)
	}
	if got.PlayerDuration != 2*time.Second {
		t.Fatalf("PlayerDuration = %v, want 2s", got.PlayerDuration)
	}
	if got.TileThreshold != 6.0 {
		t.Fatalf("TileThreshold = %v, want 6.0", got.TileThreshold)
	}
}
