package app

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/longsdenyell/sleeper-gameday/internal/config"
	"github.com/longsdenyell/sleeper-gameday/internal/espn"
	"github.com/longsdenyell/sleeper-gameday/internal/odds"
	"github.com/longsdenyell/sleeper-gameday/internal/ui"
	"github.com/longsdenyell/sleeper-gameday/internal/weather"
)

const gameContextTimeout = 15 * time.Second

// loadGameContext gathers the optional display enrichment in one shot:
// scoreboard, betting lines, and venue weather. Everything here is best
// effort; a failed provider logs a warning and leaves its map empty.
func loadGameContext(ctx context.Context, cfg config.Config) ui.GameContext {
	ctx, cancel := context.WithTimeout(ctx, gameContextTimeout)
	defer cancel()

	gc := ui.GameContext{
		Games:   map[string]espn.Game{},
		Lines:   map[string]odds.Line{},
		Weather: map[string]weather.Conditions{},
	}

	games, err := espn.NewClient("").ListGames(ctx)
	if err != nil {
		log.Warn("scoreboard unavailable", "error", err)
	} else {
		gc.Games = espn.ByTeam(games)
	}

	oddsClient := odds.NewClient(cfg.Odds.Endpoint)
	if oddsClient.Enabled() {
		lines, err := oddsClient.Fetch(ctx)
		if err != nil {
			log.Warn("odds unavailable", "error", err)
		} else {
			gc.Lines = lines
		}
	}

	weatherClient := weather.NewClient("", cfg.Weather.APIKey)
	if weatherClient.Enabled() {
		for _, game := range games {
			if game.Venue == nil {
				continue
			}
			cond, err := weatherClient.Fetch(ctx, game.Venue.Latitude, game.Venue.Longitude)
			if err != nil {
				log.Warn("weather unavailable", "venue", game.Venue.Name, "error", err)
				break
			}
			if cond != nil {
				gc.Weather[game.ID] = *cond
			}
		}
	}

	return gc
}
