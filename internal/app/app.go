package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/longsdenyell/sleeper-gameday/internal/config"
	"github.com/longsdenyell/sleeper-gameday/internal/flash"
	"github.com/longsdenyell/sleeper-gameday/internal/kvstore"
	"github.com/longsdenyell/sleeper-gameday/internal/layout"
	"github.com/longsdenyell/sleeper-gameday/internal/poller"
	"github.com/longsdenyell/sleeper-gameday/internal/sleeper"
	"github.com/longsdenyell/sleeper-gameday/internal/state"
	"github.com/longsdenyell/sleeper-gameday/internal/ui"
)

// Options configure the Gameday application.
type Options struct {
	ConfigPath string
	Username   string // overrides the config file when set
	PollEvery  int    // seconds; zero uses the config value
}

// Run boots the Gameday TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	username := strings.TrimSpace(opts.Username)
	if username == "" {
		username = cfg.Username
	}
	if username == "" {
		return fmt.Errorf("no Sleeper username: set it in the config file or pass -user")
	}

	client, err := sleeper.NewClient(cfg.SleeperURL)
	if err != nil {
		return fmt.Errorf("init sleeper client: %w", err)
	}

	nfl, err := client.State(ctx)
	if err != nil {
		return fmt.Errorf("fetch nfl state: %w", err)
	}
	season := cfg.Season
	if season == "" {
		season = nfl.Season
	}
	week := cfg.Week
	if week == 0 {
		week = nfl.Week
	}

	user, err := client.User(ctx, username)
	if err != nil {
		return fmt.Errorf("look up user %q: %w", username, err)
	}

	leagues, err := client.Leagues(ctx, user.UserID, season)
	if err != nil {
		return fmt.Errorf("fetch leagues: %w", err)
	}
	if len(leagues) == 0 {
		return fmt.Errorf("user %q has no leagues for season %s", username, season)
	}
	leagueByID := make(map[string]sleeper.League, len(leagues))
	leagueIDs := make([]string, 0, len(leagues))
	for _, lg := range leagues {
		leagueByID[lg.LeagueID] = lg
		leagueIDs = append(leagueIDs, lg.LeagueID)
	}

	// The player directory and projections are big one-shot fetches; the
	// dashboard degrades to raw ids and no projections without them.
	players, err := client.Players(ctx)
	if err != nil {
		log.Warn("player directory unavailable", "error", err)
		players = sleeper.Directory{}
	}
	projections, err := client.Projections(ctx, season, week)
	if err != nil {
		log.Warn("projections unavailable", "error", err)
		projections = nil
	}

	kv := kvstore.Open(cfg.StatePath)
	layoutMgr := layout.NewManager(kv)
	layoutMgr.Reconcile(leagueIDs)

	store := state.NewStore()
	scheduler := flash.NewScheduler(flashConfig(cfg.Flash))
	defer scheduler.Stop()

	interval := cfg.Interval()
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	pol, err := poller.New(poller.Options{
		Fetch: func(ctx context.Context, leagueID string) (state.MatchupSnapshot, error) {
			return client.FetchMatchup(ctx, user.UserID, leagueByID[leagueID], week, projections)
		},
		OnSnapshot: func(leagueID string, snap state.MatchupSnapshot) {
			scheduler.OnDelta(store.Apply(leagueID, snap))
		},
		OnFailure: func(leagueID string, err error) {
			store.RecordFailure(leagueID, err)
			log.Warn("matchup poll failed", "league", leagueID, "error", err)
		},
		Interval: interval,
	})
	if err != nil {
		return fmt.Errorf("init poller: %w", err)
	}
	if err := pol.Start(ctx, leagueIDs); err != nil {
		return fmt.Errorf("start poller: %w", err)
	}
	defer pol.Stop()

	// Live toggle for the UI: pausing stops the cycle outright so no stale
	// result can land while paused, resuming starts a fresh one.
	live := true
	var liveMu sync.Mutex
	toggleLive := func() bool {
		liveMu.Lock()
		defer liveMu.Unlock()
		if live {
			pol.Stop()
			live = false
		} else if err := pol.Start(ctx, leagueIDs); err == nil {
			live = true
		}
		return live
	}

	games := loadGameContext(ctx, cfg)

	uiOpts := ui.Options{
		Store:      store,
		Flashes:    scheduler,
		Layout:     layoutMgr,
		Refresh:    pol.RefreshNow,
		ToggleLive: toggleLive,
		Players:    players,
		Games:      games,
		Season:     season,
		Week:       week,
		Username:   user.DisplayName,
	}
	return ui.Run(ctx, uiOpts)
}

func flashConfig(f config.Flash) flash.Config {
	return flash.Config{
		ScoreDuration:  time.Duration(f.ScoreMS) * time.Millisecond,
		TileDuration:   time.Duration(f.TileMS) * time.Millisecond,
		PlayerDuration: time.Duration(f.PlayerMS) * time.Millisecond,
		TileThreshold:  f.TileThreshold,
	}
}
