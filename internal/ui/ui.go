package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/longsdenyell/sleeper-gameday/internal/espn"
	"github.com/longsdenyell/sleeper-gameday/internal/flash"
	"github.com/longsdenyell/sleeper-gameday/internal/layout"
	"github.com/longsdenyell/sleeper-gameday/internal/odds"
	"github.com/longsdenyell/sleeper-gameday/internal/sleeper"
	"github.com/longsdenyell/sleeper-gameday/internal/state"
	"github.com/longsdenyell/sleeper-gameday/internal/weather"
)

// GameContext carries the optional display enrichment gathered at startup.
// Games are keyed by NFL team abbreviation, lines by team abbreviation, and
// weather by game id.
type GameContext struct {
	Games   map[string]espn.Game
	Lines   map[string]odds.Line
	Weather map[string]weather.Conditions
}

// Options configure the UI runtime.
type Options struct {
	Store   *state.Store
	Flashes *flash.Scheduler
	Layout  *layout.Manager
	Refresh func() // requests an immediate poll cycle

	// ToggleLive pauses or resumes polling and reports whether polling is
	// live afterwards.
	ToggleLive func() bool

	Players sleeper.Directory
	Games   GameContext

	Season   string
	Week     int
	Username string
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Store == nil || opts.Flashes == nil || opts.Layout == nil {
		return fmt.Errorf("ui requires a store, a flash scheduler, and a layout manager")
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if ctx.Err() != nil {
		// Cancelled shutdown is a normal exit, not a UI failure.
		return nil
	}
	return err
}
