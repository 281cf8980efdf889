package flash

import (
	"sync"
	"time"

	"github.com/longsdenyell/sleeper-gameday/internal/state"
)

// Config tunes flash behavior. The durations and the tile threshold are
// presentation tuning, not protocol, so they are configurable.
type Config struct {
	ScoreDuration  time.Duration
	TileDuration   time.Duration
	PlayerDuration time.Duration

	// Point jump (own or opponent) that upgrades a score flash to a full
	// tile flash. Roughly a touchdown.
	TileThreshold float64
}

// DefaultConfig matches the tuning the dashboard shipped with.
func DefaultConfig() Config {
	return Config{
		ScoreDuration:  900 * time.Millisecond,
		TileDuration:   1200 * time.Millisecond,
		PlayerDuration: 2 * time.Second,
		TileThreshold:  6.0,
	}
}

type kind int

const (
	kindScore kind = iota
	kindTile
	kindPlayer
)

type timerKey struct {
	leagueID string
	kind     kind
}

type armedTimer struct {
	gen   uint64
	timer *time.Timer
}

// Scheduler owns all transient flash state and the timers that clear it.
// Re-triggering a flash before its clear fires cancels the pending clear and
// arms a fresh one, so a stale timer can never turn off a newer flash.
type Scheduler struct {
	mu      sync.Mutex
	cfg     Config
	stopped bool

	score  map[string]bool
	tile   map[string]bool
	player map[string]map[string]bool

	timers map[timerKey]*armedTimer
	gen    uint64
}

// NewScheduler returns a scheduler with the given tuning. Zero durations and
// threshold fall back to defaults.
func NewScheduler(cfg Config) *Scheduler {
	def := DefaultConfig()
	if cfg.ScoreDuration <= 0 {
		cfg.ScoreDuration = def.ScoreDuration
	}
	if cfg.TileDuration <= 0 {
		cfg.TileDuration = def.TileDuration
	}
	if cfg.PlayerDuration <= 0 {
		cfg.PlayerDuration = def.PlayerDuration
	}
	if cfg.TileThreshold <= 0 {
		cfg.TileThreshold = def.TileThreshold
	}
	return &Scheduler{
		cfg:    cfg,
		score:  make(map[string]bool),
		tile:   make(map[string]bool),
		player: make(map[string]map[string]bool),
		timers: make(map[timerKey]*armedTimer),
	}
}

// OnDelta applies one league's delta for the tick. A delta with no positive
// score movement leaves all flash state untouched, which also covers the
// first observation of a league and silent downward corrections.
func (s *Scheduler) OnDelta(d state.Delta) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	if d.OwnPointsDelta <= 0 && d.OpponentPointsDelta <= 0 {
		return
	}

	s.score[d.LeagueID] = true
	s.arm(d.LeagueID, kindScore, s.cfg.ScoreDuration)

	if d.OwnPointsDelta >= s.cfg.TileThreshold || d.OpponentPointsDelta >= s.cfg.TileThreshold {
		s.tile[d.LeagueID] = true
		s.arm(d.LeagueID, kindTile, s.cfg.TileDuration)
	}

	highlighted := make(map[string]bool, len(d.ChangedPlayerIDs))
	for pid := range d.ChangedPlayerIDs {
		highlighted[pid] = true
	}
	s.player[d.LeagueID] = highlighted
	s.arm(d.LeagueID, kindPlayer, s.cfg.PlayerDuration)
}

// arm cancels any pending clear for (league, kind) and schedules a new one.
// Callers hold s.mu.
func (s *Scheduler) arm(leagueID string, k kind, after time.Duration) {
	key := timerKey{leagueID: leagueID, kind: k}
	if prev, ok := s.timers[key]; ok {
		prev.timer.Stop()
	}
	s.gen++
	entry := &armedTimer{gen: s.gen}
	entry.timer = time.AfterFunc(after, func() {
		s.clear(key, entry.gen)
	})
	s.timers[key] = entry
}

// clear runs from a timer callback. The generation check drops callbacks from
// timers that were re-armed or stopped after this one was scheduled.
func (s *Scheduler) clear(key timerKey, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.timers[key]
	if !ok || current.gen != gen || s.stopped {
		return
	}
	delete(s.timers, key)

	switch key.kind {
	case kindScore:
		delete(s.score, key.leagueID)
	case kindTile:
		delete(s.tile, key.leagueID)
	case kindPlayer:
		delete(s.player, key.leagueID)
	}
}

// ScoreFlash reports whether the league's score area is flashing.
func (s *Scheduler) ScoreFlash(leagueID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score[leagueID]
}

// TileFlash reports whether the league's whole tile is flashing.
func (s *Scheduler) TileFlash(leagueID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tile[leagueID]
}

// PlayerFlash returns a copy of the set of flashing player ids for a league.
func (s *Scheduler) PlayerFlash(leagueID string) map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.player[leagueID]
	if len(src) == 0 {
		return nil
	}
	dup := make(map[string]bool, len(src))
	for pid := range src {
		dup[pid] = true
	}
	return dup
}

// Stop cancels every pending clear and blanks all flash state. The scheduler
// accepts no further deltas once stopped.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for key, entry := range s.timers {
		entry.timer.Stop()
		delete(s.timers, key)
	}
	s.score = make(map[string]bool)
	s.tile = make(map[string]bool)
	s.player = make(map[string]map[string]bool)
}
