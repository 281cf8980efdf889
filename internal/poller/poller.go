package poller

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sourcegraph/conc"

	"github.com/longsdenyell/sleeper-gameday/internal/state"
)

const (
	// Floor for the configured cadence, so a bad setting cannot hammer the
	// upstream API.
	defaultMinInterval = 10 * time.Second

	// Each wait is jittered by up to this fraction either way to avoid
	// synchronizing with other clients.
	jitterFraction = 0.25
)

// FetchFunc retrieves one league's matchup snapshot. Implementations own
// their timeout; the poller treats timeout and failure identically.
type FetchFunc func(ctx context.Context, leagueID string) (state.MatchupSnapshot, error)

// Options wire the poller to its collaborators.
type Options struct {
	Fetch      FetchFunc
	OnSnapshot func(leagueID string, snap state.MatchupSnapshot)
	OnFailure  func(leagueID string, err error)

	Interval time.Duration

	// MinInterval overrides the clamp floor; zero keeps the default.
	// Exposed for tests.
	MinInterval time.Duration
}

// Poller drives the fetch cadence. Each tick fans out one fetch per tracked
// league, joins all of them regardless of individual failures, and hands
// results to the callbacks. Overlapping ticks are skipped rather than queued,
// which bounds concurrency to one batch at a time.
type Poller struct {
	opts Options

	mu        sync.Mutex
	leagueIDs []string
	running   bool
	inFlight  bool
	gen       uint64
	cancel    context.CancelFunc
	done      chan struct{}
	wake      chan struct{}
}

// New validates the options and returns an idle poller.
func New(opts Options) (*Poller, error) {
	if opts.Fetch == nil {
		return nil, fmt.Errorf("poller: fetch function is required")
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = defaultMinInterval
	}
	if opts.Interval < opts.MinInterval {
		opts.Interval = opts.MinInterval
	}
	return &Poller{opts: opts}, nil
}

// Start begins the repeating cycle for the given leagues, ticking once
// immediately. It returns an error if the poller is already running.
func (p *Poller) Start(ctx context.Context, leagueIDs []string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return fmt.Errorf("poller: already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	p.leagueIDs = append([]string(nil), leagueIDs...)
	p.running = true
	p.gen++
	p.cancel = cancel
	p.done = make(chan struct{})
	p.wake = make(chan struct{}, 1)

	go p.run(runCtx, p.gen, p.done, p.wake)
	return nil
}

// Stop cancels the cycle and blocks until the loop has exited. No timer
// fires and no fetch result reaches the callbacks after Stop returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.gen++
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()

	cancel()
	<-done
}

// RefreshNow requests an out-of-band tick. The scheduled cadence is left
// untouched. It is a no-op while stopped or while a tick is in flight.
func (p *Poller) RefreshNow() {
	p.mu.Lock()
	wake := p.wake
	running := p.running
	p.mu.Unlock()

	if !running {
		return
	}
	select {
	case wake <- struct{}{}:
	default:
	}
}

func (p *Poller) run(ctx context.Context, gen uint64, done chan struct{}, wake chan struct{}) {
	defer close(done)

	p.tick(ctx, gen)

	timer := time.NewTimer(p.jittered())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			p.tick(ctx, gen)
			// Drop any firing that queued up while the tick ran, then
			// rearm. This is the skip-overlap policy.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(p.jittered())
		case <-wake:
			p.tick(ctx, gen)
		}
	}
}

// tick fans out one fetch per league and joins them all. A league's failure
// neither cancels its siblings nor the tick.
func (p *Poller) tick(ctx context.Context, gen uint64) {
	p.mu.Lock()
	if p.inFlight || gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	ids := append([]string(nil), p.leagueIDs...)
	p.mu.Unlock()

	var wg conc.WaitGroup
	for _, id := range ids {
		wg.Go(func() {
			snap, err := p.opts.Fetch(ctx, id)
			p.deliver(gen, id, snap, err)
		})
	}
	wg.Wait()

	p.mu.Lock()
	p.inFlight = false
	p.mu.Unlock()
}

// deliver hands one league's result to the callbacks unless the poller was
// stopped or restarted since the fetch was issued, in which case the stale
// result is discarded.
func (p *Poller) deliver(gen uint64, leagueID string, snap state.MatchupSnapshot, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen || !p.running {
		return
	}
	if err != nil {
		log.Debug("league fetch failed", "league", leagueID, "err", err)
		if p.opts.OnFailure != nil {
			p.opts.OnFailure(leagueID, err)
		}
		return
	}
	if p.opts.OnSnapshot != nil {
		p.opts.OnSnapshot(leagueID, snap)
	}
}

// jittered returns the next inter-tick wait: the clamped interval shifted by
// up to ±25%.
func (p *Poller) jittered() time.Duration {
	return jitter(p.opts.Interval)
}

func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return d
	}
	span := int64(float64(d) * jitterFraction)
	if span <= 0 {
		return d
	}
	return d + time.Duration(rand.Int63n(2*span)-span)
}
