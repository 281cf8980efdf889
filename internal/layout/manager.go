package layout

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/longsdenyell/sleeper-gameday/internal/kvstore"
)

// stateKey is the persistence adapter key the arrangement lives under.
const stateKey = "gameday_layout_v1"

// Manager owns the tile arrangement. Every mutation runs one of the pure
// command functions against the current state and persists the result before
// returning, so a completed gesture is never lost on exit.
type Manager struct {
	mu    sync.Mutex
	store *kvstore.Store
	state State
}

// NewManager loads the persisted arrangement from the store, falling back to
// an empty layout when nothing usable is persisted.
func NewManager(store *kvstore.Store) *Manager {
	m := &Manager{store: store, state: defaultState()}

	var persisted State
	if store != nil && store.Get(stateKey, &persisted) {
		if persisted.Collapsed == nil {
			persisted.Collapsed = map[string]bool{}
		}
		m.state = persisted
	}
	return m
}

// Reconcile aligns the tracked ordering with the authoritative league id set.
func (m *Manager) Reconcile(liveIDs []string) {
	m.apply(func(s State) State { return reconcile(s, liveIDs) })
}

// Move reorders sourceID to sit immediately before targetID.
func (m *Manager) Move(sourceID, targetID string) {
	m.apply(func(s State) State { return move(s, sourceID, targetID) })
}

// Promote pins a league to one of the featured slots.
func (m *Manager) Promote(id string, slot int) {
	m.apply(func(s State) State { return promote(s, id, slot) })
}

// Demote removes a league from the featured slots.
func (m *Manager) Demote(id string) {
	m.apply(func(s State) State { return demote(s, id) })
}

// ToggleCollapse flips a league tile between collapsed and expanded.
func (m *Manager) ToggleCollapse(id string) {
	m.apply(func(s State) State { return toggleCollapse(s, id) })
}

// Snapshot returns a copy of the current arrangement for rendering.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *Manager) apply(cmd func(State) State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = cmd(m.state)
	if m.store == nil {
		return
	}
	if err := m.store.Set(stateKey, m.state); err != nil {
		log.Warn("persist layout failed", "err", err)
	}
}
