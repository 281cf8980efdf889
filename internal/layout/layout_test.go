package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/longsdenyell/sleeper-gameday/internal/kvstore"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(kvstore.Open(filepath.Join(t.TempDir(), "state.json")))
}

func TestReconcile_DropsDeadKeepsOrderAppendsNew(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"A", "B", "C"})

	// A is gone, D is new; B and C keep their relative order.
	m.Reconcile([]string{"B", "C", "D"})

	assert.Equal(t, []string{"B", "C", "D"}, m.Snapshot().Order)
}

func TestReconcile_Idempotent(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"A", "B", "C"})
	m.Move("C", "A")
	first := m.Snapshot()

	m.Reconcile([]string{"A", "B", "C"})
	m.Reconcile([]string{"A", "B", "C"})

	assert.Equal(t, first.Order, m.Snapshot().Order)
}

func TestReconcile_PrunesCollapsedAndFeatured(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"A", "B"})
	m.ToggleCollapse("A")
	m.Promote("A", 0)
	m.Promote("B", 1)

	m.Reconcile([]string{"B"})

	s := m.Snapshot()
	assert.NotContains(t, s.Collapsed, "A")
	assert.Equal(t, [FeaturedSlots]string{"", "B"}, s.Featured)
}

func TestMove_InsertsBeforeTarget(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"A", "B", "C", "D"})

	m.Move("D", "B")
	assert.Equal(t, []string{"A", "D", "B", "C"}, m.Snapshot().Order)

	m.Move("A", "C")
	assert.Equal(t, []string{"D", "B", "A", "C"}, m.Snapshot().Order)
}

func TestMove_NoOpCases(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"A", "B"})

	m.Move("A", "A")
	m.Move("A", "missing")
	m.Move("missing", "A")

	assert.Equal(t, []string{"A", "B"}, m.Snapshot().Order)
}

func TestPromote_SlotExclusivity(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"X", "Y"})

	// Pin X to slot 0, then re-pin it to slot 1: slot 0 must vacate.
	m.Promote("X", 0)
	m.Promote("X", 1)

	assert.Equal(t, [FeaturedSlots]string{"", "X"}, m.Snapshot().Featured)
}

func TestPromote_ReplacesOccupant(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"X", "Y"})

	m.Promote("X", 0)
	m.Promote("Y", 0)

	assert.Equal(t, [FeaturedSlots]string{"Y", ""}, m.Snapshot().Featured)
}

func TestPromote_InvalidSlotIgnored(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"X"})

	m.Promote("X", -1)
	m.Promote("X", FeaturedSlots)

	assert.Equal(t, [FeaturedSlots]string{"", ""}, m.Snapshot().Featured)
}

func TestDemote(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"X", "Y"})
	m.Promote("X", 1)

	m.Demote("X")
	m.Demote("Y") // not featured, no-op

	assert.Equal(t, [FeaturedSlots]string{"", ""}, m.Snapshot().Featured)
}

func TestToggleCollapse_DefaultsExpanded(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"A"})

	assert.False(t, m.Snapshot().Collapsed["A"])
	m.ToggleCollapse("A")
	assert.True(t, m.Snapshot().Collapsed["A"])
	m.ToggleCollapse("A")
	assert.False(t, m.Snapshot().Collapsed["A"])
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	m := NewManager(kvstore.Open(path))
	m.Reconcile([]string{"A", "B", "C"})
	m.Move("C", "A")
	m.Promote("B", 0)
	m.ToggleCollapse("A")

	reloaded := NewManager(kvstore.Open(path))
	s := reloaded.Snapshot()
	assert.Equal(t, []string{"C", "A", "B"}, s.Order)
	assert.Equal(t, [FeaturedSlots]string{"B", ""}, s.Featured)
	assert.True(t, s.Collapsed["A"])
}

func TestNewManager_CorruptPersistedStateFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"gameday_layout_v1":42}`), 0o644))

	m := NewManager(kvstore.Open(path))
	s := m.Snapshot()
	assert.Empty(t, s.Order)
	assert.NotNil(t, s.Collapsed)
}

func TestSnapshot_IsACopy(t *testing.T) {
	m := newTestManager(t)
	m.Reconcile([]string{"A", "B"})

	s := m.Snapshot()
	s.Order[0] = "mutated"
	s.Collapsed["B"] = true

	fresh := m.Snapshot()
	assert.Equal(t, "A", fresh.Order[0])
	assert.False(t, fresh.Collapsed["B"])
}
