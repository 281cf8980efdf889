package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotWithPoints(own, opp float64) MatchupSnapshot {
	return MatchupSnapshot{
		LeagueID:       "lg1",
		Week:           3,
		OwnPoints:      own,
		OpponentPoints: opp,
	}
}

func TestApply_FirstSnapshotYieldsZeroDelta(t *testing.T) {
	s := NewStore()

	snap := snapshotWithPoints(87.4, 90.1)
	snap.OwnPlayerPoints = map[string]float64{"p1": 12.3, "p2": 8.0}

	d := s.Apply("lg1", snap)

	assert.Zero(t, d.OwnPointsDelta)
	assert.Zero(t, d.OpponentPointsDelta)
	assert.Empty(t, d.ChangedPlayerIDs, "first load must not report changed players")

	got, ok := s.Current("lg1")
	require.True(t, ok)
	assert.Equal(t, 87.4, got.OwnPoints)
}

func TestApply_ComputesPointDeltas(t *testing.T) {
	s := NewStore()
	s.Apply("lg1", snapshotWithPoints(10.0, 20.0))

	d := s.Apply("lg1", snapshotWithPoints(16.0, 21.5))

	assert.InDelta(t, 6.0, d.OwnPointsDelta, 1e-9)
	assert.InDelta(t, 1.5, d.OpponentPointsDelta, 1e-9)
}

func TestApply_DecreaseIsReportedNotClamped(t *testing.T) {
	// Corrections produce a negative delta; the scheduler decides that a
	// negative delta never flashes.
	s := NewStore()
	s.Apply("lg1", snapshotWithPoints(10.0, 0))

	d := s.Apply("lg1", snapshotWithPoints(8.6, 0))
	assert.InDelta(t, -1.4, d.OwnPointsDelta, 1e-9)
	assert.Empty(t, d.ChangedPlayerIDs)
}

func TestApply_ChangedPlayersStrictIncreaseBothRosters(t *testing.T) {
	s := NewStore()
	first := snapshotWithPoints(10, 10)
	first.OwnPlayerPoints = map[string]float64{"a": 5.0, "b": 2.0}
	first.OpponentPlayerPoints = map[string]float64{"x": 1.0}
	s.Apply("lg1", first)

	// a went up, b tied, x was corrected downward, y is new with points.
	second := snapshotWithPoints(12, 11)
	second.OwnPlayerPoints = map[string]float64{"a": 7.0, "b": 2.0}
	second.OpponentPlayerPoints = map[string]float64{"x": 0.4, "y": 3.0}
	d := s.Apply("lg1", second)

	assert.Equal(t, map[string]bool{"a": true, "y": true}, d.ChangedPlayerIDs)
}

func TestApply_SubTenthIncrementDetected(t *testing.T) {
	// 10.04 -> 10.08 rounds to 10.0 either way on screen but must still diff.
	s := NewStore()
	first := snapshotWithPoints(10.04, 0)
	first.OwnPlayerPoints = map[string]float64{"a": 10.04}
	s.Apply("lg1", first)

	second := snapshotWithPoints(10.08, 0)
	second.OwnPlayerPoints = map[string]float64{"a": 10.08}
	d := s.Apply("lg1", second)

	assert.Greater(t, d.OwnPointsDelta, 0.0)
	assert.True(t, d.ChangedPlayerIDs["a"])
}

func TestApply_ReplacesSnapshotWholesale(t *testing.T) {
	s := NewStore()
	first := snapshotWithPoints(10, 0)
	first.OwnPlayerPoints = map[string]float64{"gone": 4.0}
	s.Apply("lg1", first)

	second := snapshotWithPoints(11, 0)
	second.OwnPlayerPoints = map[string]float64{"kept": 1.0}
	s.Apply("lg1", second)

	got, ok := s.Current("lg1")
	require.True(t, ok)
	assert.NotContains(t, got.OwnPlayerPoints, "gone", "apply must replace, never merge")
}

func TestCurrent_ReturnsIndependentCopy(t *testing.T) {
	s := NewStore()
	snap := snapshotWithPoints(10, 0)
	snap.OwnStarters = []string{"a", "b"}
	snap.OwnPlayerPoints = map[string]float64{"a": 1}
	s.Apply("lg1", snap)

	got, ok := s.Current("lg1")
	require.True(t, ok)
	got.OwnStarters[0] = "mutated"
	got.OwnPlayerPoints["a"] = 99

	again, _ := s.Current("lg1")
	assert.Equal(t, "a", again.OwnStarters[0])
	assert.Equal(t, 1.0, again.OwnPlayerPoints["a"])
}

func TestRecordFailure_KeepsSnapshotAndCountsFailures(t *testing.T) {
	s := NewStore()
	s.Apply("lg1", snapshotWithPoints(50, 40))

	s.RecordFailure("lg1", errors.New("timeout"))
	s.RecordFailure("lg1", errors.New("timeout"))

	got, ok := s.Current("lg1")
	require.True(t, ok)
	assert.Equal(t, 50.0, got.OwnPoints, "failure must not disturb last-known snapshot")

	st := s.Status("lg1")
	assert.Equal(t, 2, st.ConsecutiveFailures)
	assert.True(t, st.Stale())
	require.Error(t, st.LastError)

	// Success resets the failure streak.
	s.Apply("lg1", snapshotWithPoints(51, 40))
	st = s.Status("lg1")
	assert.Zero(t, st.ConsecutiveFailures)
	assert.NoError(t, st.LastError)
}

func TestCurrent_UnknownLeague(t *testing.T) {
	s := NewStore()
	_, ok := s.Current("nope")
	assert.False(t, ok)
}
