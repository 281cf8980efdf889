package state

import (
	"fmt"
	"sync"
	"time"
)

// Store holds the most recently accepted snapshot per league and is the only
// place snapshots are compared and replaced. All mutation goes through Apply
// and RecordFailure.
type Store struct {
	mu       sync.RWMutex
	current  map[string]*MatchupSnapshot
	statuses map[string]LeagueStatus
}

// NewStore returns an empty snapshot store.
func NewStore() *Store {
	return &Store{
		current:  make(map[string]*MatchupSnapshot),
		statuses: make(map[string]LeagueStatus),
	}
}

// Apply diffs the new snapshot against the stored one, replaces it, and
// returns the resulting delta. The first snapshot for a league produces a
// zero delta.
func (s *Store) Apply(leagueID string, snap MatchupSnapshot) Delta {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.LeagueID = leagueID
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = time.Now()
	}

	d := diff(s.current[leagueID], snap)
	s.current[leagueID] = &snap
	s.statuses[leagueID] = LeagueStatus{LastUpdated: snap.FetchedAt}
	return d
}

// RecordFailure marks a failed fetch for the league. The stored snapshot is
// left untouched so the UI keeps showing last-known data.
func (s *Store) RecordFailure(leagueID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.statuses[leagueID]
	st.LastError = err
	st.LastUpdated = time.Now()
	st.ConsecutiveFailures++
	s.statuses[leagueID] = st
}

// Current returns a copy of the league's latest snapshot, if one exists.
func (s *Store) Current(leagueID string) (MatchupSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.current[leagueID]
	if !ok {
		return MatchupSnapshot{}, false
	}
	return cloneSnapshot(*snap), true
}

// Status returns fetch health for the league.
func (s *Store) Status(leagueID string) LeagueStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.statuses[leagueID]
	if st.LastError != nil {
		st.LastError = fmt.Errorf("%w", st.LastError)
	}
	return st
}

func cloneSnapshot(snap MatchupSnapshot) MatchupSnapshot {
	snap.OwnStarters = cloneIDs(snap.OwnStarters)
	snap.OpponentStarters = cloneIDs(snap.OpponentStarters)
	snap.Bench = cloneIDs(snap.Bench)
	snap.OwnPlayerPoints = clonePoints(snap.OwnPlayerPoints)
	snap.OpponentPlayerPoints = clonePoints(snap.OpponentPlayerPoints)
	snap.ProjectedPoints = clonePoints(snap.ProjectedPoints)
	return snap
}

func cloneIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	dup := make([]string, len(ids))
	copy(dup, ids)
	return dup
}

func clonePoints(points map[string]float64) map[string]float64 {
	if len(points) == 0 {
		return nil
	}
	dup := make(map[string]float64, len(points))
	for k, v := range points {
		dup[k] = v
	}
	return dup
}
