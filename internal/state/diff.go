package state

// diff computes the change between two consecutive snapshots. A nil previous
// snapshot yields zero deltas and no changed players, so the first observation
// of a league never looks like scoring activity.
//
// Point comparisons run at full float64 precision; display rounding happens
// in the UI layer, and sub-tenth increments must still be detected here.
func diff(prev *MatchupSnapshot, next MatchupSnapshot) Delta {
	d := Delta{
		LeagueID:         next.LeagueID,
		ChangedPlayerIDs: map[string]bool{},
	}
	if prev == nil {
		return d
	}

	d.OwnPointsDelta = next.OwnPoints - prev.OwnPoints
	d.OpponentPointsDelta = next.OpponentPoints - prev.OpponentPoints

	markIncreased(d.ChangedPlayerIDs, prev.OwnPlayerPoints, next.OwnPlayerPoints)
	markIncreased(d.ChangedPlayerIDs, prev.OpponentPlayerPoints, next.OpponentPlayerPoints)
	return d
}

// markIncreased records player ids whose points strictly increased. Ties and
// downward corrections are absorbed silently.
func markIncreased(changed map[string]bool, prev, next map[string]float64) {
	for pid, pts := range next {
		if pts > prev[pid] {
			changed[pid] = true
		}
	}
}
