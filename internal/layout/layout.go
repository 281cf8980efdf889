package layout

// FeaturedSlots is the number of board positions a league can be pinned to.
const FeaturedSlots = 2

// State is the persisted tile arrangement: league ordering, per-league
// collapse flags, and the featured board slots. An empty string marks a
// vacant slot.
type State struct {
	Order     []string              `json:"order"`
	Collapsed map[string]bool       `json:"collapsed"`
	Featured  [FeaturedSlots]string `json:"featured"`
}

func defaultState() State {
	return State{Collapsed: map[string]bool{}}
}

// clone returns an independent copy so command functions never alias the
// stored value.
func (s State) clone() State {
	dup := State{Featured: s.Featured}
	if len(s.Order) > 0 {
		dup.Order = make([]string, len(s.Order))
		copy(dup.Order, s.Order)
	}
	dup.Collapsed = make(map[string]bool, len(s.Collapsed))
	for k, v := range s.Collapsed {
		dup.Collapsed[k] = v
	}
	return dup
}

// reconcile aligns the ordering with the authoritative live id set: surviving
// ids keep their relative order, newly seen ids append in the order supplied,
// dead ids drop out of the order, the collapse map, and the featured slots.
// Running it twice with the same input is a no-op.
func reconcile(s State, liveIDs []string) State {
	live := make(map[string]bool, len(liveIDs))
	for _, id := range liveIDs {
		live[id] = true
	}

	next := State{Collapsed: make(map[string]bool, len(s.Collapsed))}

	kept := make(map[string]bool, len(s.Order))
	for _, id := range s.Order {
		if live[id] && !kept[id] {
			next.Order = append(next.Order, id)
			kept[id] = true
		}
	}
	for _, id := range liveIDs {
		if !kept[id] {
			next.Order = append(next.Order, id)
			kept[id] = true
		}
	}

	for id, collapsed := range s.Collapsed {
		if live[id] {
			next.Collapsed[id] = collapsed
		}
	}
	for slot, id := range s.Featured {
		if live[id] {
			next.Featured[slot] = id
		}
	}
	return next
}

// move takes sourceID out of the order and reinserts it immediately before
// targetID. It is a no-op when either id is absent or they are equal.
func move(s State, sourceID, targetID string) State {
	if sourceID == targetID || !contains(s.Order, sourceID) || !contains(s.Order, targetID) {
		return s
	}

	next := s.clone()
	next.Order = next.Order[:0]
	for _, id := range s.Order {
		if id == sourceID {
			continue
		}
		if id == targetID {
			next.Order = append(next.Order, sourceID)
		}
		next.Order = append(next.Order, id)
	}
	return next
}

// promote pins id to the given featured slot, vacating it from the other slot
// first so an id never occupies both.
func promote(s State, id string, slot int) State {
	if id == "" || slot < 0 || slot >= FeaturedSlots {
		return s
	}

	next := s.clone()
	for i := range next.Featured {
		if next.Featured[i] == id {
			next.Featured[i] = ""
		}
	}
	next.Featured[slot] = id
	return next
}

// demote clears id from whichever slot holds it; no-op if it is not featured.
func demote(s State, id string) State {
	next := s.clone()
	for i := range next.Featured {
		if next.Featured[i] == id {
			next.Featured[i] = ""
		}
	}
	return next
}

// toggleCollapse flips the collapse flag for id. Absent ids count as
// expanded.
func toggleCollapse(s State, id string) State {
	next := s.clone()
	next.Collapsed[id] = !next.Collapsed[id]
	return next
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
