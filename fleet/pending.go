// SPDX-License-Identifier: MIT
package fleet

import (
	"sort"

	"github.com/katalvlaran/busroute/dijkstra"
)

// pendingEntry is the working state of one not-yet-served location.
type pendingEntry struct {
	path      dijkstra.Path
	remaining int
}

// pendingSet is the allocator's working collection of locations that still
// have workers waiting. It is keyed by stable location id, so lookups stay
// correct whatever order entries are removed in.
//
// Invariants:
//   - every routed location is present exactly once after construction;
//   - an entry is removed exactly once and never re-added;
//   - remaining counts only decrease and never go negative.
type pendingSet struct {
	entries map[int]*pendingEntry
	order   []int // scan order: ascending location id, removed ids dropped
}

// newPendingSet seeds the set with one entry per routed location.
// counts[id] is the initial worker count of location id.
func newPendingSet(paths map[int]dijkstra.Path, counts map[int]int) *pendingSet {
	ps := &pendingSet{
		entries: make(map[int]*pendingEntry, len(paths)),
		order:   make([]int, 0, len(paths)),
	}
	for id, p := range paths {
		ps.entries[id] = &pendingEntry{path: p, remaining: counts[id]}
		ps.order = append(ps.order, id)
	}
	sort.Ints(ps.order)

	return ps
}

// size returns the number of locations still pending.
func (ps *pendingSet) size() int { return len(ps.order) }

// has reports whether id is still pending.
func (ps *pendingSet) has(id int) bool {
	_, ok := ps.entries[id]

	return ok
}

// left returns the workers still waiting at id; 0 once removed.
func (ps *pendingSet) left(id int) int {
	if e, ok := ps.entries[id]; ok {
		return e.remaining
	}

	return 0
}

// ids returns the pending location ids in scan order.
func (ps *pendingSet) ids() []int {
	out := make([]int, len(ps.order))
	copy(out, ps.order)

	return out
}

// farthest returns the pending location whose route has the most
// locations. Ties go to the first id in scan order.
func (ps *pendingSet) farthest() (int, dijkstra.Path, bool) {
	var (
		best    = -1
		bestLen = -1
	)
	for _, id := range ps.order {
		if l := len(ps.entries[id].path); l > bestLen {
			best, bestLen = id, l
		}
	}
	if best < 0 {
		return 0, nil, false
	}

	return best, ps.entries[best].path, true
}

// board takes k workers from id. k must not exceed left(id).
func (ps *pendingSet) board(id, k int) {
	ps.entries[id].remaining -= k
}

// remove drops id from the set. Removing an absent id is a no-op.
func (ps *pendingSet) remove(id int) {
	if _, ok := ps.entries[id]; !ok {
		return
	}
	delete(ps.entries, id)
	for i, v := range ps.order {
		if v == id {
			ps.order = append(ps.order[:i], ps.order[i+1:]...)
			break
		}
	}
}
