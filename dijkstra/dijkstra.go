// SPDX-License-Identifier: MIT
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/busroute/matrix"
)

// Dijkstra computes shortest distances and predecessors from the source
// (Options.Source, the hub by default) to every location of d.
//
// Preconditions and validation (in order):
//  1. d must be non-nil (ErrNilMatrix).
//  2. Source must be a location of d (ErrSourceOutOfRange).
//
// Unreachable locations keep Dist == Unreachable and Pred == NoPredecessor;
// they are only reported as errors when a path to them is requested.
//
// Options customization:
//
//   - Source(id): root the tree elsewhere than the hub.
//   - WithStrictUniqueness(): fail with ErrAmbiguousPath on any tie.
//
// Complexity:
//
//   - Time:  O(n²)
//   - Space: O(n)
func Dijkstra(d *matrix.Distance, opts ...Option) (*Tree, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if d == nil {
		return nil, ErrNilMatrix
	}
	n := d.Size()
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: source=%d size=%d", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 3) Prepare state and run.
	r := &runner{
		d:       d,
		options: cfg,
		n:       n,
		dist:    make([]int, n),
		pred:    make([]int, n),
		visited: make([]bool, n),
		ties:    make([]bool, n),
	}
	r.init()
	r.process()

	// 4) Enforce uniqueness if requested.
	t := &Tree{Source: cfg.Source, Dist: r.dist, Pred: r.pred, ties: r.ties}
	if cfg.Strict {
		if amb := t.Ambiguous(); len(amb) > 0 {
			return nil, fmt.Errorf("%w: location %d", ErrAmbiguousPath, amb[0])
		}
	}

	return t, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	d       *matrix.Distance // read-only input
	options Options
	n       int
	dist    []int  // current best distance from Source
	pred    []int  // predecessor on the current best path
	visited []bool // distance finalized
	ties    []bool // equal-cost alternative seen for the current best
}

// init sets dist to Unreachable and pred to NoPredecessor everywhere, then
// puts the source at distance 0.
func (r *runner) init() {
	for v := 0; v < r.n; v++ {
		r.dist[v] = Unreachable
		r.pred[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0
}

// process runs n rounds of select-then-relax. A round that finds no
// reachable unvisited location ends the loop early.
func (r *runner) process() {
	var u int
	for round := 0; round < r.n; round++ {
		u = r.closest()
		if u == NoPredecessor {
			return
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// closest returns the unvisited location with the smallest finite distance.
// The scan keeps the first minimum found (strict <), so ties go to the
// lowest id. Returns NoPredecessor when nothing reachable is left.
func (r *runner) closest() int {
	best := Unreachable
	idx := NoPredecessor
	for v := 0; v < r.n; v++ {
		if !r.visited[v] && r.dist[v] < best {
			best = r.dist[v]
			idx = v
		}
	}

	return idx
}

// relax improves dist[v] through u for every unvisited neighbour v.
// Only a strictly shorter candidate replaces the predecessor; an equal one
// is recorded as a tie.
//
// Assumes dist[u] is finalized and finite.
func (r *runner) relax(u int) {
	var (
		v, w, cand int
	)
	for v = 0; v < r.n; v++ {
		// 1) Skip the diagonal, missing roads and finalized locations.
		w = r.d.Weight(u, v)
		if w <= 0 || r.visited[v] {
			continue
		}
		// 2) A sum that would reach Unreachable cannot improve anything.
		if w > Unreachable-1-r.dist[u] {
			continue
		}
		// 3) Strictly shorter wins; equal cost only marks the tie.
		cand = r.dist[u] + w
		switch {
		case cand < r.dist[v]:
			r.dist[v] = cand
			r.pred[v] = u
			r.ties[v] = false // an earlier tie was on a longer route
		case cand == r.dist[v]:
			r.ties[v] = true
		}
	}
}
