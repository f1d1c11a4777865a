// SPDX-License-Identifier: MIT
package fleet

import (
	"fmt"

	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/matrix"
)

// Allocate dispatches capacity-limited buses until every worker has been
// carried to the hub, and returns the trip count with a full ledger.
//
// Inputs:
//   - paths: one hub-rooted route per location, keyed by location id
//     (as returned by dijkstra.Tree.Paths).
//   - workers: workers[i] waiting at location i+1.
//   - capacity: seats per bus.
//
// Each iteration picks the pending location with the longest route
// (lowest id on ties), sends full buses while it has at least capacity
// workers, then sends one partial bus for the remainder and offers the free
// seats to the route's intermediate stops, nearest-the-hub first.
//
// Errors: ErrBadCapacity, ErrWorkerCountMismatch, ErrNegativeWorkers,
// ErrMalformedPath.
//
// Complexity: O(n²) for n locations (at most n iterations, each scanning
// the pending set and a route of at most n-2 stops), plus one step per full
// bus.
func Allocate(paths map[int]dijkstra.Path, workers []int, capacity int, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	counts, err := validate(paths, workers, capacity)
	if err != nil {
		return nil, err
	}

	// 3) Run the allocation loop.
	s := &state{
		options:  cfg,
		capacity: capacity,
		pending:  newPendingSet(paths, counts),
		result:   &Result{Served: make(map[int]int, len(paths))},
	}
	for s.pending.size() > 0 {
		s.step()
	}

	return s.result, nil
}

// validate checks capacity, counts and routes, and returns the counts keyed
// by location id.
func validate(paths map[int]dijkstra.Path, workers []int, capacity int) (map[int]int, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if len(workers) != len(paths) {
		return nil, fmt.Errorf("%w: %d counts for %d routes", ErrWorkerCountMismatch, len(workers), len(paths))
	}

	counts := make(map[int]int, len(workers))
	var (
		i, id int
		p     dijkstra.Path
		ok    bool
	)
	for i = range workers {
		id = i + 1
		if workers[i] < 0 {
			return nil, fmt.Errorf("%w: location %d has %d", ErrNegativeWorkers, id, workers[i])
		}
		if p, ok = paths[id]; !ok {
			return nil, fmt.Errorf("%w: no route for location %d", ErrWorkerCountMismatch, id)
		}
		if len(p) < 2 || p[0] != matrix.Hub || p.Destination() != id {
			return nil, fmt.Errorf("%w: location %d has route %s", ErrMalformedPath, id, p)
		}
		counts[id] = workers[i]
	}

	return counts, nil
}

// state holds the mutable state of one Allocate call.
type state struct {
	options  Options
	capacity int
	pending  *pendingSet
	result   *Result
}

// step runs one iteration: select the target, send its full buses, send
// its partial bus, and retire it once nobody is left there.
func (s *state) step() {
	target, route, _ := s.pending.farthest()
	s.result.Iterations++

	// Full buses first, straight to the hub.
	for s.pending.left(target) >= s.capacity {
		s.pending.board(target, s.capacity)
		s.dispatch(Dispatch{
			Target:  target,
			Route:   route,
			Kind:    KindFull,
			Load:    s.capacity,
			Counted: true,
		})
	}

	if rem := s.pending.left(target); rem > 0 {
		s.partial(target, route, rem)
	}

	if s.pending.left(target) == 0 {
		s.pending.remove(target)
	}
}

// partial loads the last rem workers of target and fills the free seats
// from the intermediate stops, nearest-the-hub first. A stop that fits
// entirely is emptied and retired; the first stop that does not fit fills
// the bus and ends the sweep.
func (s *state) partial(target int, route dijkstra.Path, rem int) {
	// 1) Board the target's last workers; whatever is left is slack.
	slack := s.capacity - rem
	s.pending.board(target, rem)

	d := Dispatch{
		Target: target,
		Route:  route,
		Kind:   KindPartial,
		Load:   rem,
	}

	// 2) Sweep the intermediate stops, nearest the hub first.
	stops := route.Intermediate()
	overflowed := false
	var have, take int
	for _, stop := range stops {
		if slack == 0 {
			break
		}
		have = s.pending.left(stop)
		if have == 0 {
			continue // already served, or nobody was ever there
		}
		// Take everyone if they fit, otherwise fill the bus.
		take = have
		if have > slack {
			take = slack
			overflowed = true
		}
		s.pending.board(stop, take)
		slack -= take
		d.Load += take
		d.Pickups = append(d.Pickups, Pickup{Location: stop, Workers: take})
		if s.pending.left(stop) == 0 {
			s.pending.remove(stop)
		}
		if overflowed {
			break
		}
	}

	// 3) Credit the bus according to the counting policy.
	switch s.options.Policy {
	case CountLegacy:
		d.Counted = overflowed || len(stops) == 0
	default:
		d.Counted = true
	}
	s.dispatch(d)
}

// dispatch records d in the ledger, updates the counters and notifies the
// observer.
func (s *state) dispatch(d Dispatch) {
	d.Seq = len(s.result.Dispatches) + 1
	if d.Counted {
		s.result.Trips++
	}

	own := d.Load
	for _, p := range d.Pickups {
		own -= p.Workers
		s.result.Served[p.Location] += p.Workers
	}
	s.result.Served[d.Target] += own

	s.result.Dispatches = append(s.result.Dispatches, d)
	if s.options.Observer != nil {
		s.options.Observer(d)
	}
}
