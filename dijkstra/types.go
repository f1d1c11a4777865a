// SPDX-License-Identifier: MIT
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/busroute/matrix"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMatrix indicates that a nil *matrix.Distance was passed to Dijkstra.
	ErrNilMatrix = errors.New("dijkstra: distance matrix is nil")

	// ErrSourceOutOfRange indicates that the source is not a location of the matrix.
	ErrSourceOutOfRange = errors.New("dijkstra: source out of range")

	// ErrOutOfRange indicates that a queried location is not in the tree.
	ErrOutOfRange = errors.New("dijkstra: location out of range")

	// ErrUnreachable indicates that no road chain joins the source and a location.
	ErrUnreachable = errors.New("dijkstra: location unreachable from source")

	// ErrAmbiguousPath indicates that a location has more than one shortest
	// path. Only returned under WithStrictUniqueness.
	ErrAmbiguousPath = errors.New("dijkstra: multiple shortest paths")
)

const (
	// Unreachable is the distance sentinel for locations not reached (yet).
	// It is larger than any finite distance the engine can produce.
	Unreachable = math.MaxInt

	// NoPredecessor marks the source and every unreachable location in Tree.Pred.
	NoPredecessor = -1
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source – root of the shortest-path tree. Default matrix.Hub.
// Strict – fail with ErrAmbiguousPath when two predecessors tie.
type Options struct {
	Source int
	Strict bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the root of the shortest-path tree.
func Source(id int) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithStrictUniqueness makes Dijkstra reject inputs where any location can
// be reached by two different shortest paths.
func WithStrictUniqueness() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// DefaultOptions returns Options rooted at the hub with tie detection
// reported but not enforced.
func DefaultOptions() Options {
	return Options{
		Source: matrix.Hub,
		Strict: false,
	}
}

// Path is the ordered list of locations on a shortest route, source first
// and destination last, both inclusive.
type Path []int

// Hops returns the number of road segments on the path.
func (p Path) Hops() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Destination returns the last location, or NoPredecessor for an empty path.
func (p Path) Destination() int {
	if len(p) == 0 {
		return NoPredecessor
	}

	return p[len(p)-1]
}

// Intermediate returns a copy of the locations strictly between the source
// and the destination, nearest-the-source first.
func (p Path) Intermediate() []int {
	if len(p) < 3 {
		return nil
	}
	out := make([]int, len(p)-2)
	copy(out, p[1:len(p)-1])

	return out
}

// Cost re-sums the road lengths along the path.
// Errors: matrix.ErrOutOfRange for locations outside d.
func (p Path) Cost(d *matrix.Distance) (int, error) {
	var (
		total int
		i     int
		w     int
		err   error
	)
	for i = 1; i < len(p); i++ {
		if w, err = d.At(p[i-1], p[i]); err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}

// String renders the path as "0 -> 2 -> 3".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " -> ")
}

// Tree is the shortest-path tree produced by Dijkstra.
//
// Dist[v] – shortest distance from Source, Unreachable if none.
// Pred[v] – predecessor of v on its shortest path, NoPredecessor for the
// source and unreachable locations.
type Tree struct {
	Source int
	Dist   []int
	Pred   []int
	ties   []bool // ties[v]: an equal-cost alternative predecessor was seen
}

// Size returns the number of locations covered by the tree.
func (t *Tree) Size() int { return len(t.Dist) }

// Reachable reports whether v has a finite distance from the source.
func (t *Tree) Reachable(v int) bool {
	return v >= 0 && v < len(t.Dist) && t.Dist[v] != Unreachable
}

// Path reconstructs the route Source -> … -> v by walking Pred backwards
// and reversing.
//
// Errors: ErrOutOfRange, ErrUnreachable.
// Complexity: O(path length).
func (t *Tree) Path(v int) (Path, error) {
	if v < 0 || v >= len(t.Dist) {
		return nil, fmt.Errorf("Path(%d): %w", v, ErrOutOfRange)
	}
	if t.Dist[v] == Unreachable {
		return nil, fmt.Errorf("Path(%d): %w", v, ErrUnreachable)
	}

	// Walk back at most Size() steps; Pred forms a tree rooted at Source.
	rev := make([]int, 0, len(t.Dist))
	cur := v
	for cur != NoPredecessor && len(rev) < len(t.Dist) {
		rev = append(rev, cur)
		cur = t.Pred[cur]
	}
	if rev[len(rev)-1] != t.Source {
		return nil, fmt.Errorf("Path(%d): broken predecessor chain: %w", v, ErrUnreachable)
	}

	out := make(Path, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}

	return out, nil
}

// Paths returns one path per non-source location, keyed by location id.
// Any unreachable location aborts the whole call.
//
// Errors: ErrUnreachable (wrapped with the first offending id).
func (t *Tree) Paths() (map[int]Path, error) {
	out := make(map[int]Path, len(t.Dist))
	var (
		v   int
		p   Path
		err error
	)
	for v = 0; v < len(t.Dist); v++ {
		if v == t.Source {
			continue
		}
		if p, err = t.Path(v); err != nil {
			return nil, err
		}
		out[v] = p
	}

	return out, nil
}

// Ambiguous returns, in ascending order, every location whose shortest
// route passes through (or ends at) a location that had an equal-cost
// alternative predecessor.
func (t *Tree) Ambiguous() []int {
	var out []int
	for v := range t.Dist {
		if !t.Reachable(v) {
			continue
		}
		for cur := v; cur != NoPredecessor; cur = t.Pred[cur] {
			if t.ties[cur] {
				out = append(out, v)
				break
			}
		}
	}

	return out
}
