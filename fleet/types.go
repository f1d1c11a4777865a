// SPDX-License-Identifier: MIT
package fleet

import (
	"errors"

	"github.com/katalvlaran/busroute/dijkstra"
)

// Sentinel errors returned by Allocate.
var (
	// ErrBadCapacity indicates a non-positive bus capacity.
	ErrBadCapacity = errors.New("fleet: capacity must be positive")

	// ErrWorkerCountMismatch indicates that the worker counts do not line up
	// one-to-one with the routed locations 1..len(workers).
	ErrWorkerCountMismatch = errors.New("fleet: worker counts do not match routed locations")

	// ErrNegativeWorkers indicates a negative worker count.
	ErrNegativeWorkers = errors.New("fleet: negative worker count")

	// ErrMalformedPath indicates a route that does not run hub -> location.
	ErrMalformedPath = errors.New("fleet: malformed route")
)

// PartialPolicy decides which partially loaded buses are counted as trips.
type PartialPolicy int

const (
	// CountEveryPartial counts every dispatched partial bus exactly once,
	// whether or not pickups along its route filled it.
	CountEveryPartial PartialPolicy = iota

	// CountLegacy applies the reference partial-bus tally: a partial bus
	// counts only when a pickup overflowed its remaining seats or its route
	// had no intermediate stops. A bus whose pickups leave seats free (or
	// fill them exactly) is not counted. Emptied stops are still retired at
	// once, so this is not an exact replay of the reference trip count.
	CountLegacy
)

// String implements fmt.Stringer.
func (p PartialPolicy) String() string {
	switch p {
	case CountEveryPartial:
		return "every-partial"
	case CountLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Kind tells a full-capacity bus from a partially loaded one.
type Kind int

const (
	// KindFull is a bus filled entirely at its target location.
	KindFull Kind = iota
	// KindPartial is a bus that left its target with free seats and offered
	// them to the intermediate stops of its route.
	KindPartial
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindFull {
		return "full"
	}

	return "partial"
}

// Pickup records workers boarded at one location.
type Pickup struct {
	Location int
	Workers  int
}

// Dispatch is one bus sent along a route to the hub.
//
// Seq      – 1-based dispatch order.
// Target   – location the bus was sent for.
// Route    – hub -> … -> Target.
// Load     – total workers on board (target + pickups).
// Pickups  – workers boarded at intermediate stops, route order.
// Counted  – whether the bus counts towards Result.Trips under the policy.
type Dispatch struct {
	Seq     int
	Target  int
	Route   dijkstra.Path
	Kind    Kind
	Load    int
	Pickups []Pickup
	Counted bool
}

// Result is the outcome of Allocate.
type Result struct {
	// Trips is the answer: number of counted buses.
	Trips int

	// Dispatches is the ledger of every bus in dispatch order.
	Dispatches []Dispatch

	// Iterations is the number of target selections performed.
	Iterations int

	// Served maps each origin location to the workers carried from it.
	Served map[int]int
}

// Boarded returns the total number of workers carried by all buses.
func (r *Result) Boarded() int {
	total := 0
	for _, d := range r.Dispatches {
		total += d.Load
	}

	return total
}

// Options configures Allocate.
//
// Policy   – partial-bus counting policy. Default CountEveryPartial.
// Observer – optional hook invoked for every Dispatch, in order.
type Options struct {
	Policy   PartialPolicy
	Observer func(Dispatch)
}

// Option represents a functional option for configuring Allocate.
type Option func(*Options)

// WithPartialPolicy selects how partially loaded buses are counted.
func WithPartialPolicy(p PartialPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithObserver registers a hook called after each bus is dispatched.
func WithObserver(fn func(Dispatch)) Option {
	return func(o *Options) {
		o.Observer = fn
	}
}

// DefaultOptions counts every partial bus and installs no observer.
func DefaultOptions() Options {
	return Options{Policy: CountEveryPartial}
}
