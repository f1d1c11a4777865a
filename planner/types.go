// SPDX-License-Identifier: MIT
package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/fleet"
	"github.com/katalvlaran/busroute/instance"
	"github.com/katalvlaran/busroute/metrics"
)

// ErrNilInstance is returned by Solve when given no instance.
var ErrNilInstance = errors.New("planner: nil instance")

// Options configures Solve.
//
// Policy  – how partial buses are credited (fleet.CountEveryPartial).
// Strict  – enforce the problem-statement bounds and unique shortest routes.
// Logger  – destination for run diagnostics (disabled by default).
// Metrics – optional recorder; nil records nothing.
type Options struct {
	Policy  fleet.PartialPolicy
	Strict  bool
	Logger  zerolog.Logger
	Metrics *metrics.Recorder
}

// Option represents a functional option for Solve.
type Option func(*Options)

// WithPolicy selects the partial-bus counting policy.
func WithPolicy(p fleet.PartialPolicy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// WithStrict enables instance.WithStrict and dijkstra.WithStrictUniqueness.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithLogger routes run diagnostics to log.
func WithLogger(log zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = log
	}
}

// WithMetrics records every run and dispatch into r.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) {
		o.Metrics = r
	}
}

// DefaultOptions counts every partial bus and logs nothing.
func DefaultOptions() Options {
	return Options{
		Policy: fleet.CountEveryPartial,
		Logger: zerolog.Nop(),
	}
}

// Plan is the outcome of one Solve call.
type Plan struct {
	// RunID tags every log line of the run.
	RunID uuid.UUID
	// Policy is the counting policy the answer was computed under.
	Policy fleet.PartialPolicy
	// Instance is the solved problem.
	Instance *instance.Instance
	// Tree is the shortest-path tree rooted at the hub.
	Tree *dijkstra.Tree
	// Paths holds the hub-rooted route of every location.
	Paths map[int]dijkstra.Path
	// Ambiguous lists locations with more than one shortest route.
	Ambiguous []int
	// Result is the allocator ledger.
	Result *fleet.Result
	// Elapsed is the wall time spent in Solve.
	Elapsed time.Duration
}

// Trips returns the answer: the number of buses credited.
func (p *Plan) Trips() int { return p.Result.Trips }
