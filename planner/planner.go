// SPDX-License-Identifier: MIT
package planner

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/fleet"
	"github.com/katalvlaran/busroute/instance"
)

// Solve runs the whole pipeline on in: validate, build the road table, grow
// the shortest-path tree from the hub, and allocate buses along it.
//
// Locations with an equal-cost alternative route are logged as warnings
// and keep the first route found; under WithStrict they are an error.
//
// Errors: ErrNilInstance, any instance.Validate error, dijkstra.ErrUnreachable,
// dijkstra.ErrAmbiguousPath (strict), and fleet validation errors, each
// prefixed with "planner:".
func Solve(in *instance.Instance, opts ...Option) (*Plan, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	plan := &Plan{RunID: uuid.New(), Policy: cfg.Policy, Instance: in}
	log := cfg.Logger.With().Str("run_id", plan.RunID.String()).Logger()

	err := run(plan, cfg, &log)
	plan.Elapsed = time.Since(start)
	cfg.Metrics.ObserveRun(in.Size(), plan.Elapsed, err)
	if err != nil {
		log.Error().Err(err).Msg("solve failed")
		return nil, err
	}

	log.Info().
		Int("trips", plan.Trips()).
		Int("dispatches", len(plan.Result.Dispatches)).
		Int("iterations", plan.Result.Iterations).
		Dur("elapsed", plan.Elapsed).
		Msg("solved")

	return plan, nil
}

// run fills plan stage by stage.
func run(plan *Plan, cfg Options, log *zerolog.Logger) error {
	in := plan.Instance

	// Stage 1: validate and build the road table.
	vopts := instance.DefaultOptions()
	if cfg.Strict {
		vopts.Strict = true
	}
	if err := in.Validate(vopts); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	d, err := in.Distance()
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	log.Debug().
		Int("locations", in.Size()).
		Int("workers", in.Total()).
		Int("capacity", in.Capacity).
		Str("policy", cfg.Policy.String()).
		Msg("instance loaded")

	// Stage 2: shortest routes from the hub.
	var dopts []dijkstra.Option
	if cfg.Strict {
		dopts = append(dopts, dijkstra.WithStrictUniqueness())
	}
	if plan.Tree, err = dijkstra.Dijkstra(d, dopts...); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	if plan.Paths, err = plan.Tree.Paths(); err != nil {
		return fmt.Errorf("planner: %w", err)
	}
	plan.Ambiguous = plan.Tree.Ambiguous()
	for _, v := range plan.Ambiguous {
		log.Warn().
			Int("location", v).
			Stringer("route", plan.Paths[v]).
			Msg("shortest route is not unique, keeping the first one found")
	}

	// Stage 3: allocate buses.
	observe := func(disp fleet.Dispatch) {
		log.Debug().
			Int("seq", disp.Seq).
			Int("target", disp.Target).
			Str("kind", disp.Kind.String()).
			Int("load", disp.Load).
			Int("pickups", len(disp.Pickups)).
			Bool("counted", disp.Counted).
			Msg("bus dispatched")
		cfg.Metrics.ObserveDispatch(disp)
	}
	plan.Result, err = fleet.Allocate(plan.Paths, in.Workers, in.Capacity,
		fleet.WithPartialPolicy(cfg.Policy),
		fleet.WithObserver(observe),
	)
	if err != nil {
		return fmt.Errorf("planner: %w", err)
	}

	return nil
}
