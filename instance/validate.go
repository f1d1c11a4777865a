// SPDX-License-Identifier: MIT
// Package instance - validation shared by every loader.
//
// Stages run in a fixed order so the reported error is deterministic:
//  1. Shape: M >= 2, M-1 worker counts.
//  2. Matrix: delegated to matrix.ValidateAll.
//  3. Counts and capacity.
//  4. Strict bounds (optional).

package instance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/busroute/matrix"
)

// Validate checks the instance under opts. It does not check that shortest
// routes are unique or that every location is reachable; that needs the
// shortest-path tree and is done by the planner.
//
// Complexity: O(M²).
func (in *Instance) Validate(opts Options) error {
	// Stage 1: shape.
	m := in.Size()
	if m < 2 {
		return fmt.Errorf("%w: M=%d", ErrTooFewLocations, m)
	}
	if len(in.Workers) != m-1 {
		return fmt.Errorf("%w: %d worker counts for %d locations", ErrTokenCount, len(in.Workers), m-1)
	}

	// Stage 2: matrix structure.
	mo := matrix.DefaultOptions()
	if opts.Strict {
		mo.MaxDistance = MaxRoadLength
	}
	if err := matrix.ValidateAll(in.Distances, mo); err != nil {
		if opts.Strict && errors.Is(err, matrix.ErrDistanceTooLarge) {
			return fmt.Errorf("%w: %w", ErrConstraint, err)
		}
		return err
	}

	// Stage 3: counts and capacity.
	for i, w := range in.Workers {
		if w < 0 {
			return fmt.Errorf("%w: location %d has %d", ErrNegativeWorkers, i+1, w)
		}
	}
	if in.Capacity <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadCapacity, in.Capacity)
	}

	// Stage 4: problem-statement bounds.
	if opts.Strict {
		return in.validateStrict()
	}

	return nil
}

// validateStrict enforces 1 < M < 12, positive roads between every pair and
// 0 < total workers < 500. Distance upper bounds are checked in Stage 2.
func (in *Instance) validateStrict() error {
	m := in.Size()
	if m >= MaxLocations {
		return fmt.Errorf("%w: M=%d, want < %d", ErrConstraint, m, MaxLocations)
	}

	var i, j int
	for i = 0; i < m; i++ {
		for j = i + 1; j < m; j++ {
			if in.Distances[i][j] <= 0 {
				return fmt.Errorf("%w: no road between %d and %d", ErrConstraint, i, j)
			}
		}
	}

	if total := in.Total(); total <= 0 || total >= MaxWorkers {
		return fmt.Errorf("%w: %d workers, want 0 < total < %d", ErrConstraint, total, MaxWorkers)
	}

	return nil
}

// Distance builds the immutable road table for the routing engine.
func (in *Instance) Distance() (*matrix.Distance, error) {
	return matrix.NewDistance(in.Distances)
}
