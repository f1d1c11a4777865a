// SPDX-License-Identifier: MIT
package fleet_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/fleet"
)

// referencePaths are the shortest routes of the four-location reference
// network: 1 and 2 hang off the hub, 3 is reached through 2.
func referencePaths() map[int]dijkstra.Path {
	return map[int]dijkstra.Path{
		1: {0, 1},
		2: {0, 2},
		3: {0, 2, 3},
	}
}

func TestAllocate_ReferenceScenario(t *testing.T) {
	t.Parallel()

	res, err := fleet.Allocate(referencePaths(), []int{23, 52, 11}, 25)
	require.NoError(t, err)
	require.Equal(t, 4, res.Trips)
	require.Equal(t, 3, res.Iterations)
	require.Equal(t, 86, res.Boarded())
	require.Equal(t, map[int]int{1: 23, 2: 52, 3: 11}, res.Served)

	require.Len(t, res.Dispatches, 4)
	first := res.Dispatches[0]
	assert.Equal(t, 3, first.Target, "the farthest location goes first")
	assert.Equal(t, fleet.KindPartial, first.Kind)
	assert.Equal(t, 25, first.Load)
	assert.Equal(t, []fleet.Pickup{{Location: 2, Workers: 14}}, first.Pickups)

	assert.Equal(t, 1, res.Dispatches[1].Target, "ties go to the lowest id")
	assert.Equal(t, fleet.KindFull, res.Dispatches[2].Kind)
	assert.Equal(t, 13, res.Dispatches[3].Load)
	for i, d := range res.Dispatches {
		assert.Equal(t, i+1, d.Seq)
		assert.True(t, d.Counted)
	}
}

func TestAllocate_ReferenceScenarioLegacyAgrees(t *testing.T) {
	t.Parallel()

	res, err := fleet.Allocate(referencePaths(), []int{23, 52, 11}, 25,
		fleet.WithPartialPolicy(fleet.CountLegacy))
	require.NoError(t, err)
	require.Equal(t, 4, res.Trips)
}

// TestAllocate_CapacitySweep pins the answer for several capacities on the
// reference network, where shrinking the bus never lowers the trip count.
// That does not hold for every network; see
// TestAllocate_SmallerBusCanNeedFewerTrips.
func TestAllocate_CapacitySweep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		capacity int
		want     int
	}{
		{100, 2},
		{50, 3},
		{25, 4},
		{10, 10},
		{5, 18},
	}

	prev := 0
	for _, tc := range tests {
		res, err := fleet.Allocate(referencePaths(), []int{23, 52, 11}, tc.capacity)
		require.NoError(t, err)
		require.Equalf(t, tc.want, res.Trips, "capacity %d", tc.capacity)
		require.GreaterOrEqual(t, res.Trips, prev)
		prev = res.Trips
	}
}

// TestAllocate_SmallerBusCanNeedFewerTrips pins a network where the greedy
// rule needs 6 buses of 16 seats but only 5 buses of 15: the smaller bus
// leaves one worker at 3, whose partial bus then empties stops 1 and 2.
func TestAllocate_SmallerBusCanNeedFewerTrips(t *testing.T) {
	t.Parallel()

	paths := map[int]dijkstra.Path{
		1: {0, 1},
		2: {0, 1, 2},
		3: {0, 1, 2, 3},
		4: {0, 1, 4},
		5: {0, 1, 5},
		6: {0, 1, 4, 6},
	}
	workers := []int{10, 4, 16, 24, 7, 3}

	big, err := fleet.Allocate(paths, workers, 16)
	require.NoError(t, err)
	small, err := fleet.Allocate(paths, workers, 15)
	require.NoError(t, err)

	require.Equal(t, 6, big.Trips)
	require.Equal(t, 5, small.Trips)
	require.Equal(t, []fleet.Pickup{{Location: 1, Workers: 10}, {Location: 2, Workers: 4}}, small.Dispatches[1].Pickups)
	require.Equal(t, 64, big.Boarded())
	require.Equal(t, 64, small.Boarded())
}

func TestAllocate_ExactMultiple(t *testing.T) {
	t.Parallel()

	res, err := fleet.Allocate(map[int]dijkstra.Path{1: {0, 1}}, []int{50}, 25)
	require.NoError(t, err)
	require.Equal(t, 2, res.Trips)
	for _, d := range res.Dispatches {
		require.Equal(t, fleet.KindFull, d.Kind, "no partial bus for an exact multiple")
	}
}

func TestAllocate_ZeroWorkersNeverCostATrip(t *testing.T) {
	t.Parallel()

	paths := map[int]dijkstra.Path{
		1: {0, 1},
		2: {0, 1, 2},
	}
	res, err := fleet.Allocate(paths, []int{0, 3}, 5)
	require.NoError(t, err)
	require.Equal(t, 1, res.Trips)
	require.Equal(t, 2, res.Iterations)
	require.Len(t, res.Dispatches, 1)
	require.Empty(t, res.Dispatches[0].Pickups)

	res, err = fleet.Allocate(paths, []int{0, 0}, 5)
	require.NoError(t, err)
	require.Equal(t, 0, res.Trips)
	require.Empty(t, res.Dispatches)
}

// TestAllocate_OutOfOrderRemoval covers locations retired in non-ascending
// id order: later pickups must still reach the right location's count.
func TestAllocate_OutOfOrderRemoval(t *testing.T) {
	t.Parallel()

	paths := map[int]dijkstra.Path{
		1: {0, 3, 1},
		2: {0, 4, 2},
		3: {0, 3},
		4: {0, 4},
	}
	res, err := fleet.Allocate(paths, []int{5, 5, 10, 10}, 8)
	require.NoError(t, err)
	require.Equal(t, 4, res.Trips)

	require.Equal(t, 1, res.Dispatches[0].Target)
	require.Equal(t, []fleet.Pickup{{Location: 3, Workers: 3}}, res.Dispatches[0].Pickups)
	require.Equal(t, 2, res.Dispatches[1].Target)
	require.Equal(t, []fleet.Pickup{{Location: 4, Workers: 3}}, res.Dispatches[1].Pickups)
	require.Equal(t, map[int]int{1: 5, 2: 5, 3: 10, 4: 10}, res.Served)
}

func TestAllocate_SweepsStopsNearestHubFirst(t *testing.T) {
	t.Parallel()

	paths := map[int]dijkstra.Path{
		1: {0, 1},
		2: {0, 1, 2},
		3: {0, 1, 2, 3},
	}

	// Everything fits on the first bus: both stops are emptied.
	res, err := fleet.Allocate(paths, []int{4, 3, 2}, 10)
	require.NoError(t, err)
	require.Equal(t, 1, res.Trips)
	require.Equal(t, 1, res.Iterations, "emptied stops are retired with the target")
	require.Equal(t, []fleet.Pickup{{Location: 1, Workers: 4}, {Location: 2, Workers: 3}}, res.Dispatches[0].Pickups)
	require.Equal(t, 9, res.Dispatches[0].Load)

	// Stop 1 overflows the bus; stop 2 must be left untouched.
	res, err = fleet.Allocate(paths, []int{9, 3, 2}, 10)
	require.NoError(t, err)
	require.Equal(t, []fleet.Pickup{{Location: 1, Workers: 8}}, res.Dispatches[0].Pickups)
	require.Equal(t, 10, res.Dispatches[0].Load)
	require.Equal(t, 2, res.Dispatches[1].Target)
	require.Equal(t, []fleet.Pickup{{Location: 1, Workers: 1}}, res.Dispatches[1].Pickups)
	require.Equal(t, 2, res.Trips)
}

func TestAllocate_LegacyPolicyUndercounts(t *testing.T) {
	t.Parallel()

	paths := map[int]dijkstra.Path{
		1: {0, 1},
		2: {0, 1, 2},
		3: {0, 1, 2, 3},
	}
	legacy := fleet.WithPartialPolicy(fleet.CountLegacy)

	// Topped up without overflowing: not counted under the legacy tally.
	res, err := fleet.Allocate(paths, []int{4, 3, 2}, 10, legacy)
	require.NoError(t, err)
	require.Equal(t, 0, res.Trips)
	require.False(t, res.Dispatches[0].Counted)

	// Overflowed first bus counts, second topped-up bus does not.
	res, err = fleet.Allocate(paths, []int{9, 3, 2}, 10, legacy)
	require.NoError(t, err)
	require.Equal(t, 1, res.Trips)

	// On the reference network a huge bus sweeps location 2 completely.
	res, err = fleet.Allocate(referencePaths(), []int{23, 52, 11}, 100, legacy)
	require.NoError(t, err)
	require.Equal(t, 1, res.Trips)
}

func TestAllocate_Observer(t *testing.T) {
	t.Parallel()

	var seen []fleet.Dispatch
	res, err := fleet.Allocate(referencePaths(), []int{23, 52, 11}, 25,
		fleet.WithObserver(func(d fleet.Dispatch) { seen = append(seen, d) }))
	require.NoError(t, err)
	require.Equal(t, res.Dispatches, seen)
}

func TestAllocate_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    map[int]dijkstra.Path
		workers  []int
		capacity int
		want     error
	}{
		{"zero capacity", referencePaths(), []int{1, 1, 1}, 0, fleet.ErrBadCapacity},
		{"negative capacity", referencePaths(), []int{1, 1, 1}, -3, fleet.ErrBadCapacity},
		{"too few counts", referencePaths(), []int{1, 1}, 5, fleet.ErrWorkerCountMismatch},
		{"negative count", referencePaths(), []int{1, -1, 1}, 5, fleet.ErrNegativeWorkers},
		{"missing route", map[int]dijkstra.Path{2: {0, 2}}, []int{1}, 5, fleet.ErrWorkerCountMismatch},
		{"reversed route", map[int]dijkstra.Path{1: {1, 0}}, []int{1}, 5, fleet.ErrMalformedPath},
		{"wrong destination", map[int]dijkstra.Path{1: {0, 2}}, []int{1}, 5, fleet.ErrMalformedPath},
		{"hub only", map[int]dijkstra.Path{1: {0}}, []int{1}, 5, fleet.ErrMalformedPath},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := fleet.Allocate(tc.paths, tc.workers, tc.capacity)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestAllocate_RandomTreeInvariants runs the allocator on random route trees
// and checks conservation of workers and the per-bus capacity bound.
func TestAllocate_RandomTreeInvariants(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(10) // locations including the hub
		parent := make([]int, n)
		paths := make(map[int]dijkstra.Path, n-1)
		workers := make([]int, n-1)
		total := 0
		for v := 1; v < n; v++ {
			parent[v] = rng.Intn(v)
			var rev []int
			for cur := v; cur != 0; cur = parent[cur] {
				rev = append(rev, cur)
			}
			p := dijkstra.Path{0}
			for i := len(rev) - 1; i >= 0; i-- {
				p = append(p, rev[i])
			}
			paths[v] = p
			workers[v-1] = rng.Intn(60)
			total += workers[v-1]
		}
		capacity := 1 + rng.Intn(30)

		res, err := fleet.Allocate(paths, workers, capacity)
		require.NoError(t, err)

		require.Equal(t, total, res.Boarded(), "every worker boards exactly once")
		for v := 1; v < n; v++ {
			require.Equal(t, workers[v-1], res.Served[v])
		}
		require.Equal(t, len(res.Dispatches), res.Trips, "every bus counts by default")
		require.GreaterOrEqual(t, res.Trips*capacity, total)
		require.LessOrEqual(t, res.Iterations, n-1)
		for _, d := range res.Dispatches {
			require.LessOrEqual(t, d.Load, capacity)
			require.Positive(t, d.Load)
		}
		if total > 0 {
			require.Positive(t, res.Trips)
		}
	}
}
