// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the hub-rooted Dijkstra
// implementation: validation, tie-breaking, path reconstruction and the
// distance/path round-trip property.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/busroute/dijkstra"
	"github.com/katalvlaran/busroute/matrix"
)

// mustDistance builds a matrix.Distance or fails the test.
func mustDistance(t require.TestingT, rows [][]int) *matrix.Distance {
	d, err := matrix.NewDistance(rows)
	require.NoError(t, err)

	return d
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilMatrix(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNilMatrix)
}

func TestDijkstra_SourceOutOfRange(t *testing.T) {
	d := mustDistance(t, [][]int{{0, 1}, {1, 0}})
	_, err := dijkstra.Dijkstra(d, dijkstra.Source(2))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
	_, err = dijkstra.Dijkstra(d, dijkstra.Source(-1))
	require.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

// ------------------------------------------------------------------------
// 2. Behaviour on the reference network
// ------------------------------------------------------------------------

type ReferenceNetworkSuite struct {
	suite.Suite
	d    *matrix.Distance
	tree *dijkstra.Tree
}

func (s *ReferenceNetworkSuite) SetupTest() {
	s.d = mustDistance(s.T(), [][]int{
		{0, 10, 10, 30},
		{10, 0, 30, 20},
		{10, 30, 0, 10},
		{30, 20, 10, 0},
	})
	var err error
	s.tree, err = dijkstra.Dijkstra(s.d)
	require.NoError(s.T(), err)
}

func (s *ReferenceNetworkSuite) TestDistances() {
	require.Equal(s.T(), []int{0, 10, 10, 20}, s.tree.Dist)
	require.Equal(s.T(), []int{dijkstra.NoPredecessor, 0, 0, 2}, s.tree.Pred)
	require.Equal(s.T(), 4, s.tree.Size())
}

func (s *ReferenceNetworkSuite) TestPaths() {
	paths, err := s.tree.Paths()
	require.NoError(s.T(), err)
	require.Len(s.T(), paths, 3, "the hub's own path is discarded")
	require.Equal(s.T(), dijkstra.Path{0, 1}, paths[1])
	require.Equal(s.T(), dijkstra.Path{0, 2}, paths[2])
	require.Equal(s.T(), dijkstra.Path{0, 2, 3}, paths[3])
	require.Equal(s.T(), "0 -> 2 -> 3", paths[3].String())
}

func (s *ReferenceNetworkSuite) TestTransientTieIsCleared() {
	// Location 3 is first reached at 30 twice (via 0 and via 1), then at 20
	// via 2; the final route is unique.
	require.Empty(s.T(), s.tree.Ambiguous())
	_, err := dijkstra.Dijkstra(s.d, dijkstra.WithStrictUniqueness())
	require.NoError(s.T(), err)
}

func (s *ReferenceNetworkSuite) TestPathOutOfRange() {
	_, err := s.tree.Path(4)
	require.ErrorIs(s.T(), err, dijkstra.ErrOutOfRange)
}

func (s *ReferenceNetworkSuite) TestSourcePathIsTrivial() {
	p, err := s.tree.Path(matrix.Hub)
	require.NoError(s.T(), err)
	require.Equal(s.T(), dijkstra.Path{0}, p)
	require.Equal(s.T(), 0, p.Hops())
	require.Nil(s.T(), p.Intermediate())
}

func TestReferenceNetworkSuite(t *testing.T) {
	suite.Run(t, new(ReferenceNetworkSuite))
}

// ------------------------------------------------------------------------
// 3. Ties, unreachable locations, alternate sources
// ------------------------------------------------------------------------

func TestDijkstra_TieKeepsFirstPredecessor(t *testing.T) {
	// 0→2 directly costs 2, and 0→1→2 also costs 2.
	d := mustDistance(t, [][]int{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	})
	tree, err := dijkstra.Dijkstra(d)
	require.NoError(t, err)
	require.Equal(t, 0, tree.Pred[2], "an equal-cost candidate never overrides")
	require.Equal(t, []int{2}, tree.Ambiguous())

	_, err = dijkstra.Dijkstra(d, dijkstra.WithStrictUniqueness())
	require.ErrorIs(t, err, dijkstra.ErrAmbiguousPath)
}

func TestDijkstra_AmbiguityPropagatesDownstream(t *testing.T) {
	// 2 has two equal routes; 3 hangs off 2 only, so its route is ambiguous too.
	d := mustDistance(t, [][]int{
		{0, 1, 2, 0},
		{1, 0, 1, 0},
		{2, 1, 0, 5},
		{0, 0, 5, 0},
	})
	tree, err := dijkstra.Dijkstra(d)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, tree.Ambiguous())
}

func TestDijkstra_SelectionTiePicksLowestID(t *testing.T) {
	// 1 and 2 are both at distance 5; 1 is settled first so 3 (reachable
	// through either at the same total) keeps 1 as predecessor.
	d := mustDistance(t, [][]int{
		{0, 5, 5, 0},
		{5, 0, 0, 3},
		{5, 0, 0, 3},
		{0, 3, 3, 0},
	})
	tree, err := dijkstra.Dijkstra(d)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Pred[3])
	require.Equal(t, 8, tree.Dist[3])
}

func TestDijkstra_Unreachable(t *testing.T) {
	d := mustDistance(t, [][]int{
		{0, 5, 0},
		{5, 0, 0},
		{0, 0, 0},
	})
	tree, err := dijkstra.Dijkstra(d)
	require.NoError(t, err)
	require.False(t, tree.Reachable(2))
	require.Equal(t, dijkstra.Unreachable, tree.Dist[2])
	require.Equal(t, dijkstra.NoPredecessor, tree.Pred[2])

	_, err = tree.Path(2)
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = tree.Paths()
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

// TestDijkstra_HugeRoadsDoNotWrap uses the longest roads a three-location
// table accepts: the two-road detour must lose to the direct road.
func TestDijkstra_HugeRoadsDoNotWrap(t *testing.T) {
	w := matrix.MaxSafeDistance(3)
	d := mustDistance(t, [][]int{
		{0, w, w},
		{w, 0, w},
		{w, w, 0},
	})
	tree, err := dijkstra.Dijkstra(d)
	require.NoError(t, err)
	require.Equal(t, []int{0, w, w}, tree.Dist)
	for _, dist := range tree.Dist {
		require.GreaterOrEqual(t, dist, 0)
	}

	p, err := tree.Path(2)
	require.NoError(t, err)
	require.Equal(t, dijkstra.Path{0, 2}, p)
	require.Empty(t, tree.Ambiguous())

	// One more and the table is refused before routing starts.
	_, err = matrix.NewDistance([][]int{
		{0, math.MaxInt/2 + 10, math.MaxInt/2 + 10},
		{math.MaxInt/2 + 10, 0, math.MaxInt/2 + 10},
		{math.MaxInt/2 + 10, math.MaxInt/2 + 10, 0},
	})
	require.ErrorIs(t, err, matrix.ErrDistanceTooLarge)
}

func TestDijkstra_AlternateSource(t *testing.T) {
	d := mustDistance(t, [][]int{
		{0, 10, 10, 30},
		{10, 0, 30, 20},
		{10, 30, 0, 10},
		{30, 20, 10, 0},
	})
	tree, err := dijkstra.Dijkstra(d, dijkstra.Source(3))
	require.NoError(t, err)
	require.Equal(t, 3, tree.Source)

	paths, err := tree.Paths()
	require.NoError(t, err)
	require.NotContains(t, paths, 3)
	require.Equal(t, dijkstra.Path{3, 2, 0}, paths[0])
}

// ------------------------------------------------------------------------
// 4. Round-trip property: re-summing a reconstructed path gives its distance.
// ------------------------------------------------------------------------

func TestDijkstra_PathCostMatchesDistance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(10)
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = make([]int, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := 1 + rng.Intn(299)
				rows[i][j], rows[j][i] = w, w
			}
		}
		d := mustDistance(t, rows)

		tree, err := dijkstra.Dijkstra(d)
		require.NoError(t, err)
		paths, err := tree.Paths()
		require.NoError(t, err)
		require.Len(t, paths, n-1)

		for v, p := range paths {
			require.Equal(t, matrix.Hub, p[0])
			require.Equal(t, v, p.Destination())
			cost, err := p.Cost(d)
			require.NoError(t, err)
			require.Equalf(t, tree.Dist[v], cost, "trial %d location %d path %s", trial, v, p)
		}
	}
}

func TestPath_Helpers(t *testing.T) {
	p := dijkstra.Path{0, 4, 2, 7}
	require.Equal(t, 3, p.Hops())
	require.Equal(t, 7, p.Destination())
	require.Equal(t, []int{4, 2}, p.Intermediate())

	// Intermediate returns a copy.
	mid := p.Intermediate()
	mid[0] = 99
	require.Equal(t, 4, p[1])

	var empty dijkstra.Path
	require.Equal(t, 0, empty.Hops())
	require.Equal(t, dijkstra.NoPredecessor, empty.Destination())
	require.Equal(t, "", empty.String())
}
