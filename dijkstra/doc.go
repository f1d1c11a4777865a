// SPDX-License-Identifier: MIT

// Package dijkstra builds the shortest-path tree of a road network rooted at
// the hub, and reconstructs the unique route from the hub to every location.
//
// Overview:
//
//   - Classic label-setting Dijkstra on a dense matrix.Distance: n rounds,
//     each selecting the unvisited location with the smallest distance by a
//     linear scan, then relaxing every road out of it.
//   - Deterministic: the scan keeps the first minimum (lowest id wins ties),
//     and relaxation only replaces a predecessor on strict improvement.
//   - Path reconstruction walks the predecessor array back to the source and
//     reverses it, giving hub -> … -> destination inclusive.
//
// Performance and complexity:
//
//   - Time:  O(n²), which beats a heap on dense tables with n ≲ 100.
//   - Space: O(n) for dist, pred, visited and tie flags.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:        nil *matrix.Distance.
//   - ErrSourceOutOfRange: Source(id) outside [0, n).
//   - ErrOutOfRange:       Tree.Path asked for an unknown location.
//   - ErrUnreachable:      Tree.Path/Paths on a location with no route.
//   - ErrAmbiguousPath:    WithStrictUniqueness and two equal shortest routes.
//
// API reference:
//
//	func Dijkstra(d *matrix.Distance, opts ...Option) (*Tree, error)
//
//	  - opts:
//	      • Source(int):            root of the tree (default matrix.Hub).
//	      • WithStrictUniqueness(): reject ties instead of reporting them.
//	  - Tree.Dist[v]:  shortest distance, or Unreachable.
//	  - Tree.Pred[v]:  predecessor, or NoPredecessor.
//	  - Tree.Paths():  map location -> Path for every non-source location.
//
// Thread safety:
//
//   - Dijkstra shares nothing between calls; a Tree is safe for concurrent
//     reads once returned.
package dijkstra
