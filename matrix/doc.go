// SPDX-License-Identifier: MIT

// Package matrix offers the dense distance table that models the road
// network between a hub (location 0) and the locations workers start from.
//
// The matrix package provides:
//
//   - Distance, an immutable n×n table with O(1) lookups and O(n²) memory.
//   - Standalone validators (square, non-negative, zero diagonal, symmetric,
//     upper bound) usable before any allocation.
//
// A zero off-diagonal entry means "no direct road"; routing code treats it
// as a missing edge. Matrices are best for the small, dense instances this
// module targets (a dozen locations).
package matrix
