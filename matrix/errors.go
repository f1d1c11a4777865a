// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every validator and accessor in this package returns one of these
// sentinels, optionally wrapped with (row,col) context via %w. Callers
// match them with errors.Is. No function panics on user input.

package matrix

import "errors"

// ERROR PRIORITY (enforced by NewDistance, covered in tests):
// empty -> shape -> negativity -> diagonal -> symmetry -> upper bound.

var (
	// ErrEmpty is returned when the matrix has no rows at all.
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNonSquare signals that some row length differs from the row count.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeDistance signals a negative entry.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNonZeroDiagonal signals that a location has a non-zero distance to itself.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrAsymmetry signals matrix[i][j] != matrix[j][i].
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrDistanceTooLarge signals an entry at or above the configured limit,
	// or one large enough for a route sum to overflow int.
	ErrDistanceTooLarge = errors.New("matrix: distance exceeds limit")

	// ErrOutOfRange indicates that a row or column index is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Distance was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
