// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the structural checks a road
//    distance table must pass before any routing work begins.
//  - Keep NewDistance minimal by delegating each check here.
//  - Return sentinel errors wrapped with the offending coordinates.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Row-major scan order, so the first violation reported is always the
//    same for a given input.
//
// Note:
//  - Each validator assumes the previous ones in ValidateAll passed
//    (e.g. ValidateSymmetric assumes a square matrix).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the validator tag and
// the coordinates that triggered it.
func validatorErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}

// ValidateSquare checks that rows is non-empty and every row has exactly
// len(rows) entries.
//
// Errors: ErrEmpty, ErrNonSquare.
// Complexity: O(n).
func ValidateSquare(rows [][]int) error {
	n := len(rows)
	if n == 0 {
		return fmt.Errorf("ValidateSquare: %w", ErrEmpty)
	}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return fmt.Errorf("ValidateSquare: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}

	return nil
}

// ValidateNonNegative rejects any negative entry.
//
// Errors: ErrNegativeDistance.
// Complexity: O(n²).
func ValidateNonNegative(rows [][]int) error {
	var i, j int
	for i = range rows {
		for j = range rows[i] {
			if rows[i][j] < 0 {
				return validatorErrorf("ValidateNonNegative", i, j, ErrNegativeDistance)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal requires rows[i][i] == 0 for every i.
// Assumes a square matrix.
//
// Errors: ErrNonZeroDiagonal.
// Complexity: O(n).
func ValidateZeroDiagonal(rows [][]int) error {
	var i int
	for i = range rows {
		if rows[i][i] != 0 {
			return validatorErrorf("ValidateZeroDiagonal", i, i, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric requires rows[i][j] == rows[j][i]. Only the upper
// triangle is scanned. Assumes a square matrix.
//
// Errors: ErrAsymmetry.
// Complexity: O(n²/2).
func ValidateSymmetric(rows [][]int) error {
	var (
		i, j int
		n    = len(rows)
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if rows[i][j] != rows[j][i] {
				return validatorErrorf("ValidateSymmetric", i, j, ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateUpperBound rejects any off-diagonal entry >= limit.
// A non-positive limit disables the check.
//
// Errors: ErrDistanceTooLarge.
// Complexity: O(n²).
func ValidateUpperBound(rows [][]int, limit int) error {
	if limit <= 0 {
		return nil
	}

	var i, j int
	for i = range rows {
		for j = range rows[i] {
			if rows[i][j] >= limit {
				return validatorErrorf("ValidateUpperBound", i, j, ErrDistanceTooLarge)
			}
		}
	}

	return nil
}

// MaxSafeDistance returns the largest road length n locations can hold
// without any route of at most n-1 roads reaching math.MaxInt.
func MaxSafeDistance(n int) int {
	if n < 2 {
		return math.MaxInt - 1
	}

	return (math.MaxInt - 1) / (n - 1)
}

// ValidatePathSum rejects any entry above MaxSafeDistance(len(rows)), so
// summing a simple route can never overflow int. Assumes a square,
// non-negative matrix.
//
// Errors: ErrDistanceTooLarge.
// Complexity: O(n²).
func ValidatePathSum(rows [][]int) error {
	limit := MaxSafeDistance(len(rows))

	var i, j int
	for i = range rows {
		for j = range rows[i] {
			if rows[i][j] > limit {
				return validatorErrorf("ValidatePathSum", i, j, ErrDistanceTooLarge)
			}
		}
	}

	return nil
}

// ValidateAll runs the full validation sequence in priority order:
// square -> non-negative -> zero diagonal -> symmetric -> upper bound ->
// path sum. The path-sum check always runs, with or without MaxDistance.
//
// Complexity: O(n²).
func ValidateAll(rows [][]int, opts Options) error {
	if err := ValidateSquare(rows); err != nil {
		return err
	}
	if err := ValidateNonNegative(rows); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(rows); err != nil {
		return err
	}
	if err := ValidateSymmetric(rows); err != nil {
		return err
	}

	if err := ValidateUpperBound(rows, opts.MaxDistance); err != nil {
		return err
	}

	return ValidatePathSum(rows)
}
