// SPDX-License-Identifier: MIT

// Package matrix - Distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Hold the pairwise road distances between locations 0..n-1 in a flat
//     row-major buffer with the explicit index formula i*n + j.
//   - Guarantee immutability: the constructor copies its input and every
//     accessor that exposes rows returns a copy.
//   - Guarantee safety at the public surface: At returns errors instead of
//     panicking. Weight is the unchecked fast path for routing loops.
//
// Complexity quicksheet:
//   - NewDistance: O(n²) validate + copy; At/Weight/HasEdge: O(1);
//     Row: O(n); Rows: O(n²).

package matrix

import (
	"fmt"
	"strings"
)

// Hub is the fixed identifier of the office every worker travels to.
const Hub = 0

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Options configures Distance construction.
//
// MaxDistance – exclusive upper bound on every entry; 0 disables the check.
type Options struct {
	MaxDistance int
}

// Option represents a functional option for configuring NewDistance.
type Option func(*Options)

// WithMaxDistance rejects any entry >= limit (ErrDistanceTooLarge).
// The problem statement bounds road lengths below 300.
func WithMaxDistance(limit int) Option {
	return func(o *Options) {
		o.MaxDistance = limit
	}
}

// DefaultOptions returns Options with no upper bound on distances.
func DefaultOptions() Options {
	return Options{MaxDistance: 0}
}

// Distance is an immutable, symmetric, zero-diagonal table of road lengths.
//   - n holds the number of locations (matrix order).
//   - data is a flat buffer of length n*n in row-major order.
type Distance struct {
	n    int
	data []int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Distance)(nil)

// NewDistance validates rows and builds a Distance from a private copy.
//
// Implementation:
//   - Stage 1: apply options.
//   - Stage 2: ValidateAll (square, non-negative, diagonal, symmetric, bound).
//   - Stage 3: copy into a flat buffer.
//
// Errors:
//   - ErrEmpty, ErrNonSquare, ErrNegativeDistance, ErrNonZeroDiagonal,
//     ErrAsymmetry, ErrDistanceTooLarge (all wrapped with context).
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDistance(rows [][]int, opts ...Option) (*Distance, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := ValidateAll(rows, cfg); err != nil {
		return nil, fmt.Errorf("NewDistance: %w", err)
	}

	n := len(rows)
	buf := make([]int, n*n)
	var i int
	for i = 0; i < n; i++ {
		copy(buf[i*n:(i+1)*n], rows[i])
	}

	return &Distance{n: n, data: buf}, nil
}

// Size returns the number of locations, hub included.
func (d *Distance) Size() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns the distance between u and v.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (d *Distance) At(u, v int) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return 0, fmt.Errorf("Distance.At(%d,%d): %w", u, v, ErrOutOfRange)
	}

	return d.data[u*d.n+v], nil
}

// Weight is the unchecked accessor used inside routing loops.
// It returns 0 for u == v and for pairs with no direct road.
// Callers must guarantee 0 <= u,v < Size().
func (d *Distance) Weight(u, v int) int {
	return d.data[u*d.n+v]
}

// HasEdge reports whether a direct road of positive length joins u and v.
// Out-of-range indices report false.
func (d *Distance) HasEdge(u, v int) bool {
	w, err := d.At(u, v)

	return err == nil && w > 0
}

// Row returns a copy of the distances from u to every location.
// Errors: ErrNilMatrix, ErrOutOfRange.
func (d *Distance) Row(u int) ([]int, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if u < 0 || u >= d.n {
		return nil, fmt.Errorf("Distance.Row(%d): %w", u, ErrOutOfRange)
	}
	out := make([]int, d.n)
	copy(out, d.data[u*d.n:(u+1)*d.n])

	return out, nil
}

// Rows returns a deep copy of the whole table as [][]int.
func (d *Distance) Rows() [][]int {
	if d == nil {
		return nil
	}
	out := make([][]int, d.n)
	var i int
	for i = 0; i < d.n; i++ {
		out[i] = make([]int, d.n)
		copy(out[i], d.data[i*d.n:(i+1)*d.n])
	}

	return out
}

// String renders the table one row per line, e.g. "[0, 10]\n[10, 0]\n".
func (d *Distance) String() string {
	if d == nil {
		return "<nil>"
	}

	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < d.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", d.data[i*d.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
