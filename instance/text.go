// SPDX-License-Identifier: MIT
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// rowReserve caps the up-front allocation for the matrix, so a huge M in
// a malformed header cannot allocate before any row is read.
const rowReserve = 16

// lineReader yields the whitespace-separated fields of each non-blank line
// and remembers the 1-based line number for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r)}
}

// next returns the fields of the next non-blank line.
// Errors: ErrTruncated at end of input, or the scanner's read error.
func (lr *lineReader) next() ([]string, error) {
	for lr.sc.Scan() {
		lr.line++
		if fields := strings.Fields(lr.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("instance: read: %w", err)
	}

	return nil, ErrTruncated
}

// expect reads the next line and requires exactly n integers on it.
func (lr *lineReader) expect(n int, what string) ([]int, error) {
	fields, err := lr.next()
	if err != nil {
		if errors.Is(err, ErrTruncated) {
			return nil, fmt.Errorf("%w: missing %s", ErrTruncated, what)
		}
		return nil, err
	}
	if len(fields) != n {
		return nil, fmt.Errorf("%w: line %d (%s) has %d values, want %d", ErrTokenCount, lr.line, what, len(fields), n)
	}

	out := make([]int, n)
	var (
		i   int
		v   int
		tok string
	)
	for i, tok = range fields {
		if v, err = strconv.Atoi(tok); err != nil {
			return nil, fmt.Errorf("%w: line %d (%s) value %q", ErrSyntax, lr.line, what, tok)
		}
		out[i] = v
	}

	return out, nil
}

// Parse reads the line-oriented format:
//
//	M
//	M lines of M integers      (distance matrix, hub first)
//	M-1 integers               (workers at locations 1..M-1)
//	capacity
//
// Blank lines are ignored; any other data after the capacity is an error.
// The result is validated with Validate before it is returned.
//
// Errors: ErrSyntax, ErrTokenCount, ErrTruncated, ErrTooFewLocations, plus
// every Validate error.
func Parse(r io.Reader, opts ...Option) (*Instance, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	lr := newLineReader(r)

	// 1) Header.
	head, err := lr.expect(1, "location count")
	if err != nil {
		return nil, err
	}
	m := head[0]
	if m < 2 {
		return nil, fmt.Errorf("%w: M=%d", ErrTooFewLocations, m)
	}
	if cfg.Strict && m >= MaxLocations {
		return nil, fmt.Errorf("%w: M=%d, want < %d", ErrConstraint, m, MaxLocations)
	}

	// 2) Distance matrix.
	rows := make([][]int, 0, min(m, rowReserve))
	var row []int
	for i := 0; i < m; i++ {
		if row, err = lr.expect(m, fmt.Sprintf("matrix row %d", i)); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	// 3) Workers and capacity.
	workers, err := lr.expect(m-1, "worker counts")
	if err != nil {
		return nil, err
	}
	capLine, err := lr.expect(1, "capacity")
	if err != nil {
		return nil, err
	}

	// 4) Nothing may follow.
	if _, err = lr.next(); err == nil {
		return nil, fmt.Errorf("%w: trailing data on line %d", ErrTokenCount, lr.line)
	} else if !errors.Is(err, ErrTruncated) {
		return nil, err
	}

	in := &Instance{Capacity: capLine[0], Distances: rows, Workers: workers}
	if err = in.Validate(cfg); err != nil {
		return nil, err
	}

	return in, nil
}

// WriteText encodes in in the format Parse reads.
func (in *Instance) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, in.Size())
	for _, row := range in.Distances {
		fmt.Fprintln(bw, joinInts(row))
	}
	fmt.Fprintln(bw, joinInts(in.Workers))
	fmt.Fprintln(bw, in.Capacity)

	return bw.Flush()
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
