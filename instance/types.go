// SPDX-License-Identifier: MIT
package instance

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors returned by the loaders and Validate.
var (
	// ErrSyntax indicates a token that is not a base-10 integer.
	ErrSyntax = errors.New("instance: malformed integer")

	// ErrTokenCount indicates a line with the wrong number of values, or
	// trailing data after the capacity.
	ErrTokenCount = errors.New("instance: wrong number of values")

	// ErrTruncated indicates that the input ended before the capacity.
	ErrTruncated = errors.New("instance: unexpected end of input")

	// ErrTooFewLocations indicates M < 2 (a hub and at least one location).
	ErrTooFewLocations = errors.New("instance: need at least two locations")

	// ErrNegativeWorkers indicates a negative worker count.
	ErrNegativeWorkers = errors.New("instance: negative worker count")

	// ErrBadCapacity indicates a non-positive bus capacity.
	ErrBadCapacity = errors.New("instance: capacity must be positive")

	// ErrConstraint indicates a violation of the problem-statement bounds
	// (strict mode only).
	ErrConstraint = errors.New("instance: problem constraint violated")
)

// Bounds from the problem statement, enforced by WithStrict.
const (
	MaxLocations  = 12  // 1 < M < 12
	MaxRoadLength = 300 // 0 < distance < 300
	MaxWorkers    = 500 // 0 < total workers < 500
)

// Instance is one complete, static problem: the road table, the workers
// waiting at locations 1..M-1, and the bus capacity.
type Instance struct {
	Capacity  int     `yaml:"capacity"`
	Distances [][]int `yaml:"distances"`
	Workers   []int   `yaml:"workers"`
}

// Size returns M, the number of locations including the hub.
func (in *Instance) Size() int { return len(in.Distances) }

// Total returns the number of workers across all locations.
func (in *Instance) Total() int {
	total := 0
	for _, w := range in.Workers {
		total += w
	}

	return total
}

// Options configures loading and validation.
//
// Strict – also enforce the problem-statement bounds (MaxLocations,
// MaxRoadLength, MaxWorkers, positive roads between every pair).
type Options struct {
	Strict bool
}

// Option represents a functional option for the loaders.
type Option func(*Options)

// WithStrict enables the problem-statement bounds.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// DefaultOptions validates structure only.
func DefaultOptions() Options {
	return Options{Strict: false}
}

// Format selects the on-disk encoding of an instance.
type Format int

const (
	// FormatAuto picks FormatYAML for .yaml/.yml files, FormatText otherwise.
	FormatAuto Format = iota
	// FormatText is the line-oriented format read from stdin.
	FormatText
	// FormatYAML is a mapping with capacity, distances and workers keys.
	FormatYAML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat maps a flag value to a Format. Unknown names give FormatAuto
// and false.
func ParseFormat(name string) (Format, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, true
	case "text", "txt":
		return FormatText, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return FormatAuto, false
	}
}

// DetectFormat resolves FormatAuto from a file name.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}
