// SPDX-License-Identifier: MIT

// Package instance loads and validates bus-count problem instances.
//
// Two encodings are supported: the line-oriented text format of the
// problem statement (read from stdin by default) and an equivalent YAML
// mapping. Both loaders validate eagerly and fail with a sentinel error
// before any routing work begins; WithStrict additionally enforces the
// problem-statement bounds (1 < M < 12, 0 < distance < 300,
// 0 < total workers < 500).
package instance
