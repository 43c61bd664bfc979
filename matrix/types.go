// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file intentionally contains ONLY the
// element-type constraint and the Matrix container itself. Errors, options
// and validators live in dedicated files (errors.go, options.go,
// validators.go) per the package conventions.
package matrix

// Numeric is the constraint for supported element types. It is a manual
// type set rather than an external constraints import: every member supports
// the zero value as additive identity, the + and * operators used by the
// dot-product kernel, == comparison, and %v rendering.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Matrix is a dense, rectangular, row-major 2-dimensional container of T.
//
// Row and column counts are derived from the stored data, never tracked
// separately; a zero-row matrix has zero columns by convention. Every row
// must have the same length (the rectangular invariant) — constructors
// enforce it except where WithNoCopy makes aliasing, and therefore the
// invariant, the caller's responsibility.
//
// The cache field is a one-entry memo holding the most recently computed
// transpose of the current data. It is an implementation-detail cache, not
// part of the logical value: equality and every other observable contract
// ignore it, and any mutating access (Set, RowView, Apply) clears it
// eagerly — even when the write does not change a value.
//
// Complexity notes: accessors are O(1); Clone, Transpose, String are
// O(rows*cols); Mul is O(r1*c1*c2).
type Matrix[T Numeric] struct {
	data  [][]T      // rows outer, columns inner
	cache *Matrix[T] // memoized transpose; nil when absent or invalidated
}
