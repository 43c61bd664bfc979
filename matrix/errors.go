// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors (jagged compile-time literals).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with matrixErrorf("ctx", ErrX) —
// callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> invalid dims -> index bounds -> empty operand ->
// dimension mismatch -> ragged input.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (negative rows or columns). Constructors must validate before
	// allocation. Zero dimensions are legal: they build the empty matrix.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// valid bounds. Public indexers (At/Set/Row/RowView) MUST return this,
	// not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: unequal vector lengths in Dot, or non-conformable shapes in
	// the elementwise kernels. Mul surfaces the a.Cols != b.Rows rule
	// through this sentinel via its per-cell dot products.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmptyMatrix signals that a zero-row operand was passed to Mul.
	// One condition, one sentinel: this replaces the historical habit of
	// reporting the empty-operand case as an out-of-range error while
	// reporting every other shape violation as a dimension error.
	ErrEmptyMatrix = errors.New("matrix: empty matrix operand")

	// ErrRaggedRows indicates that a nested slice handed to FromRows has
	// rows of unequal length, violating the rectangular invariant.
	ErrRaggedRows = errors.New("matrix: rows have unequal lengths")

	// ErrNilMatrix indicates that a nil *Matrix was passed to a
	// package-level kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w. The wrapper keeps a stable "Op: underlying" shape for uniform
// reporting. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
