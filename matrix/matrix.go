// SPDX-License-Identifier: MIT

// Package matrix: the Matrix[T] container — constructors, accessors,
// mutators, equality and printing. The transpose and multiplication kernels
// live in dedicated files (transpose.go, multiply.go) to keep roles clean.
package matrix

import (
	"fmt"
	"io"
	"strings"
)

// panicRaggedLiteral is the stable panic message for jagged Literal input.
// Literal exists for compile-time literals, so a jagged argument is a
// programmer error, not a runtime condition.
const panicRaggedLiteral = "matrix: Literal: rows have unequal lengths"

// New returns the empty matrix: zero rows, zero columns.
// Complexity: O(1).
func New[T Numeric]() *Matrix[T] {
	// The zero value of the struct already encodes the empty matrix.
	return &Matrix[T]{}
}

// NewDense creates a rows×cols matrix where every cell equals the fill value
// (T's zero value unless WithFill is given).
// Stage 1 (Validate): ensure rows and cols >= 0.
// Stage 2 (Prepare): allocate row slices and write the fill value.
// Stage 3 (Finalize): return the new matrix or ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func NewDense[T Numeric](rows, cols int, opts ...Option[T]) (*Matrix[T], error) {
	// Validate dimensions via the central validator.
	if err := ValidateDims(rows, cols); err != nil {
		return nil, matrixErrorf("NewDense", err)
	}
	// Resolve construction options (fill value).
	o := gatherOptions(opts...)

	// Allocate the outer slice, then each row, writing the fill value once
	// per cell in fixed i→j order.
	data := make([][]T, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		data[i] = make([]T, cols)
		if o.fill != *new(T) { // skip the write loop when fill is the zero value
			for j = 0; j < cols; j++ {
				data[i][j] = o.fill
			}
		}
	}

	return &Matrix[T]{data: data}, nil
}

// FromRows creates a matrix from an existing nested slice.
// Stage 1 (Validate): rectangularity check (ErrRaggedRows on violation).
// Stage 2 (Prepare): deep-copy the rows, or adopt them under WithNoCopy.
// Stage 3 (Finalize): return the new matrix.
// Complexity: O(rows*cols) when copying; O(rows) validation under WithNoCopy.
func FromRows[T Numeric](rows [][]T, opts ...Option[T]) (*Matrix[T], error) {
	// Enforce the rectangular invariant at ingestion.
	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf("FromRows", err)
	}
	// Resolve construction options (ownership policy).
	o := gatherOptions(opts...)

	// Ownership transfer: adopt the caller's slice directly.
	if o.noCopy {
		return &Matrix[T]{data: rows}, nil
	}

	// Default: deep-copy so the matrix owns its storage outright.
	return &Matrix[T]{data: copyRows(rows)}, nil
}

// Literal builds a matrix from row literals, mirroring brace construction:
//
//	m := matrix.Literal([]int{1, 2, 3}, []int{4, 5, 6})
//
// It always deep-copies and panics on jagged input — it exists for
// compile-time literals in tests and examples, where an error return is
// noise and a jagged argument is a programmer error.
// Complexity: O(rows*cols).
func Literal[T Numeric](rows ...[]T) *Matrix[T] {
	if err := ValidateRectangular(rows); err != nil {
		panic(panicRaggedLiteral)
	}

	return &Matrix[T]{data: copyRows(rows)}
}

// copyRows deep-copies a nested slice in fixed row order.
// Complexity: O(rows*cols).
func copyRows[T Numeric](rows [][]T) [][]T {
	out := make([][]T, len(rows))
	for i := range rows {
		out[i] = make([]T, len(rows[i]))
		copy(out[i], rows[i])
	}

	return out
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Matrix[T]) Rows() int {
	return len(m.data) // derived from storage, never tracked separately
}

// Cols returns the number of columns in the matrix.
// A zero-row matrix has zero columns by convention.
// Complexity: O(1).
func (m *Matrix[T]) Cols() int {
	if len(m.data) == 0 {
		return 0
	}

	return len(m.data[0]) // column count derives from row 0
}

// Shape returns (rows, cols) in one call.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// IsEmpty reports whether the matrix has zero rows.
// Complexity: O(1).
func (m *Matrix[T]) IsEmpty() bool { return len(m.data) == 0 }

// At retrieves the element at (i, j).
// Stage 1 (Validate): bounds check via ValidateIndex.
// Stage 2 (Execute): read from the backing rows.
// Complexity: O(1).
func (m *Matrix[T]) At(i, j int) (T, error) {
	// Bounds check or fail with ErrIndexOutOfBounds.
	if err := ValidateIndex(m, i, j); err != nil {
		var zero T
		return zero, matrixErrorf("At", err)
	}

	// Return the stored value.
	return m.data[i][j], nil
}

// Set assigns value v at (i, j) and eagerly invalidates the transpose cache
// — even when the write does not change the stored value, so the next
// Transpose recomputes rather than serving stale data.
// Complexity: O(1).
func (m *Matrix[T]) Set(i, j int, v T) error {
	// Bounds check or fail with ErrIndexOutOfBounds.
	if err := ValidateIndex(m, i, j); err != nil {
		return matrixErrorf("Set", err)
	}
	// Contents may now differ from what was cached.
	m.invalidate()
	// Assign value.
	m.data[i][j] = v

	return nil
}

// Row returns a copy of row i. Read access: the caller may mutate the
// returned slice freely without affecting the matrix, so there is no cache
// interaction.
// Complexity: O(cols).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	// Bounds check or fail with ErrIndexOutOfBounds.
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf("Row", err)
	}

	// Copy the row so the matrix storage stays private.
	out := make([]T, len(m.data[i]))
	copy(out, m.data[i])

	return out, nil
}

// RowView returns the backing slice of row i for in-place modification.
// Mutable access: because the matrix contents may now change behind the
// cache's back, the transpose cache is invalidated eagerly before the slice
// is handed out.
// Complexity: O(1).
func (m *Matrix[T]) RowView(i int) ([]T, error) {
	// Bounds check or fail with ErrIndexOutOfBounds.
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf("RowView", err)
	}
	// Assume the caller will write through the view.
	m.invalidate()

	return m.data[i], nil
}

// Clone returns a deep copy of the matrix. The transpose cache is not
// carried over: it is an implementation detail of the source value, and the
// clone recomputes on first demand.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Clone() *Matrix[T] {
	return &Matrix[T]{data: copyRows(m.data)}
}

// invalidate clears the one-entry transpose cache.
// Every mutating access path (Set, RowView, Apply) must call this before
// exposing or changing storage.
func (m *Matrix[T]) invalidate() { m.cache = nil }

// Equal reports whether m and other have identical shapes and every
// corresponding element compares equal. Any dimension mismatch implies
// inequality immediately — no element comparison is attempted. Cache
// occupancy is never observable: two equal matrices may differ in whether a
// transpose is memoized.
// Complexity: O(1) on shape mismatch, O(rows*cols) otherwise.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	// Nil handling: two nil values are equal, nil vs non-nil is not.
	if m == nil || other == nil {
		return m == other
	}
	// Short-circuit on any dimension mismatch.
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}

	// Elementwise comparison in fixed i→j order.
	var i, j int
	for i = 0; i < len(m.data); i++ {
		for j = 0; j < len(m.data[i]); j++ {
			if m.data[i][j] != other.data[i][j] {
				return false
			}
		}
	}

	return true
}

// NotEqual is the logical negation of Equal.
// Complexity: same as Equal.
func (m *Matrix[T]) NotEqual(other *Matrix[T]) bool { return !m.Equal(other) }

// Do visits each element (i, j) in row-major order and calls f(i, j, v).
// Read-only visitor; stops early when f returns false. No allocations;
// deterministic i→j order.
// Complexity: O(rows*cols), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j int
	for i = 0; i < len(m.data); i++ {
		for j = 0; j < len(m.data[i]); j++ {
			if !f(i, j, m.data[i][j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each element with f(i, j, v) in place, in deterministic
// row-major order. A mutating access: the transpose cache is invalidated
// before the first write.
// Complexity: O(rows*cols), Space O(1).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	// Contents are about to change.
	m.invalidate()

	var i, j int
	for i = 0; i < len(m.data); i++ {
		for j = 0; j < len(m.data[i]); j++ {
			m.data[i][j] = f(i, j, m.data[i][j])
		}
	}
}

// Fprint renders the matrix to w, row by row: elements space-separated via
// %v, one newline-terminated line per row. Diagnostics only — this is not a
// parseable serialization format.
// Complexity: O(rows*cols).
func (m *Matrix[T]) Fprint(w io.Writer) {
	var i, j int
	for i = 0; i < len(m.data); i++ {
		for j = 0; j < len(m.data[i]); j++ {
			if j > 0 {
				fmt.Fprint(w, " ") // separate values with a single space
			}
			fmt.Fprintf(w, "%v", m.data[i][j])
		}
		fmt.Fprintln(w) // close the row
	}
}

// String implements fmt.Stringer using the same rendering as Fprint.
// Complexity: O(rows*cols).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	m.Fprint(&b)

	return b.String()
}
