// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common shapes.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     constructor.
//
// Policy:
//   - Facades never change validation or loop orders of the underlying
//     constructors; errors bubble up unchanged.

package matrix

// Zeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(rows*cols) zero-init by the runtime.
func Zeros[T Numeric](rows, cols int) (*Matrix[T], error) {
	// Delegate directly to the strict constructor.
	return NewDense[T](rows, cols)
}

// Filled returns a new rows×cols matrix with every cell set to v.
// Complexity: O(rows*cols).
func Filled[T Numeric](rows, cols int, v T) (*Matrix[T], error) {
	// Delegate to NewDense with an explicit fill option.
	return NewDense(rows, cols, WithFill(v))
}

// Identity returns I_n: ones on the diagonal, zeros elsewhere.
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func Identity[T Numeric](n int) (*Matrix[T], error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewDense[T](n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		_ = ident.Set(i, i, T(1)) // bounds-safe after shape validation
	}

	return ident, nil
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers.
// Complexity: O(rows*cols).
func ZerosLike[T Numeric](m *Matrix[T]) (*Matrix[T], error) {
	// Validate presence, then reuse the shape.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense[T](m.Rows(), m.Cols())
}
