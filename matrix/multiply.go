// SPDX-License-Identifier: MIT

// Package matrix: the multiplication kernel and its dot-product primitive.
//
// Purpose:
//   - Declare the canonical product kernel used by every public form
//     (package function, method, chainable MustMul).
//   - Keep validation fail-fast and sentinel-based: empty operands are a
//     distinct, named failure; the a.Cols != b.Rows shape rule surfaces
//     through the per-cell dot products.
package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDot = "Dot"
	opMul = "Mul"
)

// Dot computes the dot product of two equal-length vectors: the sum of
// elementwise products, accumulated from T's zero value using T's + and *
// operators. No overflow or precision handling beyond what T itself
// provides.
//
// Errors:
//   - ErrDimensionMismatch when the lengths differ.
//
// Determinism: single fixed 0..n-1 loop.
// Complexity: O(n), Space O(1).
func Dot[T Numeric](v1, v2 []T) (T, error) {
	var result T // T's zero value is the additive identity

	// Unequal lengths cannot form a dot product.
	if len(v1) != len(v2) {
		return result, matrixErrorf(opDot, ErrDimensionMismatch)
	}

	// Accumulate elementwise products in fixed order.
	for i := 0; i < len(v1); i++ {
		result += v1[i] * v2[i]
	}

	return result, nil
}

// Mul computes the matrix product of a (r1×c1) and b (r2×c2): a new r1×c2
// matrix whose cell (i, j) is the dot product of row i of a and row j of
// b's transpose. Operands are never mutated (b's memo cache excepted — an
// unobservable implementation detail the kernel deliberately exercises).
//
// Implementation:
//   - Stage 1 (Validate): nil checks, then non-empty checks — a zero-row
//     operand fails with ErrEmptyMatrix before any allocation.
//   - Stage 2 (Prepare): transpose b once so every column is a contiguous row.
//   - Stage 3 (Execute): per-cell Dot in fixed i→j order; an incompatible
//     shape (a.Cols != b.Rows) surfaces as ErrDimensionMismatch from the
//     first dot product, per-row/column rather than as one upfront check.
//
// Errors:
//   - ErrNilMatrix          (nil operand).
//   - ErrEmptyMatrix        (zero-row operand, either side).
//   - ErrDimensionMismatch  (a.Cols != b.Rows, via Dot).
//
// Complexity: O(r1*c1*c2) time, O(r1*c2) space plus the transpose.
func Mul[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	// Validate operand presence.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// Empty operands are rejected before any partial result exists.
	if err := ValidateNonEmpty(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNonEmpty(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Transpose b once; row j of bt is column j of b.
	bt := b.Transpose()

	// Allocate the r1×c2 result and fill it cell by cell.
	rows, cols := a.Rows(), b.Cols()
	data := make([][]T, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		data[i] = make([]T, cols)
		for j = 0; j < cols; j++ {
			v, err := Dot(a.data[i], bt.data[j])
			if err != nil {
				return nil, matrixErrorf(opMul, err) // shape rule violation
			}
			data[i][j] = v
		}
	}

	return &Matrix[T]{data: data}, nil
}

// Mul is the method form of the package-level Mul; the two are equivalent
// and route through the same kernel.
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	return Mul(m, other)
}

// MustMul is the chainable form, standing in for an infix * operator:
//
//	p := a.MustMul(b).MustMul(c) // associates strictly left-to-right
//
// It panics on the same conditions Mul reports as errors; reserve it for
// operands whose shapes are known to conform (tests, examples, literals).
func (m *Matrix[T]) MustMul(other *Matrix[T]) *Matrix[T] {
	out, err := Mul(m, other)
	if err != nil {
		panic(err)
	}

	return out
}
