// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the elementwise kernels (Add, Sub, Hadamard, Scale) that
//     complement the product kernel in multiply.go.
//   - Keep all loops deterministic with fixed i→j order; allocate exactly
//     one result per call; never mutate operands.
//
// Determinism & Performance:
//   - No hidden allocations beyond the output matrix; O(r*c) time and space.

package matrix

// Operation tags for elementwise kernels.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opScale    = "Scale"
)

// addSub computes out[i,j] = op(a[i,j], b[i,j]) where op is + for Add and
// - for Sub. A closure rather than a sign factor: Numeric includes the
// unsigned types, where a negative-one multiplier is not representable.
// Internal helper so Add and Sub share validation and allocation.
// Complexity: O(r*c).
func addSub[T Numeric](a, b *Matrix[T], op func(x, y T) T, opTag string) (*Matrix[T], error) {
	// Validate operand presence.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	// Validate shapes match.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Allocate the result and fill it in fixed i→j order.
	data := make([][]T, len(a.data))
	var i, j int
	for i = 0; i < len(a.data); i++ {
		data[i] = make([]T, len(a.data[i]))
		for j = 0; j < len(a.data[i]); j++ {
			data[i][j] = op(a.data[i][j], b.data[i][j])
		}
	}

	return &Matrix[T]{data: data}, nil
}

// Add returns the elementwise sum a + b. Operands must share a shape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Add[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, func(x, y T) T { return x + y }, opAdd)
}

// Sub returns the elementwise difference a - b. Operands must share a shape.
// For unsigned element types the difference wraps modulo 2^n, exactly as the
// - operator does on T itself.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Sub[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSub(a, b, func(x, y T) T { return x - y }, opSub)
}

// Hadamard returns the elementwise product a ∘ b (not the matrix product;
// see Mul for that). Operands must share a shape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func Hadamard[T Numeric](a, b *Matrix[T]) (*Matrix[T], error) {
	// Validate operand presence.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	// Validate shapes match.
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}

	// Allocate the result and fill it in fixed i→j order.
	data := make([][]T, len(a.data))
	var i, j int
	for i = 0; i < len(a.data); i++ {
		data[i] = make([]T, len(a.data[i]))
		for j = 0; j < len(a.data[i]); j++ {
			data[i][j] = a.data[i][j] * b.data[i][j]
		}
	}

	return &Matrix[T]{data: data}, nil
}

// Scale returns a new matrix with every element multiplied by alpha.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Scale[T Numeric](m *Matrix[T], alpha T) (*Matrix[T], error) {
	// Validate operand presence.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate the result and fill it in fixed i→j order.
	data := make([][]T, len(m.data))
	var i, j int
	for i = 0; i < len(m.data); i++ {
		data[i] = make([]T, len(m.data[i]))
		for j = 0; j < len(m.data[i]); j++ {
			data[i][j] = alpha * m.data[i][j]
		}
	}

	return &Matrix[T]{data: data}, nil
}
