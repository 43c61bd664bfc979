// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/constructors minimal by delegating shape/nil/bounds checks here.
//  - Return sentinel errors wrapped with a stable validator tag so call sites
//    can wrap once more with their operation tag and still match errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - ValidateRectangular runs O(rows) over the outer slice only.
//
// Note:
//  - Each validator describes what it validates and what it assumes
//    (e.g. ValidateRowIndex assumes a non-nil matrix).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: *Matrix[T] pointer.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil[T Numeric](m *Matrix[T]) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateDims – Ensures requested construction dimensions are non-negative.
// Zero is deliberately legal: NewDense(0, 0) builds the empty matrix.
//
// Inputs: requested row and column counts.
// Returns: nil or wrapped ErrInvalidDimensions.
// Complexity: O(1).
func ValidateDims(rows, cols int) error {
	// Reject negative row counts.
	if rows < 0 {
		return validatorErrorf("ValidateDims: Rows", ErrInvalidDimensions)
	}
	// Reject negative column counts.
	if cols < 0 {
		return validatorErrorf("ValidateDims: Columns", ErrInvalidDimensions)
	}

	return nil
}

// ValidateRowIndex – Ensures 0 ≤ i < m.Rows().
//
// Implementation: Assumes m is not nil (caller must ensure).
// Returns: nil or wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func ValidateRowIndex[T Numeric](m *Matrix[T], i int) error {
	// Execute the bounds comparison against the derived row count.
	if i < 0 || i >= m.Rows() {
		return validatorErrorf("ValidateRowIndex", ErrIndexOutOfBounds)
	}

	return nil
}

// ValidateIndex – Ensures (i, j) addresses a cell inside m.
//
// Implementation: row check first, then column check against row i's length,
// so the column bound stays correct even for adopted jagged data.
// Returns: nil or wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func ValidateIndex[T Numeric](m *Matrix[T], i, j int) error {
	// Validate the row index first.
	if err := ValidateRowIndex(m, i); err != nil {
		return err
	}
	// Validate the column index against the actual row length.
	if j < 0 || j >= len(m.data[i]) {
		return validatorErrorf("ValidateIndex: Column", ErrIndexOutOfBounds)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Inputs: Two matrices over the same element type.
// Returns: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[T Numeric](a, b *Matrix[T]) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateRectangular – Ensures every row of a nested slice has the same
// length as row 0, preserving the rectangular invariant at ingestion.
//
// Inputs: outer slice of rows (may be empty — the empty matrix is valid).
// Returns: nil or wrapped ErrRaggedRows.
// Complexity: O(rows).
func ValidateRectangular[T Numeric](rows [][]T) error {
	// The empty matrix is rectangular by convention.
	if len(rows) == 0 {
		return nil
	}

	// Compare every subsequent row length against row 0.
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return validatorErrorf("ValidateRectangular", ErrRaggedRows)
		}
	}

	return nil
}

// ValidateNonEmpty – Ensures the matrix has at least one row.
// Used by Mul, where an empty operand is a distinct, named failure.
//
// Implementation: Assumes m is not nil (caller must ensure).
// Returns: nil or wrapped ErrEmptyMatrix.
// Complexity: O(1).
func ValidateNonEmpty[T Numeric](m *Matrix[T]) error {
	// A zero-row operand cannot participate in multiplication.
	if m.Rows() == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmptyMatrix)
	}

	return nil
}
