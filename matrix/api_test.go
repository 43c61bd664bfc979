// Package matrix_test contains unit tests for the public API facades.
package matrix_test

import (
	"testing"

	"github.com/henry-gaudet-pub/matrix-library/matrix"
	"github.com/stretchr/testify/require"
)

// TestZeros verifies the zero-initialized facade.
func TestZeros(t *testing.T) {
	m, err := matrix.Zeros[int](2, 3) // delegate to NewDense
	require.NoError(t, err)           // valid construction
	require.Equal(t, 2, m.Rows())     // requested rows
	require.Equal(t, 3, m.Cols())     // requested columns

	m.Do(func(i, j int, v int) bool { // every cell is zero
		require.Zero(t, v)
		return true
	})
}

// TestFilled verifies the explicit-fill facade.
func TestFilled(t *testing.T) {
	m, err := matrix.Filled(2, 2, 5) // fill every cell with 5
	require.NoError(t, err)          // valid construction
	require.True(t, m.Equal(matrix.Literal([]int{5, 5}, []int{5, 5})))
}

// TestIdentity verifies I_n: ones on the diagonal, zeros elsewhere.
func TestIdentity(t *testing.T) {
	ident, err := matrix.Identity[int](3) // I_3
	require.NoError(t, err)               // valid construction

	want := matrix.Literal( // the expected layout
		[]int{1, 0, 0},
		[]int{0, 1, 0},
		[]int{0, 0, 1},
	)
	require.True(t, ident.Equal(want)) // diagonal ones only
}

// TestIdentityNegative ensures the facade propagates constructor validation.
func TestIdentityNegative(t *testing.T) {
	_, err := matrix.Identity[int](-1)                   // negative dimension
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // bubbled up unchanged
}

// TestZerosLike verifies shape reuse without content reuse.
func TestZerosLike(t *testing.T) {
	src := matrix.Literal([]int{1, 2, 3}, []int{4, 5, 6}) // 2×3 source

	m, err := matrix.ZerosLike(src) // same shape, zeroed
	require.NoError(t, err)         // valid construction
	require.Equal(t, 2, m.Rows())   // shape copied
	require.Equal(t, 3, m.Cols())   // shape copied
	require.True(t, m.NotEqual(src)) // contents are not

	_, err = matrix.ZerosLike[int](nil)          // nil source
	require.ErrorIs(t, err, matrix.ErrNilMatrix) // expect ErrNilMatrix
}
