// SPDX-License-Identifier: MIT

// Package matrix: the transpose kernel and its one-entry memo cache.
package matrix

// Transpose returns a new matrix with rows and columns swapped: the element
// at (i, j) moves to (j, i).
//
// Memoization: the first call after construction or after the last mutation
// computes the transpose and stores it in the one-entry cache; subsequent
// calls serve the cache without recomputing, as long as no mutable access
// (Set, RowView, Apply) happened in between. The cached matrix itself is
// never handed out — callers receive a clone, so results stay independently
// owned and cannot corrupt the memo.
//
// Edge case: the empty matrix transposes to itself and is returned as-is,
// with no cache interaction — a deliberate shortcut for the degenerate case.
//
// Referentially transparent from the caller's perspective (the same matrix
// state always yields an equal result) even though it reads and writes the
// internal cache.
//
// Complexity: O(rows*cols) on a cache miss; O(rows*cols) for the defensive
// clone on a hit (no recomputation loop).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	// Degenerate shortcut: zero rows transpose to zero rows.
	if m.IsEmpty() {
		return m
	}

	// Cache hit: serve the memo without recomputation.
	if m.cache != nil {
		return m.cache.Clone()
	}

	// Cache miss: compute (i,j) → (j,i) in fixed i→j order over the result.
	rows, cols := m.Rows(), m.Cols()
	data := make([][]T, cols)
	var i, j int
	for i = 0; i < cols; i++ {
		data[i] = make([]T, rows)
		for j = 0; j < rows; j++ {
			data[i][j] = m.data[j][i]
		}
	}

	// Memoize, then hand out an independent copy.
	m.cache = &Matrix[T]{data: data}

	return m.cache.Clone()
}
