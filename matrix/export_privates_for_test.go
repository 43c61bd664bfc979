// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the Transpose Memo
//
// Purpose:
//   - Expose the UNEXPORTED one-entry transpose cache to matrix_test ONLY,
//     so memoization and eager invalidation are asserted functionally
//     (cache present / absent) instead of via timing.
//
// Behavior & Determinism:
//   - Read-only observations; no side effects, no allocations.
//
// Risks & Maintenance:
//   - Keep in sync with the Matrix cache field. If the memo layout changes,
//     update these bridges once here, not across many tests.

// TransposeCached_TestOnly reports whether m currently holds a memoized
// transpose.
func TransposeCached_TestOnly[T Numeric](m *Matrix[T]) bool {
	return m.cache != nil
}

// CachedTranspose_TestOnly returns the memoized transpose itself (nil when
// absent), letting tests assert the memo is served rather than recomputed.
func CachedTranspose_TestOnly[T Numeric](m *Matrix[T]) *Matrix[T] {
	return m.cache
}

// PanicRaggedLiteral_TestOnly exports the Literal panic message to avoid
// magic strings in tests.
const PanicRaggedLiteral_TestOnly = panicRaggedLiteral
