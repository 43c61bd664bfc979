// Package matrix provides a generic dense 2-dimensional container and the
// small set of linear-algebra bookkeeping operations around it.
//
// The matrix package provides:
//
//   - Matrix[T], a rectangular row-major container over any built-in
//     numeric element type (ints, floats, complex).
//   - Constructors for the empty, sized-with-fill, literal and
//     adopt-a-slice lifecycles, plus intention-revealing facades
//     (Zeros, Filled, Identity, ZerosLike).
//   - Transpose with a one-entry memo cache, invalidated eagerly on any
//     mutating access (Set, RowView, Apply).
//   - Multiplication in three equivalent forms (package function, method,
//     chainable MustMul), all routed through a single dot-product kernel.
//   - Structural equality with a shape short-circuit, and a plain
//     space-separated textual rendering for diagnostics.
//
// All failure modes are package-level sentinel errors matched with
// errors.Is; there is no logging and no partial results — any shape
// violation aborts the requested operation entirely.
//
// Matrices are single-threaded values: concurrent mutation of one instance
// is not guarded and is undefined behavior.
//
// See the examples in this package and the examples/ directory for usage
// patterns.
package matrix
