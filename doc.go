// Package matrixlibrary is a small, generic dense-matrix playground —
// construction, element access, equality, memoized transpose and
// multiplication over any built-in numeric element type.
//
// 🚀 What is matrix-library?
//
//	A minimal, zero-surprise container that brings together:
//		• Generic storage: Matrix[T] over ints, floats and complex types
//		• Constructors: empty, sized-with-fill, literal, adopt-a-slice
//		• Transpose: computed once, memoized, invalidated on mutation
//		• Multiplication: free function, method and chainable forms
//		• Diagnostics: plain space-separated row printing
//
// ✨ Why choose matrix-library?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – sentinel errors, central validators
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – value semantics, no observable aliasing between results
//
// Everything lives in a single subpackage:
//
//	matrix/ — the Matrix[T] container, its kernels and validators
//
// Quick example:
//
//	m := matrix.Literal([]int{1, 2, 3}, []int{4, 5, 6})
//	t := m.Transpose() // {{1,4},{2,5},{3,6}}
//
// See matrix/doc.go and the examples/ directory for usage patterns.
package matrixlibrary
