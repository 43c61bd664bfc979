// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for construction. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The fill value's default is T's zero value; it cannot be a typed
//     constant here, so DefaultNoCopy below is the only constant default.
//   - WithNoCopy is an ownership transfer, not a dirty-data mode: the caller
//     promises the adopted slice is rectangular and stops using it.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultNoCopy controls whether FromRows adopts the caller's slice.
// false ⇒ deep-copy on ingestion, so the matrix owns its storage outright.
const DefaultNoCopy = false

// ---------- Public option type (functional) ----------

// Option mutates internal construction options. Safe to apply repeatedly
// (last writer wins).
type Option[T Numeric] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options[T Numeric] struct {
	fill   T    // value written into every cell by NewDense; zero value of T
	noCopy bool // DefaultNoCopy; FromRows adopts instead of copying
}

// ---------- Constructors (WithX) ----------

// WithFill sets the value NewDense writes into every cell.
//
// Behavior highlights:
//   - Default is T's zero value, matching the dot-product identity.
//   - Ignored by constructors that ingest existing data (FromRows, Literal).
//
// Complexity: O(1).
func WithFill[T Numeric](v T) Option[T] {
	// Assign the fill value; applied once per constructed cell.
	return func(o *Options[T]) { o.fill = v }
}

// WithNoCopy makes FromRows adopt the provided nested slice directly instead
// of deep-copying it.
//
// Behavior highlights:
//   - The matrix and the caller then alias the same backing rows; mutating
//     the original slice bypasses cache invalidation and is the caller's
//     responsibility to avoid.
//   - Rectangularity is still validated at ingestion.
//
// Complexity: O(1).
func WithNoCopy[T Numeric]() Option[T] {
	return func(o *Options[T]) { o.noCopy = true }
}

// gatherOptions resolves defaults and applies setters in order.
// Deterministic: last writer wins; no validation is needed because every
// setter is total over its input domain.
// Complexity: O(len(opts)).
func gatherOptions[T Numeric](opts ...Option[T]) Options[T] {
	var o Options[T] // zero value encodes every default
	for _, opt := range opts {
		opt(&o) // apply in declaration order
	}

	return o
}
