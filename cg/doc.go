// Package cg evaluates Clebsch-Gordan coefficients exactly.
//
// The coefficient C^{J,M}_{j1 m1, j2 m2} expresses how the product of two
// irreducible rotation-group representations decomposes into irreducibles;
// it is the elementary building block of every multi-body coupling in
// rotsym. The closed-form expression is a ratio of factorials under a
// square root times an alternating combinatorial sum — both of which
// overflow float64 factorials long before the body orders this library
// targets. Package cg therefore runs the entire intermediate computation
// on math/big rationals and converts to float64 exactly once, via the
// rational-root trick sign(G)·√(N·G²).
//
// Two entry points:
//
//   - ClebschGordan — the pure function, independently queryable.
//   - Cache — a memoizing wrapper keyed by the literal 6-tuple of
//     arguments. Lookups that fail the triangle, magnetic-sum, or bound
//     conditions return 0 without being stored.
//
// Only integer angular momenta are supported: this library couples
// spherical harmonics, which carry integer l exclusively.
package cg
