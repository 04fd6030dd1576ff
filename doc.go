// Package rotsym builds symmetry-adapted coupling bases for clusters of
// interacting bodies — the rotation-invariant (and rotation-covariant)
// linear combinations of spherical-harmonic products used by the Atomic
// Cluster Expansion (ACE).
//
// 🚀 What is rotsym?
//
//	A pure-Go library that, given a tuple of angular momenta l₁..l_N,
//	computes a minimal, numerically orthogonal basis of invariant (or
//	covariant) couplings:
//		• Exact Clebsch-Gordan coefficients via arbitrary-precision
//		  rational arithmetic (no factorial overflow, ever)
//		• A memoized generalized coupling recursion over any body order
//		• Cheap algebraic admissibility filters with a witness-search
//		  fallback for high body orders
//		• SVD-based rank extraction of the invariant basis
//		• Permutation symmetrization over equivalent particle labels
//		• A vector-covariant extension for spin-1 observables
//
// ✨ Why choose rotsym?
//
//   - Deterministic — every result is a pure function of its inputs;
//     caches only trade time for memory, never change answers
//   - Exact where it matters — coefficient combinatorics run on big.Rat,
//     converting to float64 once, at the very end
//   - No hidden state — coefficient caches live inside the objects you
//     construct and die with them
//
// Under the hood, everything is organized under three subpackages:
//
//	cg/       — exact Clebsch-Gordan evaluation + memoizing cache
//	coupling/ — tuple types and the N-body coupling recursion
//	basis/    — admissibility, invariant/symmetrized/covariant bases
//
// The typical pipeline mirrors the physics: prune candidate l-tuples with
// basis.Admissible, build the invariant basis with basis.RIBasis, fold in
// radial labels and particle permutations with basis.RPIBasis, and — for
// vector observables — use basis.CovariantBasis.
//
// All computations are single-threaded and synchronous. If you need
// parallelism, give each worker its own Builder/Calculator: the caches are
// per-instance and unsynchronized.
package rotsym
