// SPDX-License-Identifier: MIT

// Package basis turns coupling coefficients into symmetry-adapted bases.
//
// For a fixed angular-momentum tuple ll the package provides, in pipeline
// order:
//
//   - Admissible — a cheap predicate pruning tuples that cannot carry an
//     invariant (parity and triangle-type conditions for small body
//     orders, a nonzero-coupling witness search beyond).
//   - RIBasis — the rotation-invariant basis: the full coupling matrix
//     over all magnetic tuples, SVD-reduced to its numerical rank.
//   - RPIBasis — the permutation-symmetrized basis: a Gramian over every
//     particle relabeling that fixes the (nn, ll) pairing, SVD-reduced
//     again to remove label-equivalent redundancy.
//   - CovariantBasis — the analog for vector-valued (spin-1) observables,
//     coupling the cluster with a fixed target representation L and
//     returning one coefficient block per representation component.
//
// Every basis is returned together with the ordered list of magnetic
// tuples indexing its columns (the M-list). The two are one value on
// purpose: a basis row is meaningless without its index table, and no
// canonical column ordering is promised across calls or versions.
//
// Rank determination is a fixed, documented policy, not an adaptive one:
// singular values below a relative tolerance of the largest are treated
// as zero (1e-8 for the invariant step, 1e-7 for the symmetrization and
// covariant steps). Zero-rank results are valid empty bases, not errors.
//
// Builders are single-threaded and own their coupling caches; construct
// one Builder per independent computation if memory pressure matters.
package basis
