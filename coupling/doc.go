// Package coupling computes generalized N-body coupling coefficients —
// the rotation-group averages of products of Wigner-D matrix elements
// that underlie every invariant and covariant basis in rotsym.
//
// The central object is the Calculator. It owns two memoizing caches
// (one for Clebsch-Gordan coefficients, one per body order for the
// recursion itself) and exposes a single operation:
//
//	Coupling(ll, mm, kk) → float64
//
// where ll is the tuple of angular momenta and mm, kk are the magnetic
// tuples of the two Wigner-D indices. The value is mathematically zero —
// and returned without recursing or caching — whenever Σmm ≠ 0, Σkk ≠ 0,
// or any |mm_i| or |kk_i| exceeds ll_i.
//
// The recursion couples the last two legs into an intermediate momentum
// j, reducing an N-body coefficient to a weighted sum of (N-1)-body
// coefficients; N=1 and N=2 terminate the descent in closed form.
//
// Calculators are deliberately cheap to create and single-threaded by
// contract: a fresh Calculator is a fresh session, and dropping it frees
// every cached value. Nothing in this package touches global state.
package coupling
