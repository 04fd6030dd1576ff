// SPDX-License-Identifier: MIT

package basis

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rotsym/coupling"
)

// RIBasis builds the rotation-invariant basis for the channel ll.
//
// Algorithm Outline:
//  1. Enumerate the magnetic tuples of ll (the M-list; its order defines
//     the column indexing of the result).
//  2. Fill the square coupling matrix CC[k-index, m-index] =
//     Coupling(ll, mm, kk) over every (kk, mm) pair of the M-list.
//     CC is the invariant-subspace projector in the product basis, so it
//     is symmetric and positive semi-definite.
//  3. SVD CC and count the singular values above RankTolRI relative to
//     the largest; that count is the numerical rank.
//  4. Return the top rank left singular vectors, transposed to rows,
//     paired with the M-list.
//
// A zero-rank result is a valid empty basis: no invariant exists for ll.
// Errors:
//   - ErrNegativeMomentum — some ll_i < 0 (caller programming error).
//   - ErrSVDFailed — the decomposition did not converge.
func (b *Builder) RIBasis(ll coupling.AngularTuple) (Basis, error) {
	for _, l := range ll {
		if l < 0 {
			return Basis{}, ErrNegativeMomentum
		}
	}
	mts := MagneticTuples(ll)
	if len(mts) == 0 {
		return Basis{}, nil
	}

	cc := b.couplingMatrix(ll, mts)
	_, rows, err := leftVectors(cc, b.opts.RankTolRI)
	if err != nil {
		return Basis{}, err
	}

	return Basis{U: rows, MList: mts}, nil
}

// couplingMatrix fills CC[ik, im] = Coupling(ll, mts[im], mts[ik]).
func (b *Builder) couplingMatrix(ll coupling.AngularTuple, mts []coupling.MagneticTuple) *mat.Dense {
	n := len(mts)
	cc := mat.NewDense(n, n, nil)
	for ik, kk := range mts {
		for im, mm := range mts {
			cc.Set(ik, im, b.calc.Coupling(ll, mm, kk))
		}
	}

	return cc
}
