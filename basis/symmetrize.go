// SPDX-License-Identifier: MIT

package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rotsym/coupling"
)

// RPIBasis builds the permutation-symmetrized invariant basis for the
// channel (nn, ll), where nn carries the per-particle radial indices
// paired 1:1 with ll.
//
// Description:
//
//	Particles sharing the same (n, l) pair are physically
//	indistinguishable, so invariants related by relabeling them are the
//	same function. RPIBasis removes that redundancy.
//
// Algorithm Outline:
//  1. Build the invariant basis Uri = RIBasis(ll).
//  2. Accumulate the Gramian G over every permutation σ of particle
//     indices fixing the labels pointwise (nn∘σ = nn and ll∘σ = ll):
//     whenever σ maps one M-list tuple onto another, the corresponding
//     basis columns contribute an outer product to G.
//  3. SVD G, cut the rank at RankTolRPI, and change basis:
//     result = √Σ · Urpi · Uri.
//
// The returned Basis shares the M-list of the invariant step. Rank can
// only shrink here; equality holds when all labels are distinct.
// Errors:
//   - ErrLengthMismatch — len(nn) ≠ len(ll).
//   - ErrNegativeMomentum, ErrSVDFailed — as in RIBasis.
func (b *Builder) RPIBasis(nn []int, ll coupling.AngularTuple) (Basis, error) {
	if len(nn) != len(ll) {
		return Basis{}, ErrLengthMismatch
	}
	ri, err := b.RIBasis(ll)
	if err != nil || ri.Rank() == 0 {
		return ri, err
	}

	g := permutationGramian(nn, ll, ri)
	vals, urpi, err := leftVectors(g, b.opts.RankTolRPI)
	if err != nil {
		return Basis{}, err
	}
	if urpi == nil {
		return Basis{MList: ri.MList}, nil
	}

	// --- Change of basis: √Σ · Urpi · Uri ---
	rank, nri := urpi.Dims()
	for r := 0; r < rank; r++ {
		w := math.Sqrt(vals[r])
		for i := 0; i < nri; i++ {
			urpi.Set(r, i, w*urpi.At(r, i))
		}
	}
	var out mat.Dense
	out.Mul(urpi, ri.U)

	return Basis{U: &out, MList: ri.MList}, nil
}

// permutationGramian sums, over every label-fixing permutation σ, the
// outer products of invariant-basis columns related by σ's action on the
// M-list.
func permutationGramian(nn []int, ll coupling.AngularTuple, ri Basis) *mat.Dense {
	n := len(ll)
	nri := ri.Rank()

	index := make(map[string]int, len(ri.MList))
	for j, mm := range ri.MList {
		index[encode(mm)] = j
	}

	g := mat.NewDense(nri, nri, nil)
	permuted := make(coupling.MagneticTuple, n)
	for _, sigma := range permutations(n) {
		if !fixesLabels(sigma, nn, ll) {
			continue
		}
		for j1, mm1 := range ri.MList {
			for i := 0; i < n; i++ {
				permuted[i] = mm1[sigma[i]]
			}
			j2, ok := index[encode(permuted)]
			if !ok {
				continue
			}
			for i1 := 0; i1 < nri; i1++ {
				for i2 := 0; i2 < nri; i2++ {
					g.Set(i1, i2, g.At(i1, i2)+ri.U.At(i1, j1)*ri.U.At(i2, j2))
				}
			}
		}
	}

	return g
}

// fixesLabels reports whether nn∘σ = nn and ll∘σ = ll pointwise.
func fixesLabels(sigma, nn []int, ll coupling.AngularTuple) bool {
	for i, s := range sigma {
		if nn[s] != nn[i] || ll[s] != ll[i] {
			return false
		}
	}

	return true
}

// permutations returns every permutation of 0..n-1. The factorial growth
// is inherent to the symmetrization step and accepted; practical body
// orders stay small.
func permutations(n int) [][]int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	var out [][]int
	var heap func(k int)
	heap = func(k int) {
		if k == 1 {
			p := make([]int, n)
			copy(p, idx)
			out = append(out, p)

			return
		}
		for i := 0; i < k; i++ {
			heap(k - 1)
			if k&1 == 0 {
				idx[i], idx[k-1] = idx[k-1], idx[i]
			} else {
				idx[0], idx[k-1] = idx[k-1], idx[0]
			}
		}
	}
	if n > 0 {
		heap(n)
	}

	return out
}
