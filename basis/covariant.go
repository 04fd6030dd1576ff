// SPDX-License-Identifier: MIT

package basis

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/rotsym/coupling"
)

// DIndex names one entry of a Wigner-D matrix: the row quantum number μ
// and the column quantum number m, both in [-L, L].
type DIndex struct {
	Mu int
	M  int
}

// WignerIndex is the explicit index matrix of a target representation of
// angular momentum L: entry (i, j) is the (μ, m) pair addressed by row i
// and column j of the Wigner-D matrix D^L. It exists so that consumers
// aligning rotsym output with an external Wigner-D convention have one
// authoritative place mapping positions to quantum numbers.
type WignerIndex struct {
	l int
}

// NewWignerIndex builds the index matrix for angular momentum l.
// Returns ErrNegativeMomentum for l < 0.
func NewWignerIndex(l int) (*WignerIndex, error) {
	if l < 0 {
		return nil, ErrNegativeMomentum
	}

	return &WignerIndex{l: l}, nil
}

// Dim reports the representation dimension 2L+1.
func (w *WignerIndex) Dim() int {
	return 2*w.l + 1
}

// At returns the (μ, m) pair at row i, column j. Indices beyond the
// representation dimension are a caller programming error and yield
// ErrRepIndex.
func (w *WignerIndex) At(i, j int) (DIndex, error) {
	d := w.Dim()
	if i < 0 || i >= d || j < 0 || j >= d {
		return DIndex{}, ErrRepIndex
	}

	return DIndex{Mu: i - w.l, M: j - w.l}, nil
}

// Covariant is the result of CovariantBasis: one complex coefficient
// block per representation component, all sharing one cluster M-list.
type Covariant struct {
	// Components holds 2L+1 matrices; Components[t] carries the basis
	// rows of representation component t (quantum number m = t-L), with
	// columns indexed by MList.
	Components []*mat.CDense

	// MList is the ordered list of cluster magnetic tuples (length N)
	// indexing every component's columns.
	MList []coupling.MagneticTuple

	// ParityMismatch is set when Σll + L is odd: the basis then lacks
	// definite parity under reflection. Informational, never fatal —
	// interpret the result with care.
	ParityMismatch bool

	rank int
}

// Rank reports the number of retained covariant basis vectors.
func (c Covariant) Rank() int {
	return c.rank
}

// CovariantBasis builds the permutation-symmetrized covariant basis for
// the channel (nn, ll) transforming as the target representation of
// angular momentum L. Only L ∈ {0, 1} is exercised in practice (scalar
// and vector); the construction itself is generic in L.
//
// Algorithm Outline:
//  1. Extend the channel: llx = ll ++ [L]. An invariant coupling of the
//     cluster with one extra leg of momentum L is exactly a covariant
//     coupling of the cluster transforming as L, so the extended-tuple
//     invariant basis (RIBasis on llx) supplies all raw coefficients and
//     CouplingRecursion stays the single source of coupling values.
//  2. Carve the extended basis into representation components using the
//     WignerIndex pairs: component t keeps the columns whose last
//     magnetic slot equals m_t = t-L, scaled by the conjugation phase
//     (-1)^μ. Columns re-index onto the cluster M-list (the extended
//     tuples with the representation slot stripped).
//  3. Accumulate the component-stacked Gramian over every permutation σ
//     of the N cluster slots fixing (nn, ll) — the representation slot
//     never permutes — summing conj(B_t[·,mm1])·B_t[·,mm2] whenever
//     mm1∘σ = mm2.
//  4. Reduce the Hermitian Gramian at RankTolRPI and assemble the final
//     per-component blocks √λ · U^H · B_t.
//
// When Σll + L is odd the result carries ParityMismatch=true; the
// computation still completes.
//
// Errors:
//   - ErrNegativeMomentum — L < 0 or some ll_i < 0.
//   - ErrLengthMismatch — len(nn) ≠ len(ll).
//   - ErrSVDFailed — a decomposition did not converge.
func (b *Builder) CovariantBasis(nn []int, ll coupling.AngularTuple, L int) (Covariant, error) {
	if L < 0 {
		return Covariant{}, ErrNegativeMomentum
	}
	if len(nn) != len(ll) {
		return Covariant{}, ErrLengthMismatch
	}
	wig, err := NewWignerIndex(L)
	if err != nil {
		return Covariant{}, err
	}

	out := Covariant{ParityMismatch: (ll.Sum()+L)&1 == 1}

	// --- 1. Invariant basis of the extended channel ---
	llx := make(coupling.AngularTuple, len(ll)+1)
	copy(llx, ll)
	llx[len(ll)] = L
	riX, err := b.RIBasis(llx)
	if err != nil {
		return Covariant{}, err
	}

	// The extended tuples determine their last slot from the cluster
	// prefix, so stripping it yields a duplicate-free cluster M-list.
	n := len(ll)
	mlist := make([]coupling.MagneticTuple, len(riX.MList))
	for j, mmx := range riX.MList {
		mm := make(coupling.MagneticTuple, n)
		copy(mm, mmx[:n])
		mlist[j] = mm
	}
	out.MList = mlist
	out.Components = make([]*mat.CDense, wig.Dim())
	if riX.Rank() == 0 || len(mlist) == 0 {
		return out, nil
	}

	// --- 2. Per-component coefficient blocks ---
	nri := riX.Rank()
	cols := len(mlist)
	blocks := make([][][]complex128, wig.Dim())
	for t := range blocks {
		d, aerr := wig.At(t, t)
		if aerr != nil {
			return Covariant{}, aerr
		}
		phase := complex(1, 0)
		if d.Mu&1 == 1 {
			phase = complex(-1, 0)
		}
		block := make([][]complex128, nri)
		for i := 0; i < nri; i++ {
			block[i] = make([]complex128, cols)
			for j, mmx := range riX.MList {
				if mmx[n] != d.M {
					continue
				}
				block[i][j] = phase * complex(riX.U.At(i, j), 0)
			}
		}
		blocks[t] = block
	}

	// --- 3. Component-stacked permutation Gramian ---
	g := covariantGramian(nn, ll, mlist, blocks)

	// --- 4. Hermitian rank reduction and assembly ---
	vals, vecs, err := hermitianReduce(g, b.opts.RankTolRPI)
	if err != nil {
		return Covariant{}, err
	}
	out.rank = len(vecs)
	for t := range blocks {
		if out.rank == 0 {
			out.Components[t] = nil
			continue
		}
		comp := mat.NewCDense(out.rank, cols, nil)
		for r := 0; r < out.rank; r++ {
			w := complex(math.Sqrt(vals[r]), 0)
			for j := 0; j < cols; j++ {
				acc := complex(0, 0)
				for i := 0; i < nri; i++ {
					acc += conj(vecs[r][i]) * blocks[t][i][j]
				}
				comp.Set(r, j, w*acc)
			}
		}
		out.Components[t] = comp
	}

	return out, nil
}

// covariantGramian accumulates the Hermitian Gramian over cluster
// permutations fixing (nn, ll), stacked over representation components.
func covariantGramian(nn []int, ll coupling.AngularTuple, mlist []coupling.MagneticTuple, blocks [][][]complex128) [][]complex128 {
	n := len(ll)
	nri := len(blocks[0])

	index := make(map[string]int, len(mlist))
	for j, mm := range mlist {
		index[encode(mm)] = j
	}

	g := make([][]complex128, nri)
	for i := range g {
		g[i] = make([]complex128, nri)
	}

	permuted := make(coupling.MagneticTuple, n)
	for _, sigma := range permutations(n) {
		if !fixesLabels(sigma, nn, ll) {
			continue
		}
		for j1, mm1 := range mlist {
			for i := 0; i < n; i++ {
				permuted[i] = mm1[sigma[i]]
			}
			j2, ok := index[encode(permuted)]
			if !ok {
				continue
			}
			for t := range blocks {
				for i1 := 0; i1 < nri; i1++ {
					for i2 := 0; i2 < nri; i2++ {
						g[i1][i2] += conj(blocks[t][i1][j1]) * blocks[t][i2][j2]
					}
				}
			}
		}
	}

	return g
}

func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
