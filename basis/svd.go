// SPDX-License-Identifier: MIT

// Package basis: rank-reduction helpers shared by the invariant,
// symmetrized and covariant pipelines. Real matrices go through
// gonum's SVD; Hermitian complex Gramians go through the standard real
// symmetric embedding.

package basis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// rankFromValues counts the singular values exceeding rtol relative to
// the largest. An all-zero spectrum has rank zero.
func rankFromValues(vals []float64, rtol float64) int {
	if len(vals) == 0 {
		return 0
	}
	max := vals[0] // gonum returns singular values in descending order
	if max <= 0 {
		return 0
	}
	cut := rtol * max
	rank := 0
	for _, v := range vals {
		if v > cut {
			rank++
		}
	}

	return rank
}

// leftVectors factorizes a and returns its descending singular values
// together with the left singular vectors as rows (rank-many), already
// truncated at the relative tolerance rtol.
func leftVectors(a mat.Matrix, rtol float64) (vals []float64, rows *mat.Dense, err error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}
	vals = svd.Values(nil)
	rank := rankFromValues(vals, rtol)
	if rank == 0 {
		return vals[:0], nil, nil
	}

	var u mat.Dense
	svd.UTo(&u)
	n, _ := u.Dims()
	rows = mat.NewDense(rank, n, nil)
	for r := 0; r < rank; r++ {
		for i := 0; i < n; i++ {
			rows.Set(r, i, u.At(i, r))
		}
	}

	return vals[:rank], rows, nil
}

// hermitianReduce extracts the dominant eigenpairs of a Hermitian
// positive semi-definite matrix g, keeping eigenvalues above rtol
// relative to the largest.
//
// Algorithm Outline:
//  1. Embed g = Re + i·Im into the real symmetric 2n×2n matrix
//     E = [[Re, -Im], [Im, Re]]. Every eigenvalue of g appears in E with
//     doubled multiplicity; the complex eigenvector x+iy surfaces as the
//     real pair (x, y) and (-y, x).
//  2. Eigendecompose E (mat.EigenSym, ascending order) and walk the
//     spectrum from the top.
//  3. Rebuild complex candidates u = x+iy and Gram-Schmidt them against
//     the vectors already kept: the embedded partner of a kept vector is
//     i·u, which is complex-parallel and projects away entirely, so each
//     doubled eigenvalue contributes exactly one complex eigenvector.
//
// Returned vectors are orthonormal rows; vals[i] is the eigenvalue of
// vecs[i].
func hermitianReduce(g [][]complex128, rtol float64) (vals []float64, vecs [][]complex128, err error) {
	n := len(g)
	if n == 0 {
		return nil, nil, nil
	}

	// --- 1. Real symmetric embedding ---
	embed := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			re, im := real(g[i][j]), imag(g[i][j])
			embed.SetSym(i, j, re)
			embed.SetSym(n+i, n+j, re)
			embed.SetSym(i, n+j, -im)
			if i != j {
				embed.SetSym(j, n+i, im)
			}
		}
	}

	// --- 2. Eigendecomposition ---
	var eig mat.EigenSym
	if ok := eig.Factorize(embed, true); !ok {
		return nil, nil, ErrSVDFailed
	}
	ev := eig.Values(nil) // ascending
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	top := ev[2*n-1]
	if top <= 0 {
		return nil, nil, nil
	}
	cut := rtol * top

	// --- 3. De-duplicate the doubled spectrum ---
	for idx := 2*n - 1; idx >= 0 && ev[idx] > cut; idx-- {
		u := make([]complex128, n)
		for i := 0; i < n; i++ {
			u[i] = complex(vectors.At(i, idx), vectors.At(n+i, idx))
		}
		for _, kept := range vecs {
			proj := complex(0, 0)
			for i := 0; i < n; i++ {
				proj += cmplx.Conj(kept[i]) * u[i]
			}
			for i := 0; i < n; i++ {
				u[i] -= proj * kept[i]
			}
		}
		norm := 0.0
		for i := 0; i < n; i++ {
			norm += real(u[i])*real(u[i]) + imag(u[i])*imag(u[i])
		}
		if norm < 0.5 {
			continue // embedded partner of a vector we already kept
		}
		scale := complex(1/math.Sqrt(norm), 0)
		for i := 0; i < n; i++ {
			u[i] *= scale
		}
		vecs = append(vecs, u)
		vals = append(vals, ev[idx])
	}

	return vals, vecs, nil
}
