// SPDX-License-Identifier: MIT

package basis

import "github.com/katalvlaran/rotsym/coupling"

// MagneticTuples enumerates every magnetic tuple mm for the channel ll:
// all sequences with |mm_i| ≤ ll_i and Σmm = 0. The first N-1 components
// run through their full ranges in lexicographic order; the last is
// always the negated sum of the others and the tuple is kept only when
// that value respects its own bound.
//
// The returned order is deterministic and defines the column indexing of
// every basis built for ll — consumers must index through it and never
// assume any other arrangement.
func MagneticTuples(ll coupling.AngularTuple) []coupling.MagneticTuple {
	n := len(ll)
	if n == 0 {
		return nil
	}

	var out []coupling.MagneticTuple
	scratch := make([]int, n)
	var walk func(i, sum int)
	walk = func(i, sum int) {
		if i == n-1 {
			last := -sum
			if absInt(last) > ll[n-1] {
				return
			}
			mm := make(coupling.MagneticTuple, n)
			copy(mm, scratch[:n-1])
			mm[n-1] = last
			out = append(out, mm)

			return
		}
		for m := -ll[i]; m <= ll[i]; m++ {
			scratch[i] = m
			walk(i+1, sum+m)
		}
	}
	walk(0, 0)

	return out
}

// encode produces a compact map key for a magnetic tuple. Offsets mirror
// the coupling-package key encoding; magnetic values beyond ±100 are far
// outside any practical channel.
func encode(mm coupling.MagneticTuple) string {
	b := make([]byte, len(mm))
	for i, m := range mm {
		b[i] = byte(m + 100)
	}

	return string(b)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
