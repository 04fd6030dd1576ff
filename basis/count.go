// SPDX-License-Identifier: MIT

package basis

import "github.com/katalvlaran/rotsym/coupling"

// CountInvariants returns the closed-form number of independent
// rotation-invariant couplings for the channel ll — the rank RIBasis
// discovers numerically — without building any matrix.
//
// Closed forms by body order:
//   - N=1: 1 iff ll = (0).
//   - N=2: 1 iff ll_1 = ll_2.
//   - N=3: 1 iff the triangle condition holds (a triple couples to a
//     scalar through exactly one path).
//   - N=4: the number of intermediate momenta shared by the two pair
//     ranges, max(0, min(ll_1+ll_2, ll_3+ll_4) -
//     max(|ll_1-ll_2|, |ll_3-ll_4|) + 1).
//   - N=5: a sum over the first intermediate momentum j of the overlap
//     between the (j, ll_3) range and the (ll_4, ll_5) range — counting
//     the coupling paths through two intermediates.
//
// No closed form is implemented for N ≥ 6: the function returns
// ErrCountNotImplemented rather than a silent wrong answer. Note the
// count is a rotation (SO(3)) statement; Admissible additionally demands
// even parity for reflection (O(3)) invariance, so an odd-parity channel
// can count nonzero here yet be inadmissible.
func CountInvariants(ll coupling.AngularTuple) (int, error) {
	for _, l := range ll {
		if l < 0 {
			return 0, ErrNegativeMomentum
		}
	}
	switch n := len(ll); n {
	case 0:
		return 0, nil
	case 1:
		if ll[0] == 0 {
			return 1, nil
		}

		return 0, nil
	case 2:
		if ll[0] == ll[1] {
			return 1, nil
		}

		return 0, nil
	case 3:
		if absInt(ll[0]-ll[1]) <= ll[2] && ll[2] <= ll[0]+ll[1] {
			return 1, nil
		}

		return 0, nil
	case 4:
		lo := maxInt(absInt(ll[0]-ll[1]), absInt(ll[2]-ll[3]))
		hi := minInt(ll[0]+ll[1], ll[2]+ll[3])
		if hi < lo {
			return 0, nil
		}

		return hi - lo + 1, nil
	case 5:
		count := 0
		for j := absInt(ll[0] - ll[1]); j <= ll[0]+ll[1]; j++ {
			lo := maxInt(absInt(j-ll[2]), absInt(ll[3]-ll[4]))
			hi := minInt(j+ll[2], ll[3]+ll[4])
			if hi >= lo {
				count += hi - lo + 1
			}
		}

		return count, nil
	default:
		return 0, ErrCountNotImplemented
	}
}
