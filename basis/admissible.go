// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"

	"github.com/katalvlaran/rotsym/coupling"
)

// Admissible reports whether the channel ll can carry at least one
// reflection-even rotation invariant, and is the cheap pre-filter run
// before any matrix construction.
//
// Rules by body order:
//   - N=1: only the trivial channel l=0.
//   - N=2: the two legs must match, ll_1 = ll_2.
//   - N=3: triangle condition |ll_1-ll_2| ≤ ll_3 ≤ ll_1+ll_2 and even
//     parity Σll.
//   - N=4: even parity, overlapping pair ranges
//     max(|ll_1-ll_2|, |ll_3-ll_4|) ≤ min(ll_1+ll_2, ll_3+ll_4), and a
//     nonzero-coupling witness. The witness is a health check here: the
//     algebraic conditions are believed sufficient, so a missing witness
//     is an internal defect and panics rather than silently filtering.
//   - N≥5: even parity plus a witness search, stopping at the first
//     nonzero coupling. No closed-form condition is derived for these
//     orders; the search is the authoritative answer.
//
// The witness scans the diagonal coupling(ll, mm, mm) only: the coupling
// matrix is the Gramian of a projector, so it is nonzero iff some
// diagonal entry is.
func (b *Builder) Admissible(ll coupling.AngularTuple) bool {
	switch n := len(ll); n {
	case 0:
		return false
	case 1:
		return ll[0] == 0
	case 2:
		return ll[0] == ll[1]
	case 3:
		if ll.Sum()&1 == 1 {
			return false
		}

		return absInt(ll[0]-ll[1]) <= ll[2] && ll[2] <= ll[0]+ll[1]
	case 4:
		if ll.Sum()&1 == 1 {
			return false
		}
		lo := maxInt(absInt(ll[0]-ll[1]), absInt(ll[2]-ll[3]))
		hi := minInt(ll[0]+ll[1], ll[2]+ll[3])
		if lo > hi {
			return false
		}
		if !b.hasWitness(ll) {
			// The necessary conditions admit ll but no magnetic tuple
			// couples: the filter logic itself is broken. Fail loudly.
			panic(fmt.Sprintf("basis: admissibility health check failed for ll=%v", ll))
		}

		return true
	default:
		if ll.Sum()&1 == 1 {
			return false
		}

		return b.hasWitness(ll)
	}
}

// hasWitness searches the diagonal of the coupling matrix for a value
// distinguishable from rounding noise, stopping at the first hit.
func (b *Builder) hasWitness(ll coupling.AngularTuple) bool {
	for _, mm := range MagneticTuples(ll) {
		if v := b.calc.Coupling(ll, mm, mm); v > witnessEps || v < -witnessEps {
			return true
		}
	}

	return false
}
