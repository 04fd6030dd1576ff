package coupling

import (
	"math"

	"github.com/katalvlaran/rotsym/cg"
)

// panicLengthMismatch is raised when ll, mm and kk disagree in length —
// a caller programming error, not a recoverable condition.
const panicLengthMismatch = "coupling: ll, mm and kk must have equal length"

// twoBodyNorm is 8π², the Euler-angle volume of SO(3); the N=2 base case
// carries it so that every coupling value is a plain group average.
var twoBodyNorm = 8 * math.Pi * math.Pi

// Calculator evaluates generalized coupling coefficients for one
// computation session. It owns its Clebsch-Gordan cache and its
// per-body-order recursion cache; neither is shared or synchronized.
type Calculator struct {
	cg    *cg.Cache
	cache *store
}

// New returns a Calculator with empty caches.
func New() *Calculator {
	return &Calculator{cg: cg.New(), cache: newStore()}
}

// Coupling computes the generalized N-body coupling coefficient for the
// channel ll with magnetic tuples mm and kk.
//
// Description:
//
//	The value is the SO(3) average ∫ Π_i D^{l_i}_{k_i m_i}(R) dR over the
//	8π² Euler-angle measure — the matrix element of the projector onto
//	the rotation-invariant subspace of the product representation.
//
// Preconditions (zero short-circuit, not an error):
//
//	Σmm ≠ 0, Σkk ≠ 0, or any |mm_i|, |kk_i| > ll_i ⇒ result is 0,
//	returned immediately; such keys are never cached.
//
// Base cases:
//   - N=1: 1 iff ll = mm = kk = (0), else 0.
//   - N=2: 0 unless ll_1 = ll_2; else 8π²/(2·ll_1+1) · (-1)^(mm_1-kk_1).
//
// Recursive case (N ≥ 3):
//
//	Couple the last two legs into an intermediate momentum j with
//	|ll_{N-1}-ll_N| ≤ j ≤ ll_{N-1}+ll_N and accumulate
//	cg(k-side) · cg(m-side) · coupling of the reduced (N-1)-tuple, where
//	the reduced tuple replaces the last two legs by (j, mm_{N-1}+mm_N,
//	kk_{N-1}+kk_N). A j whose CG factor vanishes is skipped before any
//	recursive call. Results are memoized per body order.
//
// Panics with a length-mismatch message when len(mm) or len(kk) differs
// from len(ll); that is a programming error at the call site.
func (c *Calculator) Coupling(ll AngularTuple, mm, kk MagneticTuple) float64 {
	n := len(ll)
	if len(mm) != n || len(kk) != n {
		panic(panicLengthMismatch)
	}
	if mm.Sum() != 0 || kk.Sum() != 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		if absInt(mm[i]) > ll[i] || absInt(kk[i]) > ll[i] {
			return 0
		}
	}

	return c.eval(ll, mm, kk)
}

// eval runs the recursion proper. The zero short-circuit conditions are
// assumed to hold already; the recursive construction preserves them.
func (c *Calculator) eval(ll AngularTuple, mm, kk MagneticTuple) float64 {
	n := len(ll)
	switch n {
	case 0:
		return 0
	case 1:
		// Only the trivial channel couples a single leg to a scalar.
		if ll[0] == 0 && mm[0] == 0 && kk[0] == 0 {
			return 1
		}

		return 0
	case 2:
		if ll[0] != ll[1] {
			return 0
		}
		v := twoBodyNorm / float64(2*ll[0]+1)
		if (mm[0]-kk[0])&1 == 1 {
			v = -v
		}

		return v
	}

	key := tupleKey(ll, mm, kk)
	if v, ok := c.cache.lookup(n, key); ok {
		return v
	}

	// --- Reduce the last two legs onto an intermediate momentum j ---
	lA, lB := ll[n-2], ll[n-1]
	mSum := mm[n-2] + mm[n-1]
	kSum := kk[n-2] + kk[n-1]

	// Reduced (N-1)-tuples; the last slot is rewritten per j.
	llRed := make(AngularTuple, n-1)
	mmRed := make(MagneticTuple, n-1)
	kkRed := make(MagneticTuple, n-1)
	copy(llRed, ll[:n-2])
	copy(mmRed, mm[:n-2])
	copy(kkRed, kk[:n-2])
	mmRed[n-2] = mSum
	kkRed[n-2] = kSum

	total := 0.0
	for j := absInt(lA - lB); j <= lA+lB; j++ {
		if absInt(kSum) > j || absInt(mSum) > j {
			continue
		}
		cgK := c.cg.ClebschGordan(lA, kk[n-2], lB, kk[n-1], j, kSum)
		if cgK == 0 {
			continue // prune: the whole term vanishes
		}
		cgM := c.cg.ClebschGordan(lA, mm[n-2], lB, mm[n-1], j, mSum)
		if cgM == 0 {
			continue
		}
		llRed[n-2] = j
		total += cgK * cgM * c.eval(llRed, mmRed, kkRed)
	}
	c.cache.put(n, key, total)

	return total
}

// CacheStats reports the number of memoized coupling values per body
// order. Callers deciding when to discard a session (caches grow without
// eviction) can watch these counts.
func (c *Calculator) CacheStats() map[int]int {
	return c.cache.stats()
}

// CGCacheLen reports the size of the underlying Clebsch-Gordan cache.
func (c *Calculator) CGCacheLen() int {
	return c.cg.Len()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
