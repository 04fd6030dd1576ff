// SPDX-License-Identifier: MIT

package basis

// Numeric policy defaults — single source of truth. These values are part
// of the documented contract: rank determination is a fixed relative
// cutoff, never adaptive.
const (
	// DefaultRankTolRI is the relative singular-value tolerance for the
	// invariant-basis rank cut (RIBasis).
	DefaultRankTolRI = 1e-8

	// DefaultRankTolRPI is the relative singular-value tolerance for the
	// permutation-Gramian and covariant-Gramian rank cuts.
	DefaultRankTolRPI = 1e-7

	// witnessEps separates a genuinely nonzero coupling value from
	// accumulated rounding noise during the admissibility witness search.
	witnessEps = 1e-10
)

const panicTolInvalid = "basis: rank tolerances must be positive"

// Options configures the numeric policy of a Builder.
//
// Fields:
//   - RankTolRI  — relative tolerance for the RIBasis rank cut.
//   - RankTolRPI — relative tolerance for the RPIBasis/CovariantBasis
//     rank cuts.
//
// The zero value of either field selects the documented default, so
// Options{} is always safe. Negative tolerances are a programming error
// and panic at construction.
type Options struct {
	RankTolRI  float64
	RankTolRPI float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{RankTolRI: DefaultRankTolRI, RankTolRPI: DefaultRankTolRPI}
}

// normalize fills zero fields with defaults and rejects nonsense.
func (o Options) normalize() Options {
	if o.RankTolRI < 0 || o.RankTolRPI < 0 {
		panic(panicTolInvalid)
	}
	if o.RankTolRI == 0 {
		o.RankTolRI = DefaultRankTolRI
	}
	if o.RankTolRPI == 0 {
		o.RankTolRPI = DefaultRankTolRPI
	}

	return o
}
